package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a blog author
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	Password       string    `gorm:"not null" json:"-"` // Hidden from JSON
	ProfilePicture string    `gorm:"not null;default:''" json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// Summary returns the public projection of the user
func (u *User) Summary() *AuthorSummary {
	return &AuthorSummary{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}

// AuthorSummary là projection của User khi populate vào blog/comment
// Chỉ gồm id, username, profile_picture
type AuthorSummary struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profile_picture"`
}

// TableName maps the projection onto the users table
func (AuthorSummary) TableName() string {
	return "users"
}
