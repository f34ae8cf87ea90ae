package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a blog category
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// Summary returns the populated projection of the category
func (c *Category) Summary() *CategorySummary {
	return &CategorySummary{ID: c.ID, Name: c.Name}
}

// CategorySummary là projection của Category khi populate vào blog
type CategorySummary struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `json:"name"`
}

// TableName maps the projection onto the categories table
func (CategorySummary) TableName() string {
	return "categories"
}
