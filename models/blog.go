package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Blog represents a blog post
// (author_id, title) là unique - xem migrations/000001_init.up.sql
type Blog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	Tags       pq.StringArray `gorm:"type:text[];not null" json:"tags"`
	AuthorID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index" json:"category_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Relationships, chỉ có giá trị khi được populate
	Author   *AuthorSummary   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category *CategorySummary `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Comments []Comment        `gorm:"foreignKey:BlogID" json:"comments,omitempty"`
}

// BeforeCreate hook to generate UUID
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Tags == nil {
		b.Tags = pq.StringArray{}
	}
	return nil
}

// TableName specifies the table name
func (Blog) TableName() string {
	return "blogs"
}

// IsOwnedBy reports whether userID is the author of the post
func (b *Blog) IsOwnedBy(userID uuid.UUID) bool {
	return b.AuthorID == userID
}

// BlogFilter là filter đã được chuẩn hóa cho search
// Field rỗng/nil nghĩa là không ràng buộc theo chiều đó
type BlogFilter struct {
	Title      string     // case-insensitive substring
	Content    string     // case-insensitive substring
	Tags       []string   // post matches if any tag is in the list
	AuthorID   *uuid.UUID // exact
	CategoryID *uuid.UUID // exact
}

// IsEmpty reports whether the filter imposes no constraint
func (f BlogFilter) IsEmpty() bool {
	return f.Title == "" && f.Content == "" && len(f.Tags) == 0 && f.AuthorID == nil && f.CategoryID == nil
}
