package repository

import (
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/models"
	"gorm.io/gorm"
)

// CommentRepository handles comment database operations
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByBlog lists comments of a blog, oldest first
func (r *CommentRepository) ListByBlog(blogID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("blog_id = ?", blogID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}
