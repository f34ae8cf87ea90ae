package core

import (
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/models"
)

// Các repository interface cho phép service layer chạy trên gorm (postgres)
// hoặc memstore, và mock được trong tests.
//
// Quy ước lỗi chung: không tìm thấy trả về gorm.ErrRecordNotFound,
// vi phạm unique trả về gorm.ErrDuplicatedKey.

// BlogRepositoryInterface định nghĩa interface cho Blog Repository
type BlogRepositoryInterface interface {
	Create(blog *models.Blog) error
	// Update lưu các field của blog, không đụng tới associations
	Update(blog *models.Blog) error
	Delete(id uuid.UUID) error
	// GetByID lấy blog theo ID, populate Author
	GetByID(id uuid.UUID) (*models.Blog, error)
	FindByTitleAndAuthor(title string, authorID uuid.UUID) (*models.Blog, error)
	List() ([]models.Blog, error)
	ListLatest(limit int) ([]models.Blog, error)
	ListByAuthor(authorID uuid.UUID) ([]models.Blog, error)
	// Search áp dụng filter, populate Author, Category và Comments
	Search(filter models.BlogFilter) ([]models.Blog, error)
}

// CategoryRepositoryInterface định nghĩa interface cho Category Repository
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	List() ([]models.Category, error)
}

// CommentRepositoryInterface định nghĩa interface cho Comment Repository
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	ListByBlog(blogID uuid.UUID) ([]models.Comment, error)
}

// UserRepositoryInterface định nghĩa interface cho User Repository
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}
