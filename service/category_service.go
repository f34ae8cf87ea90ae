package service

import (
	"strings"

	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/core"
	"github.com/techmaster-vietnam/blogkit/models"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo core.CategoryRepositoryInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo core.CategoryRepositoryInterface) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryRequest represents create category request
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// Create tạo category mới, name là unique
func (s *CategoryService) Create(req CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("Invalid category data", map[string]string{
			"name": "Category name is required",
		})
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("duplicate_category", "Category already exists")
		}
		return nil, apperror.Server(err, "failed to create category")
	}
	return category, nil
}

// List trả về tất cả category
func (s *CategoryService) List() ([]models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, apperror.Server(err, "failed to list categories")
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
