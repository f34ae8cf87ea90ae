package service

import (
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/core"
	"github.com/techmaster-vietnam/blogkit/models"
)

// BlogQueryService xử lý các thao tác đọc blog
type BlogQueryService struct {
	blogRepo core.BlogRepositoryInterface
}

// NewBlogQueryService creates a new blog query service
func NewBlogQueryService(blogRepo core.BlogRepositoryInterface) *BlogQueryService {
	return &BlogQueryService{blogRepo: blogRepo}
}

// ListAll trả về tất cả blog theo thứ tự tạo
func (s *BlogQueryService) ListAll() ([]models.Blog, error) {
	blogs, err := s.blogRepo.List()
	if err != nil {
		return nil, apperror.Server(err, "failed to list blogs")
	}
	return nonNil(blogs), nil
}

// ListLatest trả về blog mới nhất (0 hoặc 1 phần tử)
func (s *BlogQueryService) ListLatest() ([]models.Blog, error) {
	blogs, err := s.blogRepo.ListLatest(1)
	if err != nil {
		return nil, apperror.Server(err, "failed to list latest blog")
	}
	return nonNil(blogs), nil
}

// ListByAuthor trả về blog của một tác giả
func (s *BlogQueryService) ListByAuthor(authorID uuid.UUID) ([]models.Blog, error) {
	blogs, err := s.blogRepo.ListByAuthor(authorID)
	if err != nil {
		return nil, apperror.Server(err, "failed to list author blogs")
	}
	return nonNil(blogs), nil
}

// GetByID lấy blog với author đã populate
func (s *BlogQueryService) GetByID(id uuid.UUID) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Server(err, "failed to get blog")
	}
	return blog, nil
}

// Search lọc blog theo query; query rỗng trả về toàn bộ blog
func (s *BlogQueryService) Search(q SearchQuery) ([]models.Blog, error) {
	filter, err := BuildSearchFilter(q)
	if err != nil {
		return nil, err
	}

	blogs, err := s.blogRepo.Search(filter)
	if err != nil {
		return nil, apperror.Server(err, "failed to search blogs")
	}
	return nonNil(blogs), nil
}

func nonNil(blogs []models.Blog) []models.Blog {
	if blogs == nil {
		return []models.Blog{}
	}
	return blogs
}
