package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/core"
	"github.com/techmaster-vietnam/blogkit/models"
)

// CommentService handles comment business logic
type CommentService struct {
	commentRepo core.CommentRepositoryInterface
	blogRepo    core.BlogRepositoryInterface
	sanitizer   *bluemonday.Policy
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo core.CommentRepositoryInterface, blogRepo core.BlogRepositoryInterface) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

// CreateCommentRequest represents create comment request
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// Create thêm comment vào blog
func (s *CommentService) Create(blogID, authorID uuid.UUID, req CreateCommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(s.sanitizer.Sanitize(req.Content))
	if content == "" {
		return nil, apperror.Validation("Invalid comment data", map[string]string{
			"content": "Content is required",
		})
	}

	if err := s.ensureBlogExists(blogID); err != nil {
		return nil, err
	}

	comment := &models.Comment{BlogID: blogID, AuthorID: authorID, Content: content}
	if err := s.commentRepo.Create(comment); err != nil {
		// Blog bị xóa giữa lúc kiểm tra và insert
		if isForeignKeyViolation(err) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Server(err, "failed to create comment")
	}
	return comment, nil
}

// ListByBlog trả về comment của blog theo thứ tự tạo
func (s *CommentService) ListByBlog(blogID uuid.UUID) ([]models.Comment, error) {
	if err := s.ensureBlogExists(blogID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByBlog(blogID)
	if err != nil {
		return nil, apperror.Server(err, "failed to list comments")
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func (s *CommentService) ensureBlogExists(blogID uuid.UUID) error {
	if _, err := s.blogRepo.GetByID(blogID); err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Blog not found")
		}
		return apperror.Server(err, "failed to get blog")
	}
	return nil
}
