package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/microcosm-cc/bluemonday"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/config"
	"github.com/techmaster-vietnam/blogkit/core"
	"github.com/techmaster-vietnam/blogkit/models"
	"github.com/techmaster-vietnam/blogkit/utils"
)

// BlogMutationService xử lý create/update/delete blog
type BlogMutationService struct {
	blogRepo     core.BlogRepositoryInterface
	categoryRepo core.CategoryRepositoryInterface
	config       config.BlogConfig
	sanitizer    *bluemonday.Policy
}

// NewBlogMutationService creates a new blog mutation service
func NewBlogMutationService(
	blogRepo core.BlogRepositoryInterface,
	categoryRepo core.CategoryRepositoryInterface,
	cfg config.BlogConfig,
) *BlogMutationService {
	return &BlogMutationService{
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		config:       cfg,
		sanitizer:    bluemonday.UGCPolicy(),
	}
}

// CreateBlogRequest represents create blog request
type CreateBlogRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

// UpdateBlogRequest represents update blog request.
// Field nil nghĩa là giữ nguyên giá trị cũ.
type UpdateBlogRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	Category *string   `json:"category"` // "" để bỏ category
}

// Create tạo blog mới cho authorID.
// Một tác giả không thể có 2 blog cùng title.
func (s *BlogMutationService) Create(authorID uuid.UUID, req CreateBlogRequest) (*models.Blog, error) {
	title := strings.TrimSpace(req.Title)
	content := s.sanitizer.Sanitize(req.Content)

	fields := map[string]string{}
	if title == "" {
		fields["title"] = "Title is required"
	}
	if strings.TrimSpace(content) == "" {
		fields["content"] = "Content is required"
	}
	if len(fields) > 0 {
		return nil, apperror.Validation("Invalid blog data", fields)
	}

	categoryID, err := s.resolveCategory(req.Category)
	if err != nil {
		return nil, err
	}

	if err := s.ensureTitleAvailable(title, authorID, uuid.Nil); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:      title,
		Content:    content,
		Tags:       pq.StringArray(utils.UniqueStrings(req.Tags)),
		AuthorID:   authorID,
		CategoryID: categoryID,
	}
	if err := s.blogRepo.Create(blog); err != nil {
		// Unique index (author_id, title) bắt trường hợp 2 request chạy song song
		if isDuplicate(err) {
			return nil, apperror.DuplicatePost()
		}
		return nil, apperror.Server(err, "failed to create blog")
	}

	return s.reload(blog.ID)
}

// Update cập nhật blog.
// Khi EnforceUpdateOwnership bật, chỉ tác giả mới được sửa.
func (s *BlogMutationService) Update(blogID, authorID uuid.UUID, req UpdateBlogRequest) (*models.Blog, error) {
	var title string
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperror.Validation("Invalid blog data", map[string]string{
				"title": "Title must not be empty",
			})
		}
		if err := s.ensureTitleAvailable(title, authorID, blogID); err != nil {
			return nil, err
		}
	}

	blog, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Server(err, "failed to get blog")
	}

	if s.config.EnforceUpdateOwnership && !blog.IsOwnedBy(authorID) {
		return nil, apperror.Forbidden("Unauthorized to update blog")
	}

	if req.Title != nil {
		blog.Title = title
	}
	if req.Content != nil {
		content := s.sanitizer.Sanitize(*req.Content)
		if strings.TrimSpace(content) == "" {
			return nil, apperror.Validation("Invalid blog data", map[string]string{
				"content": "Content must not be empty",
			})
		}
		blog.Content = content
	}
	if req.Tags != nil {
		blog.Tags = pq.StringArray(utils.UniqueStrings(*req.Tags))
	}
	if req.Category != nil {
		categoryID, err := s.resolveCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		blog.CategoryID = categoryID
	}

	blog.Author = nil
	if err := s.blogRepo.Update(blog); err != nil {
		if isDuplicate(err) {
			return nil, apperror.DuplicatePost()
		}
		if isNotFound(err) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Server(err, "failed to update blog")
	}

	return s.reload(blog.ID)
}

// Delete xóa blog; chỉ tác giả mới được xóa
func (s *BlogMutationService) Delete(blogID, authorID uuid.UUID) error {
	blog, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Blog not found")
		}
		return apperror.Server(err, "failed to get blog")
	}

	if !blog.IsOwnedBy(authorID) {
		return apperror.Forbidden("Unauthorized to delete blog")
	}

	if err := s.blogRepo.Delete(blogID); err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Blog not found")
		}
		return apperror.Server(err, "failed to delete blog")
	}
	return nil
}

// ensureTitleAvailable trả về DuplicatePost nếu authorID đã có blog khác (khác exceptID) với title này
func (s *BlogMutationService) ensureTitleAvailable(title string, authorID, exceptID uuid.UUID) error {
	existing, err := s.blogRepo.FindByTitleAndAuthor(title, authorID)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return apperror.Server(err, "failed to check duplicate blog")
	}
	if existing.ID != exceptID {
		return apperror.DuplicatePost()
	}
	return nil
}

// resolveCategory parse và kiểm tra category tồn tại; raw rỗng trả về nil
func (s *BlogMutationService) resolveCategory(raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	id, err := utils.ParseID(raw, "category")
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if isNotFound(err) {
			return nil, apperror.Validation("Category not found", map[string]string{
				"category": "Category does not exist",
			})
		}
		return nil, apperror.Server(err, "failed to get category")
	}
	return &id, nil
}

func (s *BlogMutationService) reload(id uuid.UUID) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, apperror.Server(err, "failed to reload blog")
	}
	return blog, nil
}
