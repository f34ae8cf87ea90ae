package repository

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/techmaster-vietnam/blogkit/models"
	"github.com/techmaster-vietnam/blogkit/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlogRepository handles blog database operations
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// selectAuthor chỉ lấy các cột public của user khi populate
func selectAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "profile_picture")
}

func selectCategory(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func selectComments(db *gorm.DB) *gorm.DB {
	return db.Select("id", "blog_id", "author_id", "content", "created_at").Order("created_at ASC")
}

// Create creates a new blog
func (r *BlogRepository) Create(blog *models.Blog) error {
	return r.db.Omit(clause.Associations).Create(blog).Error
}

// Update ghi đè mọi cột của blog, không động đến associations.
// Không dùng Save: khi RowsAffected = 0 gorm sẽ INSERT lại blog đã bị xóa
func (r *BlogRepository) Update(blog *models.Blog) error {
	result := r.db.Model(blog).Select("*").Omit(clause.Associations).Updates(blog)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete hard deletes a blog
func (r *BlogRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Blog{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID gets a blog by ID with its author populated
func (r *BlogRepository) GetByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Author", selectAuthor).Where("id = ?", id).First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindByTitleAndAuthor finds the post an author already published under title
func (r *BlogRepository) FindByTitleAndAuthor(title string, authorID uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("title = ? AND author_id = ?", title, authorID).First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// List lists all blogs
func (r *BlogRepository) List() ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Order("created_at ASC").Find(&blogs).Error
	return blogs, err
}

// ListLatest lists the newest blogs first
func (r *BlogRepository) ListLatest(limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&blogs).Error
	return blogs, err
}

// ListByAuthor lists blogs by author ID
func (r *BlogRepository) ListByAuthor(authorID uuid.UUID) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Where("author_id = ?", authorID).Order("created_at ASC").Find(&blogs).Error
	return blogs, err
}

// Search lists blogs matching filter with author, category and comments populated
func (r *BlogRepository) Search(filter models.BlogFilter) ([]models.Blog, error) {
	var blogs []models.Blog

	query := r.db.Model(&models.Blog{})

	if filter.Title != "" {
		query = query.Where("title ILIKE ?", utils.ContainsPattern(filter.Title))
	}
	if filter.Content != "" {
		query = query.Where("content ILIKE ?", utils.ContainsPattern(filter.Content))
	}
	if len(filter.Tags) > 0 {
		// && là toán tử overlap của postgres array
		query = query.Where("tags && ?", pq.StringArray(filter.Tags))
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	err := query.
		Preload("Author", selectAuthor).
		Preload("Category", selectCategory).
		Preload("Comments", selectComments).
		Order("created_at ASC").
		Find(&blogs).Error
	return blogs, err
}
