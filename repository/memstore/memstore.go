// Package memstore là implementation in-memory của các repository interface
// trong core. Dùng cho STORAGE_DRIVER=memory và cho tests.
//
// Store giữ cùng hợp đồng lỗi với các repository gorm: không tìm thấy trả về
// gorm.ErrRecordNotFound, vi phạm unique trả về gorm.ErrDuplicatedKey.
package memstore

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/techmaster-vietnam/blogkit/models"
	"gorm.io/gorm"
)

type blogEntry struct {
	seq  int64
	blog models.Blog
}

type commentEntry struct {
	seq     int64
	comment models.Comment
}

// Store holds every collection behind one lock
type Store struct {
	mu         sync.RWMutex
	seq        int64
	lastTime   time.Time
	now        func() time.Time
	users      map[uuid.UUID]models.User
	categories map[uuid.UUID]models.Category
	blogs      map[uuid.UUID]*blogEntry
	comments   map[uuid.UUID]*commentEntry
}

// New creates an empty store
func New() *Store {
	return &Store{
		now:        time.Now,
		users:      make(map[uuid.UUID]models.User),
		categories: make(map[uuid.UUID]models.Category),
		blogs:      make(map[uuid.UUID]*blogEntry),
		comments:   make(map[uuid.UUID]*commentEntry),
	}
}

// WithClock thay nguồn thời gian (dùng trong tests)
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Users returns the user repository view of the store
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Blogs returns the blog repository view of the store
func (s *Store) Blogs() *BlogRepository { return &BlogRepository{s: s} }

// Categories returns the category repository view of the store
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s: s} }

// Comments returns the comment repository view of the store
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s: s} }

// tick trả về timestamp tăng dần nghiêm ngặt và sequence kế tiếp.
// Caller phải giữ write lock.
func (s *Store) tick() (time.Time, int64) {
	t := s.now()
	if !t.After(s.lastTime) {
		t = s.lastTime.Add(time.Microsecond)
	}
	s.lastTime = t
	s.seq++
	return t, s.seq
}

// UserRepository is the in-memory user repository
type UserRepository struct{ s *Store }

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now, _ := r.s.tick()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = *user
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

// GetByUsername gets a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *UserRepository) find(match func(models.User) bool) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// CategoryRepository is the in-memory category repository
type CategoryRepository struct{ s *Store }

// Create creates a new category
func (r *CategoryRepository) Create(category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.categories {
		if c.Name == category.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	now, _ := r.s.tick()
	category.CreatedAt, category.UpdatedAt = now, now
	r.s.categories[category.ID] = *category
	return nil
}

// GetByID gets a category by ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

// List lists all categories by name
func (r *CategoryRepository) List() ([]models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	categories := make([]models.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// CommentRepository is the in-memory comment repository
type CommentRepository struct{ s *Store }

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Giống foreign key trên blogs(id)
	if _, ok := r.s.blogs[comment.BlogID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	now, seq := r.s.tick()
	comment.CreatedAt, comment.UpdatedAt = now, now
	r.s.comments[comment.ID] = &commentEntry{seq: seq, comment: *comment}
	return nil
}

// ListByBlog lists comments of a blog, oldest first
func (r *CommentRepository) ListByBlog(blogID uuid.UUID) ([]models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.commentsOf(blogID), nil
}

// commentsOf requires at least a read lock
func (s *Store) commentsOf(blogID uuid.UUID) []models.Comment {
	entries := make([]*commentEntry, 0)
	for _, e := range s.comments {
		if e.comment.BlogID == blogID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	comments := make([]models.Comment, len(entries))
	for i, e := range entries {
		comments[i] = e.comment
	}
	return comments
}

// BlogRepository is the in-memory blog repository
type BlogRepository struct{ s *Store }

// titleTaken requires at least a read lock
func (s *Store) titleTaken(title string, authorID, exceptID uuid.UUID) bool {
	for id, e := range s.blogs {
		if id != exceptID && e.blog.AuthorID == authorID && e.blog.Title == title {
			return true
		}
	}
	return false
}

// detach copies a stored blog without associations
func detach(b models.Blog) models.Blog {
	b.Tags = append(pq.StringArray{}, b.Tags...)
	if b.CategoryID != nil {
		id := *b.CategoryID
		b.CategoryID = &id
	}
	b.Author, b.Category, b.Comments = nil, nil, nil
	return b
}

// Create creates a new blog
func (r *BlogRepository) Create(blog *models.Blog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.titleTaken(blog.Title, blog.AuthorID, uuid.Nil) {
		return gorm.ErrDuplicatedKey
	}
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	if blog.Tags == nil {
		blog.Tags = pq.StringArray{}
	}
	now, seq := r.s.tick()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now
	r.s.blogs[blog.ID] = &blogEntry{seq: seq, blog: detach(*blog)}
	return nil
}

// Update saves blog columns without touching associations
func (r *BlogRepository) Update(blog *models.Blog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry, ok := r.s.blogs[blog.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if r.s.titleTaken(blog.Title, blog.AuthorID, blog.ID) {
		return gorm.ErrDuplicatedKey
	}
	now, _ := r.s.tick()
	blog.UpdatedAt = now
	entry.blog = detach(*blog)
	return nil
}

// Delete deletes a blog and its comments
func (r *BlogRepository) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.blogs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.blogs, id)
	for cid, e := range r.s.comments {
		if e.comment.BlogID == id {
			delete(r.s.comments, cid)
		}
	}
	return nil
}

// GetByID gets a blog by ID with its author populated
func (r *BlogRepository) GetByID(id uuid.UUID) (*models.Blog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.blogs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	blog := detach(e.blog)
	r.s.populateAuthor(&blog)
	return &blog, nil
}

// FindByTitleAndAuthor finds the post an author already published under title
func (r *BlogRepository) FindByTitleAndAuthor(title string, authorID uuid.UUID) (*models.Blog, error) {
	blogs := r.collect(func(b *models.Blog) bool {
		return b.Title == title && b.AuthorID == authorID
	})
	if len(blogs) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &blogs[0], nil
}

// List lists all blogs
func (r *BlogRepository) List() ([]models.Blog, error) {
	return r.collect(nil), nil
}

// ListLatest lists the newest blogs first
func (r *BlogRepository) ListLatest(limit int) ([]models.Blog, error) {
	blogs := r.collect(nil)
	sort.SliceStable(blogs, func(i, j int) bool { return blogs[i].CreatedAt.After(blogs[j].CreatedAt) })
	if limit >= 0 && len(blogs) > limit {
		blogs = blogs[:limit]
	}
	return blogs, nil
}

// ListByAuthor lists blogs by author ID
func (r *BlogRepository) ListByAuthor(authorID uuid.UUID) ([]models.Blog, error) {
	return r.collect(func(b *models.Blog) bool { return b.AuthorID == authorID }), nil
}

// Search lists blogs matching filter with author, category and comments populated
func (r *BlogRepository) Search(filter models.BlogFilter) ([]models.Blog, error) {
	blogs := r.collect(func(b *models.Blog) bool { return matches(b, filter) })

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range blogs {
		r.s.populateAuthor(&blogs[i])
		if blogs[i].CategoryID != nil {
			if c, ok := r.s.categories[*blogs[i].CategoryID]; ok {
				blogs[i].Category = c.Summary()
			}
		}
		blogs[i].Comments = r.s.commentsOf(blogs[i].ID)
	}
	return blogs, nil
}

// collect returns detached copies of blogs accepted by keep, in creation order
func (r *BlogRepository) collect(keep func(*models.Blog) bool) []models.Blog {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := make([]*blogEntry, 0, len(r.s.blogs))
	for _, e := range r.s.blogs {
		if keep == nil || keep(&e.blog) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	blogs := make([]models.Blog, len(entries))
	for i, e := range entries {
		blogs[i] = detach(e.blog)
	}
	return blogs
}

// populateAuthor requires at least a read lock
func (s *Store) populateAuthor(b *models.Blog) {
	if u, ok := s.users[b.AuthorID]; ok {
		b.Author = u.Summary()
	}
}

func matches(b *models.Blog, f models.BlogFilter) bool {
	if f.Title != "" && !containsFold(b.Title, f.Title) {
		return false
	}
	if f.Content != "" && !containsFold(b.Content, f.Content) {
		return false
	}
	if len(f.Tags) > 0 && !overlaps(b.Tags, f.Tags) {
		return false
	}
	if f.AuthorID != nil && b.AuthorID != *f.AuthorID {
		return false
	}
	if f.CategoryID != nil && (b.CategoryID == nil || *b.CategoryID != *f.CategoryID) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func overlaps(tags []string, wanted []string) bool {
	for _, t := range tags {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}
