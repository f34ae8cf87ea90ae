package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/config"
	"github.com/techmaster-vietnam/blogkit/models"
	"github.com/techmaster-vietnam/blogkit/repository/memstore"
	"github.com/techmaster-vietnam/blogkit/utils"
)

type fixture struct {
	store      *memstore.Store
	queries    *BlogQueryService
	mutations  *BlogMutationService
	categories *CategoryService
	comments   *CommentService
}

func newFixture(cfg config.BlogConfig) *fixture {
	store := memstore.New()
	return &fixture{
		store:      store,
		queries:    NewBlogQueryService(store.Blogs()),
		mutations:  NewBlogMutationService(store.Blogs(), store.Categories(), cfg),
		categories: NewCategoryService(store.Categories()),
		comments:   NewCommentService(store.Comments(), store.Blogs()),
	}
}

func (f *fixture) user(t *testing.T, username string) uuid.UUID {
	t.Helper()
	u := &models.User{Email: username + "@test.com", Username: username, Password: "x"}
	if err := f.store.Users().Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

func (f *fixture) blog(t *testing.T, authorID uuid.UUID, title string, tags ...string) *models.Blog {
	t.Helper()
	blog, err := f.mutations.Create(authorID, CreateBlogRequest{Title: title, Content: "content of " + title, Tags: tags})
	if err != nil {
		t.Fatalf("create blog %q: %v", title, err)
	}
	return blog
}

func expectKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	if !apperror.Is(err, kind) {
		t.Fatalf("Expected %s error, got %v", kind, err)
	}
}

func TestBuildSearchFilter(t *testing.T) {
	authorID := uuid.New()

	filter, err := BuildSearchFilter(SearchQuery{
		Title:  "  go ",
		Tags:   "a, b,,",
		Author: authorID.String(),
	})
	if err != nil {
		t.Fatalf("BuildSearchFilter: %v", err)
	}
	if filter.Title != "go" {
		t.Errorf("Expected trimmed title, got %q", filter.Title)
	}
	if len(filter.Tags) != 2 || filter.Tags[0] != "a" || filter.Tags[1] != "b" {
		t.Errorf("Expected tags [a b], got %v", filter.Tags)
	}
	if filter.AuthorID == nil || *filter.AuthorID != authorID {
		t.Errorf("Expected author %s, got %v", authorID, filter.AuthorID)
	}
	if filter.CategoryID != nil {
		t.Errorf("Expected no category constraint")
	}

	empty, err := BuildSearchFilter(SearchQuery{Title: "   ", Tags: " , "})
	if err != nil || !empty.IsEmpty() {
		t.Errorf("Expected empty filter, got %+v (err=%v)", empty, err)
	}

	_, err = BuildSearchFilter(SearchQuery{Category: "nope"})
	expectKind(t, err, apperror.KindValidation)
}

func TestBlogMutationService_Create(t *testing.T) {
	f := newFixture(config.BlogConfig{})
	alice := f.user(t, "alice")

	blog, err := f.mutations.Create(alice, CreateBlogRequest{
		Title:   "Hello",
		Content: `<p>Hi</p><script>alert(1)</script>`,
		Tags:    []string{"go", "go", " web "},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if blog.Author == nil || blog.Author.Username != "alice" {
		t.Errorf("Expected author populated, got %+v", blog.Author)
	}
	if strings.Contains(blog.Content, "<script>") {
		t.Errorf("Expected content sanitized, got %q", blog.Content)
	}
	if len(blog.Tags) != 2 || blog.Tags[0] != "go" || blog.Tags[1] != "web" {
		t.Errorf("Expected tags [go web], got %v", blog.Tags)
	}

	tests := []struct {
		name string
		req  CreateBlogRequest
		kind apperror.Kind
	}{
		{"missing title", CreateBlogRequest{Content: "x"}, apperror.KindValidation},
		{"missing content", CreateBlogRequest{Title: "T"}, apperror.KindValidation},
		{"script-only content", CreateBlogRequest{Title: "T", Content: "<script>x</script>"}, apperror.KindValidation},
		{"invalid category", CreateBlogRequest{Title: "T", Content: "x", Category: "bad"}, apperror.KindValidation},
		{"unknown category", CreateBlogRequest{Title: "T", Content: "x", Category: uuid.NewString()}, apperror.KindValidation},
		{"duplicate title", CreateBlogRequest{Title: "Hello", Content: "again"}, apperror.KindDuplicatePost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.mutations.Create(alice, tt.req)
			expectKind(t, err, tt.kind)
		})
	}

	all, _ := f.queries.ListAll()
	if len(all) != 1 {
		t.Errorf("Expected 1 blog after rejected creates, got %d", len(all))
	}
}

func TestBlogMutationService_CreateSameTitleDifferentAuthors(t *testing.T) {
	f := newFixture(config.BlogConfig{})
	f.blog(t, f.user(t, "alice"), "Hello")
	f.blog(t, f.user(t, "bob"), "Hello")

	all, _ := f.queries.ListAll()
	if len(all) != 2 {
		t.Errorf("Expected 2 blogs, got %d", len(all))
	}
}

func TestBlogMutationService_CreateWithCategory(t *testing.T) {
	f := newFixture(config.BlogConfig{})
	alice := f.user(t, "alice")
	tech, err := f.categories.Create(CreateCategoryRequest{Name: "Tech"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	blog, err := f.mutations.Create(alice, CreateBlogRequest{Title: "T", Content: "x", Category: tech.ID.String()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if blog.CategoryID == nil || *blog.CategoryID != tech.ID {
		t.Errorf("Expected category %s, got %v", tech.ID, blog.CategoryID)
	}
}

func TestBlogMutationService_Update(t *testing.T) {
	f := newFixture(config.BlogConfig{})
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	first := f.blog(t, alice, "First", "go")
	f.blog(t, alice, "Second")

	newContent := "updated"
	updated, err := f.mutations.Update(first.ID, alice, UpdateBlogRequest{Content: &newContent})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "First" || updated.Content != "updated" || len(updated.Tags) != 1 {
		t.Errorf("Expected only content changed, got %+v", updated)
	}

	sameTitle := "First"
	if _, err := f.mutations.Update(first.ID, alice, UpdateBlogRequest{Title: &sameTitle}); err != nil {
		t.Errorf("Keeping own title should be allowed, got %v", err)
	}

	taken := "Second"
	_, err = f.mutations.Update(first.ID, alice, UpdateBlogRequest{Title: &taken})
	expectKind(t, err, apperror.KindDuplicatePost)

	_, err = f.mutations.Update(uuid.New(), alice, UpdateBlogRequest{Content: &newContent})
	expectKind(t, err, apperror.KindNotFound)

	// Ownership không bị kiểm tra khi update mặc định
	if _, err := f.mutations.Update(first.ID, bob, UpdateBlogRequest{Content: &newContent}); err != nil {
		t.Errorf("Expected update by non-owner to pass with default config, got %v", err)
	}
}

func TestBlogMutationService_UpdateEnforcesOwnership(t *testing.T) {
	f := newFixture(config.BlogConfig{EnforceUpdateOwnership: true})
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	blog := f.blog(t, alice, "Mine")

	content := "hijack"
	_, err := f.mutations.Update(blog.ID, bob, UpdateBlogRequest{Content: &content})
	expectKind(t, err, apperror.KindForbidden)

	got, _ := f.queries.GetByID(blog.ID)
	if got.Content == "hijack" {
		t.Errorf("Expected blog unchanged after forbidden update")
	}
}

func TestBlogMutationService_Delete(t *testing.T) {
	f := newFixture(config.BlogConfig{})
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	blog := f.blog(t, alice, "Hello")

	err := f.mutations.Delete(blog.ID, bob)
	expectKind(t, err, apperror.KindForbidden)
	if _, err := f.queries.GetByID(blog.ID); err != nil {
		t.Fatalf("Expected blog to remain after forbidden delete, got %v", err)
	}

	if err := f.mutations.Delete(blog.ID, alice); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = f.queries.GetByID(blog.ID)
	expectKind(t, err, apperror.KindNotFound)

	err = f.mutations.Delete(blog.ID, alice)
	expectKind(t, err, apperror.KindNotFound)
}

func TestBlogQueryService_ListLatest(t *testing.T) {
	f := newFixture(config.BlogConfig{})

	latest, err := f.queries.ListLatest()
	if err != nil {
		t.Fatalf("ListLatest: %v", err)
	}
	if latest == nil || len(latest) != 0 {
		t.Errorf("Expected empty non-nil list, got %#v", latest)
	}

	alice := f.user(t, "alice")
	for _, title := range []string{"P1", "P2", "P3"} {
		f.blog(t, alice, title)
	}

	latest, _ = f.queries.ListLatest()
	if len(latest) != 1 || latest[0].Title != "P3" {
		t.Errorf("Expected [P3], got %+v", latest)
	}
}

func TestBlogQueryService_ListByAuthor(t *testing.T) {
	f := newFixture(config.BlogConfig{})
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	f.blog(t, alice, "A1")
	f.blog(t, bob, "B1")
	f.blog(t, alice, "A2")

	blogs, err := f.queries.ListByAuthor(alice)
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	if len(blogs) != 2 || blogs[0].Title != "A1" || blogs[1].Title != "A2" {
		t.Errorf("Expected [A1 A2], got %+v", blogs)
	}

	none, _ := f.queries.ListByAuthor(uuid.New())
	if none == nil || len(none) != 0 {
		t.Errorf("Expected empty non-nil list, got %#v", none)
	}
}

func TestBlogQueryService_Search(t *testing.T) {
	f := newFixture(config.BlogConfig{})
	alice := f.user(t, "alice")
	f.blog(t, alice, "P1", "a")
	f.blog(t, alice, "P2", "b", "c")
	f.blog(t, alice, "P3", "c")

	all, _ := f.queries.ListAll()
	everything, err := f.queries.Search(SearchQuery{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(everything) != len(all) {
		t.Errorf("Expected empty search to return %d blogs, got %d", len(all), len(everything))
	}

	byTags, _ := f.queries.Search(SearchQuery{Tags: "a,b"})
	if len(byTags) != 2 || byTags[0].Title != "P1" || byTags[1].Title != "P2" {
		t.Errorf("Expected [P1 P2], got %+v", byTags)
	}

	_, err = f.queries.Search(SearchQuery{Author: "not-an-id"})
	expectKind(t, err, apperror.KindValidation)
}

func TestCategoryService(t *testing.T) {
	f := newFixture(config.BlogConfig{})

	category, err := f.categories.Create(CreateCategoryRequest{Name: "  Tech "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if category.Name != "Tech" {
		t.Errorf("Expected trimmed name, got %q", category.Name)
	}

	_, err = f.categories.Create(CreateCategoryRequest{Name: "Tech"})
	expectKind(t, err, apperror.KindConflict)

	_, err = f.categories.Create(CreateCategoryRequest{Name: "   "})
	expectKind(t, err, apperror.KindValidation)

	list, _ := f.categories.List()
	if len(list) != 1 {
		t.Errorf("Expected 1 category, got %d", len(list))
	}
}

func TestCommentService(t *testing.T) {
	f := newFixture(config.BlogConfig{})
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	blog := f.blog(t, alice, "Hello")

	comment, err := f.comments.Create(blog.ID, bob, CreateCommentRequest{Content: "<b>Nice</b> post"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if comment.Content != "Nice post" {
		t.Errorf("Expected stripped content, got %q", comment.Content)
	}

	_, err = f.comments.Create(blog.ID, bob, CreateCommentRequest{Content: "  "})
	expectKind(t, err, apperror.KindValidation)

	_, err = f.comments.Create(uuid.New(), bob, CreateCommentRequest{Content: "x"})
	expectKind(t, err, apperror.KindNotFound)

	list, _ := f.comments.ListByBlog(blog.ID)
	if len(list) != 1 {
		t.Errorf("Expected 1 comment, got %d", len(list))
	}

	searched, _ := f.queries.Search(SearchQuery{})
	if len(searched) != 1 || len(searched[0].Comments) != 1 {
		t.Errorf("Expected search to populate comments, got %+v", searched)
	}
}

func TestAuthService(t *testing.T) {
	store := memstore.New()
	cfg := &config.Config{
		JWT:      config.JWTConfig{Secret: "secret", Expiration: time.Hour},
		Password: config.PasswordConfig{MinLength: 8},
	}
	auth := NewAuthService(store.Users(), cfg)

	user, err := auth.Register(RegisterRequest{Email: "Alice@Example.com", Username: "alice", Password: "password1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "alice@example.com" || user.Password == "password1" {
		t.Errorf("Expected normalized email and hashed password, got %+v", user)
	}

	tests := []struct {
		name string
		req  RegisterRequest
		kind apperror.Kind
	}{
		{"duplicate email", RegisterRequest{Email: "alice@example.com", Username: "other", Password: "password1"}, apperror.KindConflict},
		{"duplicate username", RegisterRequest{Email: "other@example.com", Username: "alice", Password: "password1"}, apperror.KindConflict},
		{"bad email", RegisterRequest{Email: "nope", Username: "bob", Password: "password1"}, apperror.KindValidation},
		{"short password", RegisterRequest{Email: "bob@example.com", Username: "bob", Password: "short"}, apperror.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(tt.req)
			expectKind(t, err, tt.kind)
		})
	}

	resp, err := auth.Login(LoginRequest{Email: "alice@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := utils.ValidateToken(resp.Token, "secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if id, _ := claims.ParseUserID(); id != user.ID {
		t.Errorf("Expected token for %s, got %s", user.ID, id)
	}

	if _, err := auth.Login(LoginRequest{Username: "alice", Password: "password1"}); err != nil {
		t.Errorf("Login by username: %v", err)
	}
	_, err = auth.Login(LoginRequest{Password: "password1"})
	expectKind(t, err, apperror.KindValidation)
	_, err = auth.Login(LoginRequest{Email: "alice@example.com", Password: "wrong-pass"})
	expectKind(t, err, apperror.KindUnauthorized)
	_, err = auth.Login(LoginRequest{Email: "ghost@example.com", Password: "password1"})
	expectKind(t, err, apperror.KindUnauthorized)

	profile, err := auth.Profile(user.ID)
	if err != nil || profile.Username != "alice" {
		t.Errorf("Profile = %+v, %v", profile, err)
	}
	_, err = auth.Profile(uuid.New())
	expectKind(t, err, apperror.KindNotFound)
}
