package blogkit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogkit/config"
	"github.com/techmaster-vietnam/blogkit/core"
	"github.com/techmaster-vietnam/blogkit/handlers"
	"github.com/techmaster-vietnam/blogkit/middleware"
	"github.com/techmaster-vietnam/blogkit/repository"
	"github.com/techmaster-vietnam/blogkit/repository/memstore"
	"github.com/techmaster-vietnam/blogkit/router"
	"github.com/techmaster-vietnam/blogkit/service"
	"gorm.io/gorm"
)

// Config là alias cho config.Config để tránh conflict với package config khác
type Config = config.Config

// Repositories gom các repository mà BlogKit cần.
// Có thể dùng gorm (GormRepositories) hoặc in-memory (MemoryRepositories).
type Repositories struct {
	Users      core.UserRepositoryInterface
	Blogs      core.BlogRepositoryInterface
	Categories core.CategoryRepositoryInterface
	Comments   core.CommentRepositoryInterface
}

// GormRepositories tạo repositories trên gorm/postgres
func GormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:      repository.NewUserRepository(db),
		Blogs:      repository.NewBlogRepository(db),
		Categories: repository.NewCategoryRepository(db),
		Comments:   repository.NewCommentRepository(db),
	}
}

// MemoryRepositories tạo repositories in-memory dùng chung một store
func MemoryRepositories() Repositories {
	store := memstore.New()
	return Repositories{
		Users:      store.Users(),
		Blogs:      store.Blogs(),
		Categories: store.Categories(),
		Comments:   store.Comments(),
	}
}

// BlogKit là main struct chứa tất cả dependencies
type BlogKit struct {
	App    *fiber.App
	Config *Config
	Repos  Repositories

	// Services
	AuthService         *service.AuthService
	BlogQueryService    *service.BlogQueryService
	BlogMutationService *service.BlogMutationService
	CategoryService     *service.CategoryService
	CommentService      *service.CommentService

	// Middleware
	AuthMiddleware *middleware.AuthMiddleware

	// Handlers
	AuthHandler     *handlers.AuthHandler
	BlogHandler     *handlers.BlogHandler
	CategoryHandler *handlers.CategoryHandler
	CommentHandler  *handlers.CommentHandler

	// Route registry
	RouteRegistry *router.RouteRegistry
}

// Builder là builder để tạo BlogKit
type Builder struct {
	app    *fiber.App
	repos  Repositories
	config *Config
}

// New tạo mới Builder
func New(app *fiber.App, repos Repositories) *Builder {
	return &Builder{
		app:   app,
		repos: repos,
	}
}

// WithConfig set config cho builder
func (b *Builder) WithConfig(cfg *Config) *Builder {
	b.config = cfg
	return b
}

// Initialize khởi tạo BlogKit với tất cả dependencies
func (b *Builder) Initialize() *BlogKit {
	// Load config nếu chưa có
	if b.config == nil {
		b.config = config.LoadConfig()
	}

	r := b.repos

	// Initialize services
	authService := service.NewAuthService(r.Users, b.config)
	queryService := service.NewBlogQueryService(r.Blogs)
	mutationService := service.NewBlogMutationService(r.Blogs, r.Categories, b.config.Blog)
	categoryService := service.NewCategoryService(r.Categories)
	commentService := service.NewCommentService(r.Comments, r.Blogs)

	return &BlogKit{
		App:                 b.app,
		Config:              b.config,
		Repos:               r,
		AuthService:         authService,
		BlogQueryService:    queryService,
		BlogMutationService: mutationService,
		CategoryService:     categoryService,
		CommentService:      commentService,
		AuthMiddleware:      middleware.NewAuthMiddleware(b.config, r.Users),
		AuthHandler:         handlers.NewAuthHandler(authService, b.config.JWT.Expiration),
		BlogHandler:         handlers.NewBlogHandler(queryService, mutationService),
		CategoryHandler:     handlers.NewCategoryHandler(categoryService),
		CommentHandler:      handlers.NewCommentHandler(commentService),
		RouteRegistry:       router.NewRouteRegistry(),
	}
}
