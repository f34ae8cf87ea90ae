package blogkit

import (
	"github.com/techmaster-vietnam/blogkit/middleware"
	"github.com/techmaster-vietnam/blogkit/router"
)

// SetupRoutes đăng ký toàn bộ API routes dưới /api
func (bk *BlogKit) SetupRoutes() {
	api := router.NewAuthRouter(bk.App, bk.RouteRegistry, bk.AuthMiddleware).Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", bk.AuthHandler.Register).
		Public().
		Description("Đăng ký người dùng mới").
		Register()
	auth.Post("/login", bk.AuthHandler.Login).
		Public().
		Description("Đăng nhập người dùng").
		Register()
	auth.Post("/logout", bk.AuthHandler.Logout).
		Public().
		Description("Đăng xuất người dùng").
		Register()
	auth.Get("/profile", bk.AuthHandler.Profile).
		Protected().
		Description("Lấy thông tin profile").
		Register()

	// Blog routes: static paths phải đăng ký trước /:id
	blogs := api.Group("/blogs")
	blogs.Get("/", bk.BlogHandler.List).
		Public().
		Description("Danh sách tất cả blog").
		Register()
	blogs.Get("/latest", bk.BlogHandler.Latest).
		Public().
		Description("Blog mới nhất").
		Register()
	blogs.Get("/search", bk.BlogHandler.Search).
		Public().
		Description("Tìm kiếm blog theo title, content, tags, author, category").
		Register()
	blogs.Get("/mine", bk.BlogHandler.Mine).
		Protected().
		Description("Blog của user đang đăng nhập").
		Register()
	blogs.Get("/:id", bk.BlogHandler.GetByID).
		Public().
		Description("Xem chi tiết blog").
		Register()
	blogs.Post("/", bk.BlogHandler.Create).
		Protected().
		Description("Tạo blog mới").
		Register()
	blogs.Put("/:id", bk.BlogHandler.Update).
		Protected().
		Description("Cập nhật blog").
		Register()
	blogs.Patch("/:id", bk.BlogHandler.Update).
		Protected().
		Description("Cập nhật một phần blog").
		Register()
	blogs.Delete("/:id", bk.BlogHandler.Delete).
		Protected().
		Description("Xóa blog (chỉ tác giả)").
		Register()
	blogs.Get("/:id/comments", bk.CommentHandler.List).
		Public().
		Description("Danh sách comment của blog").
		Register()
	blogs.Post("/:id/comments", bk.CommentHandler.Create).
		Protected().
		Description("Thêm comment vào blog").
		Register()

	// Category routes
	categories := api.Group("/categories")
	categories.Get("/", bk.CategoryHandler.List).
		Public().
		Description("Danh sách category").
		Register()
	categories.Post("/", bk.CategoryHandler.Create).
		Protected().
		Use(middleware.ValidateCreateCategory()).
		Description("Tạo category mới").
		Register()

	api.Get("/routes", bk.RouteRegistry.Handler()).
		Public().
		Description("Danh sách routes đã đăng ký").
		Register()
}
