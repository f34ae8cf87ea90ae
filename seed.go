package blogkit

import (
	"fmt"

	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/service"
	"github.com/techmaster-vietnam/goerrorkit"
)

// DemoPassword là password của các user demo do Seed tạo
const DemoPassword = "password123"

// Seed tạo dữ liệu demo (users, categories, blogs) qua service layer.
// Chạy lại nhiều lần không tạo bản ghi trùng.
func (bk *BlogKit) Seed() error {
	users := []service.RegisterRequest{
		{Email: "alice@example.com", Username: "alice", Password: DemoPassword, ProfilePicture: "https://i.pravatar.cc/150?u=alice"},
		{Email: "bob@example.com", Username: "bob", Password: DemoPassword, ProfilePicture: "https://i.pravatar.cc/150?u=bob"},
	}
	for _, req := range users {
		if _, err := bk.AuthService.Register(req); err != nil && !apperror.Is(err, apperror.KindConflict) {
			return goerrorkit.WrapWithMessage(err, fmt.Sprintf("Failed to initialize user %s", req.Email)).
				WithData(map[string]interface{}{
					"operation": "init_users",
				})
		}
	}

	for _, name := range []string{"Technology", "Travel", "Food"} {
		if _, err := bk.CategoryService.Create(service.CreateCategoryRequest{Name: name}); err != nil && !apperror.Is(err, apperror.KindConflict) {
			return goerrorkit.WrapWithMessage(err, fmt.Sprintf("Failed to initialize category %s", name)).
				WithData(map[string]interface{}{
					"operation": "init_categories",
				})
		}
	}

	alice, err := bk.Repos.Users.GetByUsername("alice")
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to load demo author")
	}

	blogs := []service.CreateBlogRequest{
		{Title: "Getting started with Go", Content: "<p>Go is a small language with a big standard library.</p>", Tags: []string{"go", "backend"}},
		{Title: "Fiber in practice", Content: "<p>Handlers return errors, one ErrorHandler renders them.</p>", Tags: []string{"go", "fiber"}},
		{Title: "Street food in Hanoi", Content: "<p>Bún chả, phở and cà phê trứng.</p>", Tags: []string{"food", "travel"}},
	}
	for _, req := range blogs {
		if _, err := bk.BlogMutationService.Create(alice.ID, req); err != nil && !apperror.Is(err, apperror.KindDuplicatePost) {
			return goerrorkit.WrapWithMessage(err, fmt.Sprintf("Failed to initialize blog %q", req.Title)).
				WithData(map[string]interface{}{
					"operation": "init_blogs",
				})
		}
	}

	return nil
}
