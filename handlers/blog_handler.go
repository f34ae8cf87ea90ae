package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogkit/models"
	"github.com/techmaster-vietnam/blogkit/response"
	"github.com/techmaster-vietnam/blogkit/service"
)

// BlogHandler handles blog endpoints
type BlogHandler struct {
	queries   *service.BlogQueryService
	mutations *service.BlogMutationService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(queries *service.BlogQueryService, mutations *service.BlogMutationService) *BlogHandler {
	return &BlogHandler{
		queries:   queries,
		mutations: mutations,
	}
}

func blogList(blogs []models.Blog) fiber.Map {
	return fiber.Map{
		"count": len(blogs),
		"blogs": blogs,
	}
}

// List handles list all blogs request
// GET /api/blogs
func (h *BlogHandler) List(c *fiber.Ctx) error {
	blogs, err := h.queries.ListAll()
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, blogList(blogs), "Blogs fetched successfully")
}

// Latest handles latest blog request
// GET /api/blogs/latest
func (h *BlogHandler) Latest(c *fiber.Ctx) error {
	blogs, err := h.queries.ListLatest()
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, blogList(blogs), "Lastest blog fetched successfully")
}

// Mine handles list blogs of current user
// GET /api/blogs/mine
func (h *BlogHandler) Mine(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	blogs, err := h.queries.ListByAuthor(userID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, blogList(blogs), "Blogs fetched successfully")
}

// Search handles search blogs request
// GET /api/blogs/search?title=&content=&tags=a,b&author=&category=
func (h *BlogHandler) Search(c *fiber.Ctx) error {
	blogs, err := h.queries.Search(service.SearchQuery{
		Title:    c.Query("title"),
		Content:  c.Query("content"),
		Tags:     c.Query("tags"),
		Author:   c.Query("author"),
		Category: c.Query("category"),
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, blogList(blogs), "Search results fetched successfully")
}

// GetByID handles get blog by ID request
// GET /api/blogs/:id
func (h *BlogHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	blog, err := h.queries.GetByID(id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"blog": blog}, "Blog fetched successfully")
}

// Create handles create blog request
// POST /api/blogs
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req service.CreateBlogRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	blog, err := h.mutations.Create(userID, req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, fiber.Map{"blog": blog}, "Blog created successfully")
}

// Update handles update blog request
// PUT|PATCH /api/blogs/:id
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req service.UpdateBlogRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	blog, err := h.mutations.Update(id, userID, req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"blog": blog}, "Blog updated successfully")
}

// Delete handles delete blog request
// DELETE /api/blogs/:id
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.mutations.Delete(id, userID); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{}, "Blog deleted successfully")
}
