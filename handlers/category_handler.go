package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogkit/response"
	"github.com/techmaster-vietnam/blogkit/service"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles list categories request
// GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List()
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{
		"count":      len(categories),
		"categories": categories,
	}, "Categories fetched successfully")
}

// Create handles create category request
// POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req service.CreateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, fiber.Map{"category": category}, "Category created successfully")
}
