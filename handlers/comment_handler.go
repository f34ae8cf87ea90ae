package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogkit/response"
	"github.com/techmaster-vietnam/blogkit/service"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List handles list comments of a blog
// GET /api/blogs/:id/comments
func (h *CommentHandler) List(c *fiber.Ctx) error {
	blogID, err := pathID(c)
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListByBlog(blogID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{
		"count":    len(comments),
		"comments": comments,
	}, "Comments fetched successfully")
}

// Create handles add comment request
// POST /api/blogs/:id/comments
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	blogID, err := pathID(c)
	if err != nil {
		return err
	}

	var req service.CreateCommentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	comment, err := h.commentService.Create(blogID, userID, req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, fiber.Map{"comment": comment}, "Comment created successfully")
}
