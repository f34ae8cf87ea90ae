package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/middleware"
	"github.com/techmaster-vietnam/blogkit/utils"
)

// currentUserID lấy user ID do AuthMiddleware set vào context
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return uuid.Nil, apperror.Unauthorized("Authentication required")
	}
	return userID, nil
}

// pathID parse :id trong path
func pathID(c *fiber.Ctx) (uuid.UUID, error) {
	return utils.ParseID(c.Params("id"), "id")
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.Validation("Invalid request body", map[string]string{
			"body": err.Error(),
		})
	}
	return nil
}
