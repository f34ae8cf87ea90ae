package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogkit/apperror"
)

// ValidateCreateCategory chặn request tạo category khi name rỗng (sau khi trim)
func ValidateCreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Name string `json:"name"`
		}
		if err := c.BodyParser(&body); err != nil {
			return apperror.Validation("Invalid request body", map[string]string{
				"body": err.Error(),
			})
		}

		if strings.TrimSpace(body.Name) == "" {
			return apperror.Validation("Invalid category data", map[string]string{
				"name": "Category name is required",
			})
		}

		return c.Next()
	}
}
