package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/config"
	"github.com/techmaster-vietnam/blogkit/core"
	"github.com/techmaster-vietnam/blogkit/models"
	"github.com/techmaster-vietnam/blogkit/utils"
	"gorm.io/gorm"
)

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	config   *config.Config
	userRepo core.UserRepositoryInterface
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(cfg *config.Config, userRepo core.UserRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{
		config:   cfg,
		userRepo: userRepo,
	}
}

// RequireAuth middleware requires authentication
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return apperror.Unauthorized("Authentication token is required")
		}

		claims, err := utils.ValidateToken(token, m.config.JWT.Secret)
		if err != nil {
			return apperror.Unauthorized("Invalid or expired token")
		}

		userID, err := claims.ParseUserID()
		if err != nil {
			return apperror.Unauthorized("Invalid or expired token")
		}

		user, err := m.userRepo.GetByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.Unauthorized("User no longer exists")
			}
			return apperror.Server(err, "failed to load authenticated user")
		}

		// Store user in context
		c.Locals("user", user)
		c.Locals("userID", user.ID)

		return c.Next()
	}
}

// extractToken extracts token from Authorization header or cookie
func extractToken(c *fiber.Ctx) string {
	// Try Authorization header first
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	// Try cookie
	return c.Cookies("token")
}

// GetUserFromContext gets user from context
func GetUserFromContext(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

// GetUserIDFromContext gets user ID from context
func GetUserIDFromContext(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals("userID").(uuid.UUID)
	return userID, ok
}
