package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogkit/response"
	"github.com/techmaster-vietnam/blogkit/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService   *service.AuthService
	tokenLifetime time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, tokenLifetime time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, tokenLifetime: tokenLifetime}
}

// Register handles registration request
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, fiber.Map{"user": user}, "User registered successfully")
}

// Login handles login request
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return err
	}

	// Cookie cho client trình duyệt, client khác dùng Authorization header
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    resp.Token,
		Expires:  time.Now().Add(h.tokenLifetime),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return response.Success(c, fiber.StatusOK, resp, "Login successful")
}

// Logout xóa cookie token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie("token")
	return response.Success(c, fiber.StatusOK, fiber.Map{}, "Logout successful")
}

// Profile handles get current user request
// GET /api/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(userID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"user": user}, "Profile fetched successfully")
}
