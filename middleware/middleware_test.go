package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/config"
	"github.com/techmaster-vietnam/blogkit/models"
	"github.com/techmaster-vietnam/blogkit/repository/memstore"
	"github.com/techmaster-vietnam/blogkit/response"
	"github.com/techmaster-vietnam/blogkit/utils"
)

const testSecret = "test-secret"

func newAuthApp(t *testing.T) (*fiber.App, *models.User) {
	t.Helper()
	store := memstore.New()
	user := &models.User{Email: "alice@test.com", Username: "alice", Password: "x"}
	if err := store.Users().Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret, Expiration: time.Hour}}
	mw := NewAuthMiddleware(cfg, store.Users())

	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	app.Get("/me", mw.RequireAuth(), func(c *fiber.Ctx) error {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		u, _ := GetUserFromContext(c)
		return c.SendString(userID.String() + ":" + u.Username)
	})
	return app, user
}

func TestRequireAuth(t *testing.T) {
	app, user := newAuthApp(t)
	valid, _ := utils.GenerateToken(user.ID, user.Username, testSecret, time.Hour)
	expired, _ := utils.GenerateToken(user.ID, user.Username, testSecret, -time.Minute)
	ghost, _ := utils.GenerateToken(uuid.New(), "ghost", testSecret, time.Hour)
	forged, _ := utils.GenerateToken(user.ID, user.Username, "other-secret", time.Hour)

	tests := []struct {
		name           string
		header         string
		cookie         string
		expectedStatus int
	}{
		{"no token", "", "", 401},
		{"bearer token", "Bearer " + valid, "", 200},
		{"cookie token", "", valid, 200},
		{"wrong scheme", "Token " + valid, "", 401},
		{"expired token", "Bearer " + expired, "", 401},
		{"forged token", "Bearer " + forged, "", 401},
		{"deleted user", "Bearer " + ghost, "", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.Header.Set("Cookie", "token="+tt.cookie)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, resp.StatusCode)
			}
			if tt.expectedStatus == 200 {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != user.ID.String()+":alice" {
					t.Errorf("Unexpected body %q", body)
				}
			}
		})
	}
}

func TestValidateCreateCategory(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	app.Post("/categories", ValidateCreateCategory(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedInBody string
	}{
		{"valid name", `{"name":"Tech"}`, 201, ""},
		{"missing name", `{}`, 400, "Category name is required"},
		{"empty name", `{"name":""}`, 400, "Category name is required"},
		{"whitespace name", `{"name":"   "}`, 400, "Category name is required"},
		{"malformed body", `{"name":`, 400, "validation_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/categories", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if tt.expectedInBody != "" && !strings.Contains(string(body), tt.expectedInBody) {
				t.Errorf("Expected body to contain %q, got %s", tt.expectedInBody, body)
			}
		})
	}
}
