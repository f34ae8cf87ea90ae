package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Authenticator là middleware xác thực dùng cho route Protected
type Authenticator interface {
	RequireAuth() fiber.Handler
}

// AuthRouter wrapper cho fiber.Router với fluent API để cấu hình routes
type AuthRouter struct {
	router   fiber.Router
	registry *RouteRegistry
	authMw   Authenticator
	prefix   string // Prefix path của group (để build full path)
}

// NewAuthRouter tạo mới AuthRouter
func NewAuthRouter(router fiber.Router, registry *RouteRegistry, authMw Authenticator) *AuthRouter {
	return &AuthRouter{
		router:   router,
		registry: registry,
		authMw:   authMw,
		prefix:   "", // Root router không có prefix
	}
}

// Get tạo GET route với fluent API
func (ar *AuthRouter) Get(path string, handler fiber.Handler) *RouteBuilder {
	return ar.createRouteBuilder(fiber.MethodGet, path, handler)
}

// Post tạo POST route với fluent API
func (ar *AuthRouter) Post(path string, handler fiber.Handler) *RouteBuilder {
	return ar.createRouteBuilder(fiber.MethodPost, path, handler)
}

// Put tạo PUT route với fluent API
func (ar *AuthRouter) Put(path string, handler fiber.Handler) *RouteBuilder {
	return ar.createRouteBuilder(fiber.MethodPut, path, handler)
}

// Patch tạo PATCH route với fluent API
func (ar *AuthRouter) Patch(path string, handler fiber.Handler) *RouteBuilder {
	return ar.createRouteBuilder(fiber.MethodPatch, path, handler)
}

// Delete tạo DELETE route với fluent API
func (ar *AuthRouter) Delete(path string, handler fiber.Handler) *RouteBuilder {
	return ar.createRouteBuilder(fiber.MethodDelete, path, handler)
}

// Group tạo router group với middleware tùy chọn
func (ar *AuthRouter) Group(prefix string, handlers ...fiber.Handler) *AuthRouter {
	group := ar.router.Group(prefix, handlers...)
	newRouter := NewAuthRouter(group, ar.registry, ar.authMw)
	newRouter.prefix = joinPath(ar.prefix, prefix)
	if newRouter.prefix == "/" {
		newRouter.prefix = ""
	}
	return newRouter
}

// joinPath nối prefix và path, luôn bắt đầu bằng "/" và không có "/" ở cuối (trừ root)
func joinPath(prefix, path string) string {
	full := strings.Trim(strings.TrimSuffix(prefix, "/")+"/"+strings.TrimPrefix(path, "/"), "/")
	return "/" + full
}

// convertPathToPattern converts path parameters to wildcard pattern
// Ví dụ: /blogs/:id -> /blogs/*, /blogs/:id/comments -> /blogs/*/comments
func convertPathToPattern(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			parts[i] = "*"
		}
	}
	return strings.Join(parts, "/")
}

// createRouteBuilder tạo RouteBuilder cho route
func (ar *AuthRouter) createRouteBuilder(method, path string, handler fiber.Handler) *RouteBuilder {
	return &RouteBuilder{
		metadata: &RouteMetadata{
			Method:     method,
			Path:       path,
			FullPath:   joinPath(ar.prefix, path),
			Pattern:    convertPathToPattern(joinPath(ar.prefix, path)),
			Handler:    handler,
			AccessType: AccessPublic,
		},
		router:   ar.router,
		registry: ar.registry,
		authMw:   ar.authMw,
	}
}
