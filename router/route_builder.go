package router

import (
	"github.com/gofiber/fiber/v2"
)

// RouteBuilder cung cấp fluent API để cấu hình route
type RouteBuilder struct {
	metadata *RouteMetadata
	router   fiber.Router
	registry *RouteRegistry
	authMw   Authenticator

	middlewares []fiber.Handler
}

// Public đánh dấu route là public (không cần authentication)
func (rb *RouteBuilder) Public() *RouteBuilder {
	rb.metadata.AccessType = AccessPublic
	return rb
}

// Protected yêu cầu user đã đăng nhập
func (rb *RouteBuilder) Protected() *RouteBuilder {
	rb.metadata.AccessType = AccessProtected
	return rb
}

// Use thêm middleware chạy sau authentication, trước handler
func (rb *RouteBuilder) Use(handlers ...fiber.Handler) *RouteBuilder {
	rb.middlewares = append(rb.middlewares, handlers...)
	return rb
}

// Description thêm mô tả cho route
func (rb *RouteBuilder) Description(desc string) *RouteBuilder {
	rb.metadata.Description = desc
	return rb
}

// Register hoàn tất việc đăng ký route và áp dụng middleware phù hợp
func (rb *RouteBuilder) Register() {
	rb.registry.Register(rb.metadata)

	handlers := make([]fiber.Handler, 0, len(rb.middlewares)+2)
	if rb.metadata.AccessType == AccessProtected {
		handlers = append(handlers, rb.authMw.RequireAuth())
	}
	handlers = append(handlers, rb.middlewares...)
	handlers = append(handlers, rb.metadata.Handler)

	rb.router.Add(rb.metadata.Method, rb.metadata.Path, handlers...)
}
