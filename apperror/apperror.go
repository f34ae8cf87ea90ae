// Package apperror gắn code/HTTP status của API lên các lỗi goerrorkit.
//
// Mỗi constructor dựng lỗi bằng goerrorkit (NewValidationError, NewBusinessError,
// NewAuthError, WrapWithMessage) rồi bọc lại để response layer biết code trả về
// client. errors.As(err, &*goerrorkit.AppError) luôn thành công trên lỗi do
// package này tạo ra.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/techmaster-vietnam/goerrorkit"
)

// Kind phân loại lỗi nghiệp vụ, quyết định HTTP status và code trả về client
type Kind string

const (
	KindServer        Kind = "server_error"
	KindDuplicatePost Kind = "duplicate_post"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindForbidden     Kind = "forbidden"
	KindValidation    Kind = "validation_error"
	KindUnauthorized  Kind = "unauthorized"
)

// Error là lỗi có phân loại được trả về từ service layer
type Error struct {
	Kind    Kind
	Code    string            // Code trả về trong envelope
	Status  int               // HTTP status
	Message string            // Message an toàn để trả về client
	Fields  map[string]string // Lỗi theo từng field (chỉ dùng cho validation)
	Err     error             // *goerrorkit.AppError
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func data(code string) map[string]interface{} {
	return map[string]interface{}{"code": code}
}

// NotFound tạo lỗi không tìm thấy resource
func NotFound(message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    "not_found",
		Status:  http.StatusNotFound,
		Message: message,
		Err:     goerrorkit.NewBusinessError(http.StatusNotFound, message).WithData(data("not_found")),
	}
}

// Forbidden tạo lỗi vi phạm quyền sở hữu
func Forbidden(message string) *Error {
	return &Error{
		Kind:    KindForbidden,
		Code:    "forbidden",
		Status:  http.StatusForbidden,
		Message: message,
		Err:     goerrorkit.NewAuthError(http.StatusForbidden, message).WithData(data("forbidden")),
	}
}

// Unauthorized tạo lỗi chưa xác thực
func Unauthorized(message string) *Error {
	return &Error{
		Kind:    KindUnauthorized,
		Code:    "unauthorized",
		Status:  http.StatusUnauthorized,
		Message: message,
		Err:     goerrorkit.NewAuthError(http.StatusUnauthorized, message).WithData(data("unauthorized")),
	}
}

// DuplicatePost is returned when the author already owns a post with the same title.
func DuplicatePost() *Error {
	const message = "Blog with the same title of author already exists"
	return &Error{
		Kind:    KindDuplicatePost,
		Code:    "duplicate_post",
		Status:  http.StatusBadRequest,
		Message: message,
		Err:     goerrorkit.NewBusinessError(http.StatusBadRequest, message).WithData(data("duplicate_post")),
	}
}

// Conflict tạo lỗi trùng lặp dữ liệu (category name, email, username...)
func Conflict(code, message string) *Error {
	return &Error{
		Kind:    KindConflict,
		Code:    code,
		Status:  http.StatusBadRequest,
		Message: message,
		Err:     goerrorkit.NewBusinessError(http.StatusBadRequest, message).WithData(data(code)),
	}
}

// Validation tạo lỗi dữ liệu đầu vào không hợp lệ
func Validation(message string, fields map[string]string) *Error {
	details := make(map[string]interface{}, len(fields))
	for field, msg := range fields {
		details[field] = msg
	}
	return &Error{
		Kind:    KindValidation,
		Code:    "validation_error",
		Status:  http.StatusBadRequest,
		Message: message,
		Fields:  fields,
		Err:     goerrorkit.NewValidationError(message, details).WithData(data("validation_error")),
	}
}

// Server wraps an unexpected storage/runtime failure. Message is logged, the
// client only ever sees a generic text.
func Server(err error, message string) *Error {
	return &Error{
		Kind:    KindServer,
		Code:    "server_error",
		Status:  http.StatusInternalServerError,
		Message: message,
		Err:     goerrorkit.WrapWithMessage(err, message).WithData(data("server_error")),
	}
}

// As trả về *Error nếu err (hoặc lỗi được wrap bên trong) là *Error
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf trả về Kind của err, rỗng nếu err không phải *Error
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
