package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/config"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)
)

// ValidateEmail kiểm tra format email hợp lệ
// Email hợp lệ phải:
// - Không rỗng
// - Có format local@domain.tld
// - Tổng độ dài không quá 320 ký tự, local part không quá 64 ký tự (RFC 5321)
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperror.Validation("Email is required", map[string]string{
			"email": "Email is required",
		})
	}

	if len(email) > 320 || !emailRegex.MatchString(email) {
		return apperror.Validation("Email is invalid", map[string]string{
			"email": "Email is invalid",
		})
	}

	if local := email[:strings.Index(email, "@")]; len(local) > 64 {
		return apperror.Validation("Email is invalid", map[string]string{
			"email": "Local part must be at most 64 characters",
		})
	}

	return nil
}

// ValidateUsername kiểm tra username: 3-32 ký tự a-zA-Z0-9 _ . -
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return apperror.Validation("Username is required", map[string]string{
			"username": "Username is required",
		})
	}
	if !usernameRegex.MatchString(username) {
		return apperror.Validation("Username is invalid", map[string]string{
			"username": "Username must be 3-32 characters of letters, digits, '.', '_' or '-'",
		})
	}
	return nil
}

// ValidatePassword kiểm tra password theo cấu hình
func ValidatePassword(password string, cfg config.PasswordConfig) error {
	if strings.TrimSpace(password) == "" {
		return apperror.Validation("Password is required", map[string]string{
			"password": "Password is required",
		})
	}

	if len(password) < cfg.MinLength {
		msg := fmt.Sprintf("Password must be at least %d characters", cfg.MinLength)
		return apperror.Validation(msg, map[string]string{
			"password": msg,
		})
	}

	return nil
}

// ParseID parses a uuid coming from request input; field is used in the error
func ParseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apperror.Validation("Invalid id", map[string]string{
			field: fmt.Sprintf("%q is not a valid id", raw),
		})
	}
	return id, nil
}
