package utils

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/config"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "golang", "%golang%"},
		{"percent", "50%", `%50\%%`},
		{"underscore", "snake_case", `%snake\_case%`},
		{"backslash", `a\b`, `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsPattern(tt.input); got != tt.expected {
				t.Errorf("ContainsPattern(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "go", []string{"go"}},
		{"trim and drop empties", " go, ,fiber ,", []string{"go", "fiber"}},
		{"case preserved", "Go,go", []string{"Go", "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitCSV(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitCSV(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUniqueStrings(t *testing.T) {
	got := UniqueStrings([]string{"b", " a", "b", "", "a ", "c"})
	expected := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("UniqueStrings = %v, expected %v", got, expected)
	}
	if got := UniqueStrings(nil); got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", got)
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "alice", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token, "secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	parsed, err := claims.ParseUserID()
	if err != nil || parsed != userID {
		t.Errorf("Expected user ID %s, got %s (err=%v)", userID, parsed, err)
	}
	if claims.Username != "alice" {
		t.Errorf("Expected username alice, got %q", claims.Username)
	}

	if _, err := ValidateToken(token, "other-secret"); err == nil {
		t.Errorf("Expected error for wrong secret")
	}

	expired, _ := GenerateToken(userID, "alice", "secret", -time.Minute)
	if _, err := ValidateToken(expired, "secret"); err == nil {
		t.Errorf("Expected error for expired token")
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Errorf("Expected hashed password")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Errorf("Expected password to match hash")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Errorf("Expected wrong password not to match")
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"alice@example.com", false},
		{"", true},
		{"alice", true},
		{"alice@example", true},
		{"a@b.co", false},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
		}
		if err != nil && !apperror.Is(err, apperror.KindValidation) {
			t.Errorf("Expected validation error, got %v", err)
		}
	}
}

func TestValidateUsernameAndPassword(t *testing.T) {
	if err := ValidateUsername("alice_01"); err != nil {
		t.Errorf("Expected valid username, got %v", err)
	}
	if err := ValidateUsername("a"); err == nil {
		t.Errorf("Expected error for short username")
	}

	cfg := config.PasswordConfig{MinLength: 8}
	if err := ValidatePassword("12345678", cfg); err != nil {
		t.Errorf("Expected valid password, got %v", err)
	}
	if err := ValidatePassword("short", cfg); err == nil {
		t.Errorf("Expected error for short password")
	}
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	got, err := ParseID(id.String(), "id")
	if err != nil || got != id {
		t.Errorf("ParseID(valid) = %s, %v", got, err)
	}

	_, err = ParseID("not-a-uuid", "author")
	appErr, ok := apperror.As(err)
	if !ok || appErr.Kind != apperror.KindValidation {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if _, ok := appErr.Fields["author"]; !ok {
		t.Errorf("Expected field error for author, got %v", appErr.Fields)
	}
}

func TestGenerateRequestID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateRequestID()
		if len(id) != RequestIDLength {
			t.Fatalf("Expected length %d, got %q", RequestIDLength, id)
		}
		for _, ch := range id {
			if !strings.ContainsRune(idCharset, ch) {
				t.Fatalf("Unexpected character %q in %q", ch, id)
			}
		}
		seen[id] = true
	}
	if len(seen) < 99 {
		t.Errorf("Expected request IDs to be unique, got %d distinct of 100", len(seen))
	}
}

func TestGenerateRequestID_UsesWholeCharset(t *testing.T) {
	counts := make(map[rune]int)
	for i := 0; i < 1000; i++ {
		for _, ch := range GenerateRequestID() {
			counts[ch]++
		}
	}
	if len(counts) != len(idCharset) {
		t.Errorf("Expected all %d characters to appear, got %d", len(idCharset), len(counts))
	}
}
