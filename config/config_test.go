package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_EXPIRATION_HOURS", "STORAGE_DRIVER", "BLOG_ENFORCE_UPDATE_OWNERSHIP", "PASSWORD_MIN_LENGTH"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Server.Port != "3000" {
		t.Errorf("Expected default port 3000, got %q", cfg.Server.Port)
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("Expected 24h expiration, got %v", cfg.JWT.Expiration)
	}
	if cfg.Database.Driver != StoragePostgres {
		t.Errorf("Expected postgres driver, got %q", cfg.Database.Driver)
	}
	if cfg.Blog.EnforceUpdateOwnership {
		t.Errorf("Expected update ownership to be off by default")
	}
	if cfg.Password.MinLength != 8 {
		t.Errorf("Expected min password length 8, got %d", cfg.Password.MinLength)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("BLOG_ENFORCE_UPDATE_OWNERSHIP", "true")
	t.Setenv("READ_TIMEOUT_SECONDS", "not-a-number")

	cfg := LoadConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.JWT.Expiration != 2*time.Hour {
		t.Errorf("Expected 2h expiration, got %v", cfg.JWT.Expiration)
	}
	if cfg.Database.Driver != StorageMemory {
		t.Errorf("Expected memory driver, got %q", cfg.Database.Driver)
	}
	if !cfg.Blog.EnforceUpdateOwnership {
		t.Errorf("Expected update ownership to be enabled")
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Expected fallback read timeout 10s, got %v", cfg.Server.ReadTimeout)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "blogs", SSLMode: "disable"}
	expected := "host=db user=u password=p dbname=blogs port=5433 sslmode=disable"
	if got := d.DSN(); got != expected {
		t.Errorf("DSN() = %q, expected %q", got, expected)
	}
}
