package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	JWT      JWTConfig
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Password PasswordConfig
	Blog     BlogConfig
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver   string // postgres | memory
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// LogConfig là cấu hình cho goerrorkit logger
type LogConfig struct {
	Level       string
	FilePath    string
	FileOutput  bool
	JSONFormat  bool
	MaxFileSize int // MB
	MaxBackups  int
	MaxAge      int // days
}

// PasswordConfig holds password rules for registration
type PasswordConfig struct {
	MinLength int
}

// BlogConfig holds blog business switches
type BlogConfig struct {
	// EnforceUpdateOwnership bật kiểm tra tác giả khi update (giống delete)
	EnforceUpdateOwnership bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			Expiration: time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT_SECONDS", 10)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT_SECONDS", 10)) * time.Second,
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "blogkit"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			FilePath:    getEnv("LOG_FILE_PATH", "logs/errors.log"),
			FileOutput:  getEnvBool("LOG_FILE_OUTPUT", true),
			JSONFormat:  getEnvBool("LOG_JSON_FORMAT", true),
			MaxFileSize: getEnvInt("LOG_MAX_FILE_SIZE_MB", 10),
			MaxBackups:  getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAge:      getEnvInt("LOG_MAX_AGE_DAYS", 30),
		},
		Password: PasswordConfig{
			MinLength: getEnvInt("PASSWORD_MIN_LENGTH", 8),
		},
		Blog: BlogConfig{
			EnforceUpdateOwnership: getEnvBool("BLOG_ENFORCE_UPDATE_OWNERSHIP", false),
		},
	}
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
