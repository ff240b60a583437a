// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendValkey   = "valkey"
)

// defaultAdminPassword is refused in production.
const defaultAdminPassword = "admin"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel string
	// CORSOrigin is sent as Access-Control-Allow-Origin on API responses.
	CORSOrigin string

	// Content store
	StoreBackend string
	StoreQuota   int // bytes, memory backend only; 0 = unlimited
	SQLitePath   string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible): event bridge, response cache, optional store
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Admin credentials
	AdminUsername string
	AdminPassword string

	// S3-compatible object storage for media uploads (optional)
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first if present; real environment variables take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	quota, err := strconv.Atoi(envOrDefault("STORE_QUOTA_BYTES", "0"))
	if err != nil {
		return nil, fmt.Errorf("STORE_QUOTA_BYTES: %w", err)
	}

	cfg := &Config{
		Host:       envOrDefault("APP_HOST", "0.0.0.0"),
		Port:       envOrDefault("APP_PORT", "8080"),
		Env:        envOrDefault("APP_ENV", "development"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		CORSOrigin: envOrDefault("CORS_ORIGIN", "*"),

		StoreBackend: strings.ToLower(envOrDefault("STORE_BACKEND", BackendMemory)),
		StoreQuota:   quota,
		SQLitePath:   envOrDefault("SQLITE_PATH", "ngocms.db"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "ngocms"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "ngocms"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AdminUsername: envOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", defaultAdminPassword),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "auto"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "ngocms-media"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendPostgres, BackendSQLite:
	case BackendValkey:
		if cfg.ValkeyHost == "" {
			return nil, fmt.Errorf("VALKEY_HOST must be set when STORE_BACKEND=valkey")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.Env == "production" {
		if cfg.AdminPassword == defaultAdminPassword {
			return nil, fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
		if cfg.StoreBackend == BackendPostgres && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasValkey reports whether a Valkey server is configured.
func (c *Config) HasValkey() bool {
	return c.ValkeyHost != ""
}

// HasS3 reports whether object storage is configured.
func (c *Config) HasS3() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
