package config

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	LogLevel        string
	DefaultAuthorID string
	AllowedOrigins  []string
	BcryptCost      int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Many PaaS environments provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		DefaultAuthorID: getEnvOrDefault("DEFAULT_AUTHOR_ID", "user123"),
		AllowedOrigins:  splitOrigins(getEnvOrDefault("ALLOWED_ORIGINS", "*")),
		BcryptCost:      getEnvIntOrDefault("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetDefaultAuthorID returns the fallback author id used when a story is
// created without one.
func (c *AppConfig) GetDefaultAuthorID() string {
	return c.DefaultAuthorID
}

// GetAllowedOrigins returns the CORS origin whitelist
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetBcryptCost returns the bcrypt cost used for password hashing
func (c *AppConfig) GetBcryptCost() int {
	return c.BcryptCost
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
