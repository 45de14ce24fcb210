package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port  int
	Debug bool

	// Storage. An empty DatabaseURL selects the local SQLite file.
	DatabaseURL string
	SQLitePath  string

	// Events. Empty means level-up events are not published.
	RabbitMQURL string

	// Catalog
	CatalogPath string

	// Logging. Empty means log to stderr only.
	LogFile string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnvInt("KINETIC_PORT", 8080),
		Debug:              getEnvBool("KINETIC_DEBUG", false),
		DatabaseURL:        getEnv("KINETIC_DATABASE_URL", ""),
		SQLitePath:         getEnv("KINETIC_SQLITE_PATH", "kinetic.db"),
		RabbitMQURL:        getEnv("KINETIC_RABBITMQ_URL", ""),
		CatalogPath:        getEnv("KINETIC_CATALOG_PATH", "./catalog"),
		LogFile:            getEnv("KINETIC_LOG_FILE", ""),
		RateLimitPerMinute: getEnvInt("KINETIC_RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("KINETIC_RATE_LIMIT_BURST", 30),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.DatabaseURL == "" && cfg.SQLitePath == "" {
		return nil, fmt.Errorf("either KINETIC_DATABASE_URL or KINETIC_SQLITE_PATH must be set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
