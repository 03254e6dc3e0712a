package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (rate limiting)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Recipe provider configuration
	RecipeAPIKey string
	RecipeAPIURL string

	// Translation provider configuration
	TranslateAPIKey string
	TranslateAPIURL string

	// Locales: diary clients write in SourceLocale, the recipe provider
	// speaks ProviderLocale.
	SourceLocale   string
	ProviderLocale string
}

// LoadConfig creates a new Config instance with values from environment
// variables or Docker secrets. Provider credentials are never defaulted:
// a missing key fails startup.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    getEnv("DB_PORT", "5432"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBName:    getEnv("DB_NAME", "diario"),
		DBSSLMode: getEnv("DB_SSL_MODE", "disable"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisURL:  os.Getenv("REDIS_URL"),

		RecipeAPIURL:    getEnv("RECIPE_API_URL", "https://api.spoonacular.com/recipes/complexSearch"),
		TranslateAPIURL: getEnv("TRANSLATE_API_URL", "https://translation.googleapis.com/language/translate/v2"),

		SourceLocale:   getEnv("SOURCE_LOCALE", "pt"),
		ProviderLocale: getEnv("PROVIDER_LOCALE", "en"),
	}

	// Sensitive values come from the environment or Docker secrets.
	cfg.DBPassword = getSecret("DB_PASSWORD", "db_password")
	cfg.RedisPassword = getSecret("REDIS_PASSWORD", "redis_password")
	cfg.RecipeAPIKey = getSecret("RECIPE_API_KEY", "recipe_api_key")
	cfg.TranslateAPIKey = getSecret("TRANSLATE_API_KEY", "translate_api_key")

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getSecret reads a sensitive value from the environment, falling back to a
// Docker secret file under SECRETS_DIR.
func getSecret(envKey, secretName string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
