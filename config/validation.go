package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the configuration is complete enough to start.
// Provider API keys are required in every environment: an earlier revision of
// this system shipped with a key embedded in source, and failing fast here is
// what keeps credentials in runtime configuration only.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.RecipeAPIKey == "" {
		errors = append(errors, "recipe provider API key is not set (RECIPE_API_KEY or recipe_api_key secret)")
	}
	if cfg.TranslateAPIKey == "" {
		errors = append(errors, "translation provider API key is not set (TRANSLATE_API_KEY or translate_api_key secret)")
	}
	if cfg.SourceLocale == "" || cfg.ProviderLocale == "" {
		errors = append(errors, "source and provider locales must be set")
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "DB_SSL_MODE must not be 'disable' in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
