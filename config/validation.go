package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	} else if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errors = append(errors, fmt.Sprintf("SERVER_PORT %q is not a valid port number", cfg.ServerPort))
	}

	if cfg.ServerHost == "" {
		errors = append(errors, "SERVER_HOST must not be empty")
	}

	if cfg.OpenAIAPIKey == "" {
		errors = append(errors, "OpenAI API key is required")
	}

	if cfg.OpenAIAPIURL == "" {
		errors = append(errors, "OPENAI_API_URL must not be empty")
	}

	if cfg.OpenAIModel == "" {
		errors = append(errors, "OPENAI_MODEL must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
