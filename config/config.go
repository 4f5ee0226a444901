package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultServerPort = "8080"
	defaultServerHost = "0.0.0.0"
	defaultAPIURL     = "https://api.openai.com/v1"
	defaultModel      = "gpt-4o-mini"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// OpenAI configuration
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string

	// Allowed origins for the web UI
	CORSOrigins []string
}

// LoadConfig creates a new Config instance with values from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:   getEnvOrDefault("SERVER_PORT", defaultServerPort),
		ServerHost:   getEnvOrDefault("SERVER_HOST", defaultServerHost),
		OpenAIAPIURL: getEnvOrDefault("OPENAI_API_URL", defaultAPIURL),
		OpenAIModel:  getEnvOrDefault("OPENAI_MODEL", defaultModel),
	}

	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.OpenAIAPIKey = apiKey

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
			}
		}
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadAPIKey reads the OpenAI credential from the environment, falling back
// to a key file (Docker secrets style) when OPENAI_API_KEY is not set.
func loadAPIKey() (string, error) {
	if apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); apiKey != "" {
		return apiKey, nil
	}

	apiKeyFile := os.Getenv("OPENAI_API_KEY_FILE")
	if apiKeyFile == "" {
		return "", fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	}

	apiKeyBytes, err := os.ReadFile(apiKeyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}

	apiKey := strings.TrimSpace(string(apiKeyBytes))
	if apiKey == "" {
		return "", fmt.Errorf("API key file is empty")
	}

	return apiKey, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
