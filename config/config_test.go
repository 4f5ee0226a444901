package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("OPENAI_API_KEY", "test-api-key")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, defaultServerPort, cfg.ServerPort)
		assert.Equal(t, defaultServerHost, cfg.ServerHost)
		assert.Equal(t, defaultAPIURL, cfg.OpenAIAPIURL)
		assert.Equal(t, defaultModel, cfg.OpenAIModel)
		assert.Equal(t, "test-api-key", cfg.OpenAIAPIKey)
		assert.Empty(t, cfg.CORSOrigins)
	})

	t.Run("should fail without an API key", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	})

	t.Run("should read the API key from a file", func(t *testing.T) {
		clearConfigEnv(t)
		keyFile := filepath.Join(t.TempDir(), "openai_api_key")
		require.NoError(t, os.WriteFile(keyFile, []byte("file-key\n"), 0o600))
		t.Setenv("OPENAI_API_KEY_FILE", keyFile)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.OpenAIAPIKey)
	})

	t.Run("should fail on an empty key file", func(t *testing.T) {
		clearConfigEnv(t)
		keyFile := filepath.Join(t.TempDir(), "openai_api_key")
		require.NoError(t, os.WriteFile(keyFile, []byte("   \n"), 0o600))
		t.Setenv("OPENAI_API_KEY_FILE", keyFile)

		_, err := LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "API key file is empty")
	})

	t.Run("should parse CORS origins", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("OPENAI_API_KEY", "test-api-key")
		t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://namegen.example.com ,")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, []string{"http://localhost:5173", "https://namegen.example.com"}, cfg.CORSOrigins)
	})

	t.Run("should reject a non-numeric port", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("OPENAI_API_KEY", "test-api-key")
		t.Setenv("SERVER_PORT", "eight-thousand")

		_, err := LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid port number")
	})
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value    string
		expected Environment
	}{
		{"production", Production},
		{"test", Test},
		{"development", Development},
		{"", Development},
		{"staging", Development},
	}

	for _, tt := range tests {
		t.Setenv("ENV", tt.value)
		assert.Equal(t, tt.expected, GetEnvironment())
	}
}

// clearConfigEnv blanks every variable LoadConfig reads so each subtest
// starts from a clean environment.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "SERVER_HOST",
		"OPENAI_API_KEY", "OPENAI_API_KEY_FILE", "OPENAI_API_URL", "OPENAI_MODEL",
		"CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}
