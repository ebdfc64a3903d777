package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// clearEnv isolates LoadConfig from the developer's environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "MODEL_PROVIDER", "GEMINI_API_KEY", "GOOGLE_API_KEY", "REDIS_ADDR", "LOG_LEVEL", "LOG_FORMAT", "CONFIG_FILE"} {
		t.Setenv(key, "")
	}
	t.Setenv("GIN_MODE", "release")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model.Name)
	require.NotNil(t, cfg.Model.Temperature)
	assert.InDelta(t, 0.6, *cfg.Model.Temperature, 1e-6)
	assert.Zero(t, cfg.Model.RequestTimeout)
	assert.Empty(t, cfg.Assistant.SystemPrompt)
}

func TestLoadConfig_FromEnvAndFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CONFIG_FILE", writeConfig(t, `
model:
  name: gemini-2.0-flash
  temperature: 0.2
  max_output_tokens: 512
  request_timeout: 30s
assistant:
  system_prompt: You are a terse waiter.
`))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "google-key", cfg.GeminiAPIKey)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model.Name)
	assert.InDelta(t, 0.2, *cfg.Model.Temperature, 1e-6)
	assert.Equal(t, 512, cfg.Model.MaxOutputTokens)
	assert.Equal(t, 30*time.Second, cfg.Model.RequestTimeout)
	assert.Equal(t, "You are a terse waiter.", cfg.Assistant.SystemPrompt)
}

func TestLoadConfig_KeywordProviderNeedsNoKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODEL_PROVIDER", "Keyword")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ProviderKeyword, cfg.Provider)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "gemini without key", env: map[string]string{}},
		{name: "unknown provider", env: map[string]string{"MODEL_PROVIDER": "openai"}},
		{name: "malformed yaml", env: map[string]string{"GEMINI_API_KEY": "k"}, file: "model: [unclosed"},
		{name: "negative tokens", env: map[string]string{"GEMINI_API_KEY": "k"}, file: "model:\n  max_output_tokens: -1\n"},
		{name: "tokens above int32", env: map[string]string{"GEMINI_API_KEY": "k"}, file: "model:\n  max_output_tokens: 2147483648\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if tt.file != "" {
				t.Setenv("CONFIG_FILE", writeConfig(t, tt.file))
			} else {
				t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
			}

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
