package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini  = "gemini"
	ProviderKeyword = "keyword"

	defaultPort       = "3000"
	defaultConfigFile = "config.yaml"
	defaultModel      = "gemini-2.5-flash"
	defaultLogLevel   = "info"
)

// ModelConfig is the "model" section of config.yaml.
type ModelConfig struct {
	Name            string        `yaml:"name"`
	Temperature     *float32      `yaml:"temperature"`
	TopP            *float32      `yaml:"top_p"`
	MaxOutputTokens int           `yaml:"max_output_tokens"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
}

// AssistantConfig is the "assistant" section of config.yaml.
type AssistantConfig struct {
	SystemPrompt string `yaml:"system_prompt"`
}

// FileConfig mirrors config.yaml.
type FileConfig struct {
	Model     ModelConfig     `yaml:"model"`
	Assistant AssistantConfig `yaml:"assistant"`
}

// AppConfig holds all configuration for the chatbot. It is read once at startup.
type AppConfig struct {
	Port         string
	Provider     string
	GeminiAPIKey string
	RedisAddr    string
	LogLevel     string
	LogFormat    string
	Model        ModelConfig
	Assistant    AssistantConfig
}

// LoadConfig reads .env (outside release mode), the environment and config.yaml.
func LoadConfig() (*AppConfig, error) {
	// In Docker (GIN_MODE=release) everything comes from the environment.
	if os.Getenv("GIN_MODE") != "release" {
		_ = godotenv.Load()
	}

	cfg := &AppConfig{
		Port:         getEnv("PORT", defaultPort),
		Provider:     strings.ToLower(getEnv("MODEL_PROVIDER", ProviderGemini)),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		LogLevel:     getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat:    os.Getenv("LOG_FORMAT"),
	}

	// Accept the variable name LangChain's Google client reads, for existing .env files.
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY environment variable is not set")
		}
	case ProviderKeyword:
	default:
		return nil, fmt.Errorf("unknown MODEL_PROVIDER %q (want %q or %q)", cfg.Provider, ProviderGemini, ProviderKeyword)
	}

	fileCfg, err := loadFileConfig(getEnv("CONFIG_FILE", defaultConfigFile))
	if err != nil {
		return nil, err
	}
	cfg.Model = fileCfg.Model
	cfg.Assistant = fileCfg.Assistant
	return cfg, nil
}

// loadFileConfig parses config.yaml. A missing file yields the defaults.
func loadFileConfig(path string) (*FileConfig, error) {
	cfg := &FileConfig{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if cfg.Model.Name == "" {
		cfg.Model.Name = defaultModel
	}
	if cfg.Model.Temperature == nil {
		t := float32(0.6)
		cfg.Model.Temperature = &t
	}
	if cfg.Model.MaxOutputTokens < 0 || cfg.Model.MaxOutputTokens > math.MaxInt32 {
		return nil, fmt.Errorf("%s: model.max_output_tokens must be between 0 and %d", path, math.MaxInt32)
	}
	if cfg.Model.RequestTimeout < 0 {
		return nil, fmt.Errorf("%s: model.request_timeout must not be negative", path)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
