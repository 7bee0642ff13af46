// Package config reads Fina's runtime configuration from environment
// variables. Every knob has a default so a bare process starts; the only
// thing that degrades without explicit configuration is the chat endpoint,
// which needs an API credential for the selected backend.
package config

import (
	"os"
	"strconv"
	"time"
)

// Backend identifiers for the completion API.
const (
	BackendOpenAI    = "openai"
	BackendAnthropic = "anthropic"
)

// Config holds the runtime configuration.
type Config struct {
	Port            int
	Backend         string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	Model           string // empty selects the backend adapter's default
	StaticDir       string
	LogDir          string
	Retention       time.Duration
	SweepInterval   time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Port:            envIntOrDefault("PORT", 3000),
		Backend:         envOrDefault("FINA_BACKEND", BackendOpenAI),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:           os.Getenv("FINA_MODEL"),
		StaticDir:       envOrDefault("FINA_STATIC_DIR", "public"),
		LogDir:          os.Getenv("FINA_LOG_DIR"),
		Retention:       envDurationOrDefault("FINA_RETENTION", 24*time.Hour),
		SweepInterval:   envDurationOrDefault("FINA_SWEEP_INTERVAL", time.Hour),
	}
}

// Credential returns the API key for the configured backend, or empty when
// none is set.
func (c Config) Credential() string {
	if c.Backend == BackendAnthropic {
		return c.AnthropicAPIKey
	}
	return c.OpenAIAPIKey
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDurationOrDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
