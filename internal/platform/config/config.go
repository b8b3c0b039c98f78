// Package config loads application configuration from environment variables.
// All variables use the SYNTH_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Cache          CacheConfig
	AI             AIConfig
	Session        SessionConfig
	Log            LogConfig
	CurriculumPath string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL runs the
// service on the in-memory profile store.
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis connection settings. An empty URL disables the
// adaptation cache.
type CacheConfig struct {
	URL string
}

// AIConfig holds configuration for the LLM providers.
type AIConfig struct {
	Google GoogleConfig
	OpenAI OpenAIConfig
	// TokenBudget is the default per-student token limit. Zero disables
	// budgeting.
	TokenBudget int64
}

// GoogleConfig holds Google Gemini provider settings.
type GoogleConfig struct {
	APIKey string
}

// OpenAIConfig holds OpenAI provider settings.
type OpenAIConfig struct {
	APIKey string
}

// SessionConfig holds assessment session timing settings.
type SessionConfig struct {
	// SettleDelay is the pause after stopping the recognizer before the
	// transcript is read.
	SettleDelay time.Duration
	// SampleInterval paces the biometric sampling loop.
	SampleInterval time.Duration
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with SYNTH_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("SYNTH_SERVER_PORT", 8080),
			Host: envStr("SYNTH_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("SYNTH_DATABASE_URL", ""),
			MaxConns: envInt("SYNTH_DATABASE_MAX_CONNS", 25),
			MinConns: envInt("SYNTH_DATABASE_MIN_CONNS", 5),
		},
		Cache: CacheConfig{
			URL: envStr("SYNTH_CACHE_URL", ""),
		},
		AI: AIConfig{
			Google: GoogleConfig{
				APIKey: envStr("SYNTH_AI_GOOGLE_API_KEY", ""),
			},
			OpenAI: OpenAIConfig{
				APIKey: envStr("SYNTH_AI_OPENAI_API_KEY", ""),
			},
			TokenBudget: int64(envInt("SYNTH_AI_TOKEN_BUDGET", 0)),
		},
		Session: SessionConfig{
			SettleDelay:    time.Duration(envInt("SYNTH_SESSION_SETTLE_DELAY_MS", 800)) * time.Millisecond,
			SampleInterval: time.Duration(envInt("SYNTH_SESSION_SAMPLE_INTERVAL_MS", 100)) * time.Millisecond,
		},
		Log: LogConfig{
			Level:  envStr("SYNTH_LOG_LEVEL", "info"),
			Format: envStr("SYNTH_LOG_FORMAT", "json"),
		},
		CurriculumPath: envStr("SYNTH_CURRICULUM_PATH", ""),
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SYNTH_SERVER_PORT must be a valid port, got %d", c.Server.Port)
	}
	if c.Session.SettleDelay < 0 {
		return fmt.Errorf("SYNTH_SESSION_SETTLE_DELAY_MS must be non-negative")
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("SYNTH_LOG_FORMAT must be 'json' or 'text', got %q", c.Log.Format)
	}
	return nil
}

// HasAIProvider returns true if at least one LLM provider is configured.
// Without one the service still runs, serving fallback questions and
// reports.
func (c *Config) HasAIProvider() bool {
	return c.AI.Google.APIKey != "" || c.AI.OpenAI.APIKey != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
