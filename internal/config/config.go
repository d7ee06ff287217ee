// Package config provides configuration loading and validation for the
// recruit-ai server. All values come from the environment; godotenv loads a
// local .env file in development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the server's runtime configuration.
type Config struct {
	Port        int
	DatabaseURL string

	// Workflow webhook endpoints. AnalysisWebhookURL is required before a
	// recruiter can run an analysis; EmailWebhookURL before auto-pilot
	// emails can be sent. Neither blocks server startup: absence is a
	// per-action precondition failure, not a boot error.
	AnalysisWebhookURL string
	EmailWebhookURL    string

	// WebhookTimeout bounds one outbound webhook round trip.
	WebhookTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// FromEnv builds a Config from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               8080,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		AnalysisWebhookURL: os.Getenv("ANALYSIS_WEBHOOK_URL"),
		EmailWebhookURL:    os.Getenv("EMAIL_WEBHOOK_URL"),
		WebhookTimeout:     120 * time.Second,
		LogLevel:           envDefault("LOG_LEVEL", "info"),
		LogFormat:          envDefault("LOG_FORMAT", "json"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if timeoutStr := os.Getenv("WEBHOOK_TIMEOUT_SECONDS"); timeoutStr != "" {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid WEBHOOK_TIMEOUT_SECONDS: %v", err)
		}
		cfg.WebhookTimeout = time.Duration(seconds) * time.Second
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.WebhookTimeout < time.Second {
		return fmt.Errorf("WEBHOOK_TIMEOUT_SECONDS must be at least 1, got: %s", c.WebhookTimeout)
	}
	return nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
