package common

import (
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	Scale ScaleConfig
}

// ScaleConfig holds Scale API configuration
type ScaleConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Scale: ScaleConfig{
			APIKey:  getEnv("SCALE_API_KEY", ""),
			BaseURL: getEnv("SCALE_API_URL", "https://api.scale.com/v1"),
			Timeout: getEnvAsDuration("SCALE_TIMEOUT", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Scale.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "SCALE_API_KEY is required", ErrMissingCredential)
	}
	if c.Scale.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "SCALE_API_URL must not be empty", ErrInvalidInput)
	}
	if c.Scale.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "SCALE_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}
