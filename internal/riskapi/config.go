package riskapi

import (
	"os"
	"time"
)

const defaultBaseURL = "http://localhost:8000"

// Config holds risk service client configuration.
type Config struct {
	// BaseURL is the service root, e.g. "http://localhost:8000".
	// The analyze endpoint lives at {BaseURL}/api/analyze.
	BaseURL string

	// Timeout is the maximum duration for a single HTTP request.
	// Default: 30s.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: defaultBaseURL,
		Timeout: 30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables:
//
//	ACUITY_API_URL      service base URL
//	ACUITY_API_TIMEOUT  request timeout (Go duration string)
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("ACUITY_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ACUITY_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}
