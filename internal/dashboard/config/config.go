package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the dashboard module.
type Config struct {
	// Platform API Configuration
	PlatformBaseURL string        `env:"PLATFORM_API_BASE_URL" envDefault:"http://localhost:5000"`
	PlatformTimeout time.Duration `env:"PLATFORM_API_TIMEOUT" envDefault:"30s"`

	// Audit trail Configuration
	AuditPageSize int `env:"AUDIT_PAGE_SIZE" envDefault:"50"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load dashboard configuration from environment: " + err.Error())
	}

	cfg.PlatformBaseURL = strings.TrimRight(cfg.PlatformBaseURL, "/")
	if cfg.PlatformBaseURL == "" {
		cfg.PlatformBaseURL = "http://localhost:5000"
	}
	parsed, err := url.Parse(cfg.PlatformBaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, errors.New("platform_api_base_url must be an http(s) URL")
	}

	if cfg.PlatformTimeout <= 0 {
		return nil, errors.New("platform_api_timeout must be positive")
	}
	if cfg.AuditPageSize <= 0 {
		return nil, errors.New("audit_page_size must be positive")
	}

	return cfg, nil
}

// DefaultConfig returns a Config with default values, useful for tests.
func DefaultConfig() *Config {
	return &Config{
		PlatformBaseURL: "http://localhost:5000",
		PlatformTimeout: 30 * time.Second,
		AuditPageSize:   50,
	}
}
