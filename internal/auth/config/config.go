package config

import (
	"errors"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// RedisConfig holds the connection settings for the session store.
type RedisConfig struct {
	Host         string `env:"REDIS_HOST" envDefault:"localhost"`
	Port         string `env:"REDIS_PORT" envDefault:"6379"`
	Password     string `env:"REDIS_PASSWORD" envDefault:""`
	Database     int    `env:"REDIS_DB" envDefault:"0"`
	MaxRetries   int    `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	EnableTLS    bool   `env:"REDIS_ENABLE_TLS" envDefault:"false"`

	// Duration strings so they can come straight from the environment.
	ConnMaxIdleTime string `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"30m"`
	ConnMaxLifetime string `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"1h"`
}

// GetAddr returns the host:port address for the Redis client.
func (c *RedisConfig) GetAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Config holds all configuration for the session module.
type Config struct {
	// Session Configuration
	SessionCookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"gh_session"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Cookie Configuration
	CookiePath     string `env:"COOKIE_PATH" envDefault:"/"`
	CookieDomain   string `env:"COOKIE_DOMAIN" envDefault:""`      // Defaults to host, empty is fine
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"` // Set to true in production
	CookieHTTPOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite string `env:"COOKIE_SAME_SITE" envDefault:"Lax"` // "Lax", "Strict", "None"

	Redis RedisConfig
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load session configuration from environment: " + err.Error())
	}
	if err := env.Parse(&cfg.Redis); err != nil {
		return nil, errors.New("failed to load redis configuration from environment: " + err.Error())
	}

	if cfg.SessionCookieName == "" {
		return nil, errors.New("session_cookie_name is required")
	}
	if cfg.SessionTTL <= 0 {
		return nil, errors.New("session_ttl must be positive")
	}

	// Normalize and validate CookieSameSite
	cfg.CookieSameSite = strings.Title(strings.ToLower(cfg.CookieSameSite))
	if !(cfg.CookieSameSite == "Lax" || cfg.CookieSameSite == "Strict" || cfg.CookieSameSite == "None") {
		return nil, errors.New("cookie_same_site must be one of 'Lax', 'Strict', or 'None'")
	}

	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}

	return cfg, nil
}

// DefaultConfig returns a Config with default values, useful for tests.
func DefaultConfig() *Config {
	return &Config{
		SessionCookieName: "gh_session",
		SessionTTL:        24 * time.Hour,
		CookiePath:        "/",
		CookieSecure:      false,
		CookieHTTPOnly:    true,
		CookieSameSite:    "Lax",
		Redis: RedisConfig{
			Host:            "localhost",
			Port:            "6379",
			Database:        0,
			MaxRetries:      3,
			PoolSize:        10,
			MinIdleConns:    2,
			ConnMaxIdleTime: "30m",
			ConnMaxLifetime: "1h",
		},
	}
}
