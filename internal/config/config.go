// Package config provides configuration management for the hello service.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log formats accepted by LOG_FORMAT
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	TrustedProxies    []string // IPs or CIDRs allowed to set X-Forwarded-For; none by default
}

// RateLimitConfig holds per-client rate limiting configuration.
// A zero Requests disables rate limiting.
type RateLimitConfig struct {
	Requests int64
	Period   time.Duration
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // zerolog level name
	Format string // "json" or "console"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:              getEnv("HOST", "0.0.0.0"),
			Port:              getEnv("PORT", "3000"),
			ReadHeaderTimeout: getEnvAsDuration("READ_HEADER_TIMEOUT", "5s"),
			ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", "10s"),
			TrustedProxies:    getEnvAsList("TRUSTED_PROXIES", nil),
		},
		RateLimit: RateLimitConfig{
			Requests: int64(getEnvAsInt("RATE_LIMIT_REQUESTS", 0)),
			Period:   getEnvAsDuration("RATE_LIMIT_PERIOD", "1m"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", LogFormatJSON),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q: must be a number between 1 and 65535", c.Server.Port)
	}
	for _, proxy := range c.Server.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("invalid TRUSTED_PROXIES entry %q: must be an IP or CIDR", proxy)
			}
		}
	}
	if c.RateLimit.Requests < 0 {
		return errors.New("RATE_LIMIT_REQUESTS must not be negative")
	}
	if c.RateLimit.Requests > 0 && c.RateLimit.Period <= 0 {
		return errors.New("RATE_LIMIT_PERIOD must be greater than zero")
	}
	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS must contain at least one origin")
	}
	for _, origin := range c.CORS.AllowOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin %q: must be \"*\" or start with http:// or https://", origin)
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.Log.Format != LogFormatJSON && c.Log.Format != LogFormatConsole {
		return fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", c.Log.Format, LogFormatJSON, LogFormatConsole)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}

// getEnvAsList splits a comma-separated environment variable, dropping blanks
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
