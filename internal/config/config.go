// Package config provides centralized configuration management for the
// conversion service. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Convert  ConvertConfig
	Rate     RateLimitConfig
	CORS     CORSConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// ConvertConfig holds limits for the encode and decode operations.
type ConvertConfig struct {
	// MaxBodySize caps the JSON body of an encode request in bytes (default: 10MB)
	MaxBodySize int64 `env:"CONVERT_MAX_BODY_SIZE" default:"10485760"`

	// MaxUploadSize caps an uploaded workbook in bytes (default: 50MB)
	MaxUploadSize int64 `env:"CONVERT_MAX_UPLOAD_SIZE" default:"52428800"`

	// MaxSheets caps the number of sheets in one encode request (default: 50)
	MaxSheets int `env:"CONVERT_MAX_SHEETS" default:"50"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// CORSConfig is the cross-origin policy, passed explicitly at startup rather
// than registered as ambient global state.
type CORSConfig struct {
	// AllowedOrigins is a comma-separated origin list; "*" allows all (default: *)
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" default:"*"`

	// AllowedMethods is a comma-separated HTTP method list (default: GET,POST,OPTIONS)
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" default:"GET,POST,OPTIONS"`

	// AllowedHeaders is a comma-separated header list; "*" allows all (default: *)
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" default:"*"`

	// AllowCredentials permits cookies and credentials (default: true)
	AllowCredentials bool `env:"CORS_ALLOW_CREDENTIALS" default:"true"`

	// MaxAge is how long preflight results may be cached, in seconds (default: 300)
	MaxAge int `env:"CORS_MAX_AGE" default:"300"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableSecurityHeaders controls the hardening headers middleware (default: true)
	EnableSecurityHeaders bool `env:"SECURITY_ENABLE_HEADERS" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
