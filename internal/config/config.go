// Package config provides centralized configuration management for the
// application. It loads settings from environment variables with sensible
// defaults and validates everything on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	View      ViewConfig
	Countries CountriesConfig
	Rate      RateLimitConfig
	Security  SecurityConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// StoreConfig holds persisted slot settings.
type StoreConfig struct {
	// Path is the SQLite database file holding the slot (default: profilebook.db)
	Path string `env:"STORE_PATH" default:"profilebook.db"`

	// SlotKey is the key the record collection is persisted under (default: users)
	SlotKey string `env:"STORE_SLOT_KEY" default:"users"`
}

// ViewConfig holds per-surface table settings.
type ViewConfig struct {
	// HomePageSize is the table page size on the home surface (default: 5)
	HomePageSize int `env:"VIEW_HOME_PAGE_SIZE" default:"5"`

	// FullPageSize is the table page size on the full listing surface (default: 100)
	FullPageSize int `env:"VIEW_FULL_PAGE_SIZE" default:"100"`
}

// CountriesConfig holds country-list fetch settings.
type CountriesConfig struct {
	// Enabled controls whether the list is fetched at startup (default: true)
	Enabled bool `env:"COUNTRIES_ENABLED" default:"true"`

	// URL is the endpoint returning the country-name list
	URL string `env:"COUNTRIES_URL" default:"https://restcountries.com/v3.1/all?fields=name"`

	// Timeout bounds the one-shot fetch (default: 10s)
	Timeout time.Duration `env:"COUNTRIES_TIMEOUT" default:"10s"`
}

// RateLimitConfig holds request throttling settings.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the per-IP limit (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
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
