// Package config provides environment-driven configuration for transitroute.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Data sources a network can be built from.
const (
	DataSourceFile     = "file"
	DataSourcePostgres = "postgres"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config holds all application configuration values.
type Config struct {
	DataSource     string
	StopsFile      string
	RoutesFile     string
	DatabaseURL    Secret
	RunMigrations  bool
	Port           string
	ListenHost     string
	MetricsPort    string
	LogLevel       string
	LogFormat      string
	CORSOrigins    []string
	APIKey         Secret
	RateLimitRPS   int
	RateLimitBurst int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DataSource:    envOrDefault("DATA_SOURCE", DataSourceFile),
		StopsFile:     envOrDefault("STOPS_FILE", "stops.json"),
		RoutesFile:    envOrDefault("ROUTES_FILE", "routes.json"),
		DatabaseURL:   Secret(envOrDefault("DATABASE_URL", "")),
		RunMigrations: envOrDefault("RUN_MIGRATIONS", "true") == "true",
		Port:          envOrDefault("PORT", "3040"),
		ListenHost:    envOrDefault("LISTEN_HOST", "127.0.0.1"),
		MetricsPort:   envOrDefault("METRICS_PORT", "9092"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "text"),
		APIKey:        Secret(envOrDefault("API_KEY", "")),
	}

	rps, err := strconv.Atoi(envOrDefault("RATE_LIMIT_RPS", "50"))
	if err != nil || rps < 1 || rps > 10000 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be an integer between 1 and 10000")
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(envOrDefault("RATE_LIMIT_BURST", "100"))
	if err != nil || burst < rps {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be an integer no lower than RATE_LIMIT_RPS")
	}
	cfg.RateLimitBurst = burst

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:5173")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// MetricsAddr returns the metrics listen address in host:port format.
func (c *Config) MetricsAddr() string {
	return c.ListenHost + ":" + c.MetricsPort
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
