// Package config loads and validates application configuration from
// environment variables via viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
// Every setting has a demo-friendly default: with nothing set, the server
// runs in demo mode against the bundled data, with no backend and no cache.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// BookingAPIURL is the base URL of the real booking backend. When empty,
	// every operation is served from the static tier (demo mode).
	BookingAPIURL string

	// DataFile optionally overrides the bundled static document with a JSON
	// file on disk.
	DataFile string

	// RedisAddr is the host:port of the redis instance used to cache the
	// experience listing. When empty, caching is disabled.
	RedisAddr string

	// CacheTTL is how long the cached listing stays fresh. Defaults to 5m.
	// Only meaningful when REDIS_ADDR is set.
	CacheTTL time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error for malformed values (e.g. an unparseable CACHE_TTL).
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("BOOKING_API_URL", "")
	v.SetDefault("DATA_FILE", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TTL", "5m")

	cfg := Config{
		Port:          v.GetString("PORT"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		CORSOrigins:   splitCSV(v.GetString("CORS_ORIGINS")),
		BookingAPIURL: strings.TrimSpace(v.GetString("BOOKING_API_URL")),
		DataFile:      v.GetString("DATA_FILE"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
	}

	ttl, err := time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
