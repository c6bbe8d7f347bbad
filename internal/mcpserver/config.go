package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// TimeZone is the zone attached to validated dates and naive datetimes.
	TimeZone *time.Location
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from PARAMVAL_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("PARAMVAL_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("PARAMVAL_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("PARAMVAL_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("PARAMVAL_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("PARAMVAL_CACHE_SWEEP_INTERVAL", 60*time.Second),
		TimeZone:           envTimeZone("PARAMVAL_TIME_ZONE", time.UTC),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}

func envTimeZone(key string, fallback *time.Location) *time.Location {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		slog.Warn("invalid time zone in environment, using default", "key", key, "value", v)
		return fallback
	}
	return loc
}
