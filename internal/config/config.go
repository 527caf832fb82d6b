// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
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

	// DataDir is where the file-backed blob store keeps its data.
	// Defaults to "./data". Ignored when DatabaseURL is set.
	DataDir string

	// DatabaseURL is an optional Postgres connection string.
	// When set, trips are persisted to Postgres instead of the data directory.
	DatabaseURL string

	// PlannerDelay is the simulated itinerary-generation latency.
	// Defaults to 3s. Set PLANNER_DELAY_MS to override (0 disables it).
	PlannerDelay time.Duration

	// MaxBodyBytes caps incoming request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error when a numeric variable is set but unparseable.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DataDir:      getEnv("DATA_DIR", "./data"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		PlannerDelay: 3 * time.Second,
		MaxBodyBytes: 1 << 20,
	}

	if v := os.Getenv("PLANNER_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("invalid PLANNER_DELAY_MS: %q", v)
		}
		cfg.PlannerDelay = time.Duration(ms) * time.Millisecond
	}

	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_BODY_BYTES: %q", v)
		}
		cfg.MaxBodyBytes = n
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
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
