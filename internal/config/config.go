// Package config loads application configuration from environment variables,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/luooka/casebot/internal/quota"
)

// Config holds the application configuration
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// APIKey authenticates callers of the HTTP API; required.
	APIKey string

	// TrustedProxies are the only peers whose X-Forwarded-For is honored.
	TrustedProxies []string

	// CatalogHost and CatalogToken configure the upstream item API.
	CatalogHost  string
	CatalogToken string

	// CatalogSyncInterval schedules background catalog refreshes; 0 disables.
	CatalogSyncInterval time.Duration

	// MaxOpenPerRequest bounds a single opening request (>= 1).
	MaxOpenPerRequest int
	// MaxOpenPerDay is the daily allowance per user; 0 disables the cap.
	MaxOpenPerDay int
	// ResetClock is the time of day at which the daily quota rolls over.
	ResetClock quota.ResetClock

	// MemoryBackend switches storage to in-process backends (no Postgres).
	MemoryBackend bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "casebot"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
		CatalogHost:    getEnv("CATALOG_API_HOST", ""),
		CatalogToken:   getEnv("CATALOG_API_TOKEN", ""),
		ResetClock:     quota.ParseResetClock(getEnv("DAILY_RESET_TIME", "04:00")),
		MemoryBackend:  getEnv("STORAGE_BACKEND", "postgres") == "memory",
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.MaxOpenPerRequest, err = getEnvInt("MAX_OPEN_PER_REQUEST", 50)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenPerRequest < 1 {
		cfg.MaxOpenPerRequest = 1
	}

	cfg.MaxOpenPerDay, err = getEnvInt("MAX_OPEN_PER_DAY", 500)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenPerDay < 0 {
		cfg.MaxOpenPerDay = 0
	}

	syncMinutes, err := getEnvInt("CATALOG_SYNC_INTERVAL_MINUTES", 0)
	if err != nil {
		return nil, err
	}
	if syncMinutes > 0 {
		cfg.CatalogSyncInterval = time.Duration(syncMinutes) * time.Minute
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated list, dropping empty entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
