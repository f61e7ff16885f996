// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, snapshot store, and pipeline settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Store contains snapshot store configuration
	Store StoreConfig

	// Pipeline contains fetch and filter defaults
	Pipeline PipelineConfig

	// Sources contains the configured fetch adapters
	Sources SourcesConfig

	// LogLevel selects logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// StoreConfig holds snapshot store backend configuration
type StoreConfig struct {
	// Type specifies the store backend (file/memory/redis/sqlite)
	Type string

	// FileDir is the snapshot directory for the file backend
	FileDir string

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// PipelineConfig holds fetch and normalization defaults
type PipelineConfig struct {
	// FetchTimeout is the remote fetch timeout in seconds
	FetchTimeout int

	// DefaultN is the raw item count requested when the caller gives none
	DefaultN int

	// LanguageThreshold is the minimum detection confidence
	LanguageThreshold float64
}

// SourcesConfig holds per-adapter settings
type SourcesConfig struct {
	// RSSFeeds are the feed URLs served under the "rss" service tag
	RSSFeeds []string

	// PressBaseURL is the site scraped under the "press" service tag
	PressBaseURL string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Store: StoreConfig{
			Type:       getEnvOrDefault("STORE_TYPE", "file"),
			FileDir:    getEnvOrDefault("STORE_DIR", "data"),
			SQLitePath: getEnvOrDefault("STORE_SQLITE_PATH", "snapshots.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Pipeline: PipelineConfig{
			FetchTimeout:      getEnvAsIntOrDefault("FETCH_TIMEOUT", 30),
			DefaultN:          getEnvAsIntOrDefault("DEFAULT_N", 200),
			LanguageThreshold: getEnvAsFloatOrDefault("LANG_THRESHOLD", 0.8),
		},
		Sources: SourcesConfig{
			RSSFeeds:     splitList(os.Getenv("RSS_FEEDS")),
			PressBaseURL: getEnvOrDefault("PRESS_BASE_URL", ""),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// splitList splits a comma-separated environment value, trimming blanks
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Store.Type {
	case "file", "memory", "redis", "sqlite":
	default:
		return errors.New("store type must be 'file', 'memory', 'redis' or 'sqlite'")
	}

	if c.Store.Type == "redis" && c.Store.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis store")
	}

	if c.Pipeline.FetchTimeout < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Pipeline.LanguageThreshold <= 0 || c.Pipeline.LanguageThreshold > 1 {
		return errors.New("language threshold must be in (0, 1]")
	}

	return nil
}
