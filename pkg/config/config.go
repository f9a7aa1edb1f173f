// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, provider, sessions and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Cache backend names
const (
	CacheMemory = "memory"
	CacheLRU    = "lru"
	CacheRedis  = "redis"
	CacheSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Provider contains reverse image search endpoints and outbound headers
	Provider ProviderConfig

	// Session contains session lifetime and paging settings
	Session SessionConfig

	// Log contains logging configuration
	Log LogConfig

	// RulesFile optionally overrides the built-in domain rules (.yaml, .yml or .toml)
	RulesFile string

	// MaxImageBytes caps accepted uploads
	MaxImageBytes int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per second across the API
	RateLimit float64

	// RateBurst is the burst size of the rate limiter
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/lru/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// LRU contains bounded cache configuration
	LRU LRUConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
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

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// LRUConfig holds bounded cache configuration
type LRUConfig struct {
	// Size is the maximum number of entries
	Size int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file, or ":memory:"
	Path string
}

// ProviderConfig holds reverse image search provider settings
type ProviderConfig struct {
	UploadURL        string
	SearchURL        string
	UserAgent        string
	AcceptLanguage   string
	Timeout          time.Duration
	MaxRetries       int
	MaxContinuations int
}

// SessionConfig holds session lifetime and paging settings
type SessionConfig struct {
	// TTL is how long an untouched session stays available
	TTL time.Duration

	// ResultsPerPage is the presenter page size
	ResultsPerPage int

	// ResultCacheTTL is how long result sets are reused for identical images
	ResultCacheTTL time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string

	// File enables rotating file output when set
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsFloatOrDefault("RATE_LIMIT", 5),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 10),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", CacheMemory),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
			LRU: LRUConfig{
				Size: getEnvAsIntOrDefault("LRU_CACHE_SIZE", 10000),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "snapfind.db"),
			},
		},
		Provider: ProviderConfig{
			UploadURL:        getEnvOrDefault("PROVIDER_UPLOAD_URL", ""),
			SearchURL:        getEnvOrDefault("PROVIDER_SEARCH_URL", ""),
			UserAgent:        getEnvOrDefault("PROVIDER_USER_AGENT", ""),
			AcceptLanguage:   getEnvOrDefault("PROVIDER_ACCEPT_LANGUAGE", ""),
			Timeout:          getEnvAsDurationOrDefault("PROVIDER_TIMEOUT", 30*time.Second),
			MaxRetries:       getEnvAsIntOrDefault("PROVIDER_MAX_RETRIES", 3),
			MaxContinuations: getEnvAsIntOrDefault("PROVIDER_MAX_CONTINUATIONS", 30),
		},
		Session: SessionConfig{
			TTL:            getEnvAsDurationOrDefault("SESSION_TTL", 24*time.Hour),
			ResultsPerPage: getEnvAsIntOrDefault("RESULTS_PER_PAGE", 10),
			ResultCacheTTL: getEnvAsDurationOrDefault("RESULT_CACHE_TTL", time.Hour),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			File:  getEnvOrDefault("LOG_FILE", ""),
		},
		RulesFile:     getEnvOrDefault("RULES_FILE", ""),
		MaxImageBytes: getEnvAsIntOrDefault("MAX_IMAGE_BYTES", 10<<20),
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

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("90s", "24h") or plain seconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case CacheMemory, CacheLRU:
	case CacheRedis:
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case CacheSQLite:
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return fmt.Errorf("cache type must be one of %s, %s, %s, %s", CacheMemory, CacheLRU, CacheRedis, CacheSQLite)
	}

	if c.Session.ResultsPerPage < 1 {
		return errors.New("results per page must be at least 1")
	}

	if c.Session.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}

	if c.MaxImageBytes < 1 {
		return errors.New("max image bytes must be positive")
	}

	if c.Provider.MaxContinuations < 0 {
		return errors.New("max continuations cannot be negative")
	}

	return nil
}
