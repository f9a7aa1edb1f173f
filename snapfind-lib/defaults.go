// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package snapfind

import (
	"io"
	"time"

	"snapfind-api/core/interfaces"
	"snapfind-api/infrastructure/cache/memory"
	"snapfind-api/infrastructure/cache/sqlite"
	httpInfra "snapfind-api/infrastructure/http/standard"
	loggerInfra "snapfind-api/infrastructure/logger/logrus"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCacheWithCleanup(10 * time.Minute)
}

// DefaultSQLiteCache creates a SQLite cache so sessions survive restarts
func DefaultSQLiteCache(filePath string) (interfaces.Cache, error) {
	return sqlite.NewSQLiteCache(filePath)
}

// DefaultLogger creates a JSON logger writing to stdout at info level
func DefaultLogger() interfaces.Logger {
	return loggerInfra.New(loggerInfra.Config{Level: "info"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return loggerInfra.NewWithWriter(io.Discard, "error")
}
