// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("key not found")

// Cache defines the interface for the key/value backends that hold search
// sessions and cached result sets. Implementations can be go-cache, an LRU,
// Redis, SQLite, or any other store that honours TTLs.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a session record for a day
//	err := cache.Set(ctx, "session:"+id, data, 24*time.Hour)
//
//	// Retrieve it; a miss or an evicted key returns an error
//	data, err := cache.Get(ctx, "session:"+id)
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte, or ErrCacheMiss if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
