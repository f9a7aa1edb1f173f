// ABOUTME: Bounded LRU cache backend built on hashicorp/golang-lru expirable
// ABOUTME: Evicts least recently used sessions once the configured size is reached

package lru

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"snapfind-api/core/interfaces"
)

// DefaultSize is the entry limit used when none is configured
const DefaultSize = 10000

type entry struct {
	value   []byte
	expires time.Time
}

// LRUCache implements the Cache interface with a size-bounded LRU.
// Entries expire after the shorter of their own TTL and the cache-wide maxTTL.
type LRUCache struct {
	items *expirable.LRU[string, entry]
}

// NewLRUCache creates a cache holding at most size entries. maxTTL of zero
// keeps entries until they are evicted or their own TTL passes.
func NewLRUCache(size int, maxTTL time.Duration) (*LRUCache, error) {
	if size < 0 {
		return nil, errors.New("lru size cannot be negative")
	}
	if size == 0 {
		size = DefaultSize
	}
	if maxTTL < 0 {
		maxTTL = 0
	}
	return &LRUCache{
		items: expirable.NewLRU[string, entry](size, nil, maxTTL),
	}, nil
}

// Get retrieves a value from the cache
func (c *LRUCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e, ok := c.items.Get(key)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		c.items.Remove(key)
		return nil, interfaces.ErrCacheMiss
	}

	result := make([]byte, len(e.value))
	copy(result, e.value)
	return result, nil
}

// Set stores a value; a zero ttl relies on the cache-wide expiry only
func (c *LRUCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := entry{value: make([]byte, len(value))}
	copy(e.value, value)
	if ttl > 0 {
		e.expires = time.Now().Add(ttl)
	}
	c.items.Add(key, e)
	return nil
}

// Delete removes a key from the cache
func (c *LRUCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.items.Remove(key)
	return nil
}

// Len returns the number of entries currently held
func (c *LRUCache) Len() int {
	return c.items.Len()
}
