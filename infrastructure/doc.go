// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: in-process cache on patrickmn/go-cache
// - cache/lru: size-bounded cache on hashicorp/golang-lru
// - cache/redis: Redis cache on go-redis
// - cache/sqlite: SQLite cache that survives restarts
// - http/standard: net/http client with retries and a cookie jar
// - logger/logrus: JSON logger with optional file rotation
// - metrics/prometheus: search and session counters
// - export/xlsx: spreadsheet writer on excelize
//
// # Cache Example
//
//	cache := memory.NewMemoryCacheWithCleanup(10 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # HTTP Client
//
// GET requests are retried on transport errors and 5xx responses. POST is
// sent once.
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
package infrastructure
