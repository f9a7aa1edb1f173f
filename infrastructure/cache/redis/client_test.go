package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"snapfind-api/core/interfaces"
	"snapfind-api/pkg/config"
)

// These are integration tests against a local Redis instance

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	if os.Getenv("REDIS_TEST") != "1" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST=1 to run")
	}

	address := os.Getenv("REDIS_ADDRESS")
	if address == "" {
		address = "localhost:6379"
	}
	cache, err := NewRedisCache(config.RedisConfig{Address: address})
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{})

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestRedisCache_SetGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := "snapfind-test:session"

	if err := cache.Set(ctx, key, []byte(`{"id":"x"}`), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	defer cache.Delete(ctx, key)

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != `{"id":"x"}` {
		t.Errorf("Get returned %s", got)
	}
}

func TestRedisCache_Get_NonExistentKey(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.Get(context.Background(), "snapfind-test:missing")

	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestRedisCache_Set_AppliesTTL(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := "snapfind-test:ttl"

	if err := cache.Set(ctx, key, []byte("v"), 100*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	if _, err := cache.Get(ctx, key); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get error = %v for expired key, want ErrCacheMiss", err)
	}
}

func TestRedisCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := "snapfind-test:delete"

	if err := cache.Set(ctx, key, []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, key); err == nil {
		t.Error("Get should return error for deleted key")
	}
	if err := cache.Delete(ctx, "snapfind-test:never-set"); err != nil {
		t.Errorf("Delete should return nil for non-existent key, got: %v", err)
	}
}
