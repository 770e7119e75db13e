package cache

import (
	"context"
	"testing"
	"time"
)

func newTestMemoryCache(t *testing.T, size int, onEvict EvictCallback) Cache {
	t.Helper()
	c, err := Open(BackendMemory, Options{Size: size, TTL: time.Hour, OnEvict: onEvict})
	if err != nil {
		t.Fatalf("New memory cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t, 10, nil)

	// Miss
	val, ok := c.Get(ctx, "search:inception")
	if ok {
		t.Fatal("Expected miss")
	}
	if val != nil {
		t.Fatalf("Expected nil value on miss, got %v", val)
	}

	// Set + hit
	c.Set(ctx, "search:inception", []byte(`{"results":[]}`))
	val, ok = c.Get(ctx, "search:inception")
	if !ok {
		t.Fatal("Expected hit")
	}
	if string(val) != `{"results":[]}` {
		t.Fatalf("Unexpected value %s", val)
	}
}

func TestMemoryCache_Len(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t, 10, nil)

	if c.Len() != 0 {
		t.Fatalf("Expected Len 0, got %d", c.Len())
	}

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	if c.Len() != 2 {
		t.Fatalf("Expected Len 2, got %d", c.Len())
	}
}

func TestMemoryCache_Eviction(t *testing.T) {
	ctx := context.Background()
	evictedKeys := make([]Key, 0)
	c := newTestMemoryCache(t, 2, func(key Key, _ []byte) {
		evictedKeys = append(evictedKeys, key)
	})

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	c.Set(ctx, "c", []byte("3")) // should evict "a"

	if len(evictedKeys) != 1 || evictedKeys[0] != "a" {
		t.Fatalf("Expected eviction of 'a', got %v", evictedKeys)
	}
	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatal("Evicted key 'a' should not be present")
	}
	if _, ok := c.Get(ctx, "c"); !ok {
		t.Fatal("Key 'c' should still be present")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, err := Open(BackendMemory, Options{Size: 10, TTL: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set(ctx, "short", []byte("lived"))
	time.Sleep(60 * time.Millisecond)

	if _, ok := c.Get(ctx, "short"); ok {
		t.Fatal("Expected entry to have expired")
	}
}

func TestMemoryCache_Overwrite(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t, 10, nil)

	c.Set(ctx, "key", []byte("v1"))
	c.Set(ctx, "key", []byte("v2"))

	val, ok := c.Get(ctx, "key")
	if !ok || string(val) != "v2" {
		t.Fatalf("Expected v2, got %q (hit=%v)", val, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("Expected Len 1 after overwrite, got %d", c.Len())
	}
}
