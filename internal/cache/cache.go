package cache

import "context"

// Key identifies a cached provider response. Build keys with the helpers in
// this package so every backend sees the same namespace.
type Key string

// SearchKey is the key under which the raw multi-search body for query is stored.
func SearchKey(query string) Key {
	return Key("search:" + query)
}

// EvictCallback is called when the memory backend drops an entry to make room.
// Redis relies on server-side expiry and never calls it.
type EvictCallback func(key Key, value []byte)

// Logger receives error reports from cache backends.
type Logger interface {
	Error(msg string, err error)
}

// Cache stores raw provider response bodies.
// Backend failures are reported through the configured Logger and surface as
// misses; they never fail the request that triggered them.
type Cache interface {
	// Get returns the stored body and true, or nil and false on a miss.
	Get(ctx context.Context, key Key) ([]byte, bool)

	// Set stores body under key, replacing any previous value.
	Set(ctx context.Context, key Key, body []byte)

	// Len returns the number of entries currently held.
	Len() int

	// Close releases backend connections. A no-op for the memory backend.
	Close() error
}
