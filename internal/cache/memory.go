package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	registerBackend(BackendMemory, openMemory)
}

// memoryCache keeps search bodies in a process-local LRU with per-entry expiry.
type memoryCache struct {
	entries *lru.LRU[Key, []byte]
}

func openMemory(opts Options) (Cache, error) {
	return &memoryCache{
		entries: lru.NewLRU[Key, []byte](opts.Size, lru.EvictCallback[Key, []byte](opts.OnEvict), opts.TTL),
	}, nil
}

func (m *memoryCache) Get(_ context.Context, key Key) ([]byte, bool) {
	return m.entries.Get(key)
}

func (m *memoryCache) Set(_ context.Context, key Key, body []byte) {
	m.entries.Add(key, body)
}

func (m *memoryCache) Len() int {
	return m.entries.Len()
}

func (m *memoryCache) Close() error {
	return nil
}
