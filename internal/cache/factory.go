package cache

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Backend names a cache implementation selectable through cache.type
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
)

// RedisOptions locates the Redis/Valkey server for BackendRedis
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

// Options configures a search response cache.
type Options struct {
	// Size caps the memory backend. It must be positive for every backend so a
	// misconfigured deployment fails at startup rather than caching nothing.
	Size int
	TTL  time.Duration

	// OnEvict observes capacity evictions from the memory backend
	OnEvict EvictCallback
	Logger  Logger
	Redis   RedisOptions

	// Group labels the Prometheus series. Empty disables instrumentation.
	Group string
}

type opener func(Options) (Cache, error)

var (
	backendsMu sync.RWMutex
	backends   = map[Backend]opener{}
)

// registerBackend is called from each backend's init.
func registerBackend(b Backend, open opener) {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	if _, dup := backends[b]; dup {
		panic(fmt.Sprintf("cache: backend %q registered twice", b))
	}
	backends[b] = open
}

// Open builds the cache for backend, instrumented when opts.Group is set.
func Open(backend Backend, opts Options) (Cache, error) {
	backendsMu.RLock()
	open, ok := backends[backend]
	backendsMu.RUnlock()

	switch {
	case !ok:
		return nil, fmt.Errorf("cache: unknown backend %q (available: %v)", backend, Backends())
	case opts.Size <= 0:
		return nil, fmt.Errorf("cache: size must be positive, got %d", opts.Size)
	case opts.Group == "":
		return open(opts)
	}

	group, observer := opts.Group, opts.OnEvict
	opts.OnEvict = func(key Key, body []byte) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if observer != nil {
			observer(key, body)
		}
	}

	c, err := open(opts)
	if err != nil {
		return nil, err
	}
	return newInstrumentedCache(c, group), nil
}

// Backends lists the registered backends in name order.
func Backends() []Backend {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	names := make([]Backend, 0, len(backends))
	for b := range backends {
		names = append(names, b)
	}
	slices.Sort(names)
	return names
}
