package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultKeyPrefix namespaces all cache keys in Redis to avoid collisions.
	defaultKeyPrefix = "wcw:"

	redisOpTimeout = 2 * time.Second
)

func init() {
	registerBackend(BackendRedis, openRedis)
}

// redisCache implements the Cache interface on Redis/Valkey.
//
// Each entry is a plain string key under the prefix with a server-side TTL.
// Capacity is governed by the server's maxmemory policy rather than
// Options.Size, so OnEvict is never called.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
	prefix string
}

func openRedis(opts Options) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Redis.Address,
		Password: opts.Redis.Password,
		DB:       opts.Redis.DB,
	})

	// Verify connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisCache{
		client: client,
		ttl:    opts.TTL,
		logger: opts.Logger,
		prefix: defaultKeyPrefix,
	}, nil
}

func (r *redisCache) logError(msg string, err error) {
	if r.logger != nil {
		r.logger.Error(msg, err)
	}
}

func (r *redisCache) Get(ctx context.Context, key Key) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	val, err := r.client.Get(ctx, r.prefix+string(key)).Bytes()
	if err != nil {
		// redis.Nil is a plain miss
		if !errors.Is(err, redis.Nil) {
			r.logError("redis cache Get failed", err)
		}
		return nil, false
	}
	return val, true
}

func (r *redisCache) Set(ctx context.Context, key Key, body []byte) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+string(key), body, r.ttl).Err(); err != nil {
		r.logError("redis cache Set failed", err)
	}
}

// Len counts the keys under the cache prefix with SCAN, so it only reflects
// this cache's entries even when the database is shared.
func (r *redisCache) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	n := 0
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		r.logError("redis cache Len failed", err)
		return 0
	}
	return n
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
