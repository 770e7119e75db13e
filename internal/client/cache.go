package client

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/wherecaniwatch/finder/internal/cache"
	"github.com/wherecaniwatch/finder/internal/config"
)

// cacheLogger adapts zerolog to cache.Logger
type cacheLogger struct {
	logger zerolog.Logger
}

func (l cacheLogger) Error(msg string, err error) {
	l.logger.Warn().Err(err).Msg(msg)
}

// newSearchCache builds the optional search response cache. It returns nil
// when caching is disabled or the backend cannot be reached, so a cache outage
// only costs latency.
func newSearchCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.Type == "" {
		return nil
	}
	logger := config.GetLogger()

	ttl := time.Hour
	if cfg.Cache.TTL != "" {
		if parsed, err := time.ParseDuration(cfg.Cache.TTL); err != nil {
			logger.Warn().Err(err).Str("ttl", cfg.Cache.TTL).Msg("Invalid cache TTL, using default 1h")
		} else {
			ttl = parsed
		}
	}

	c, err := cache.Open(cache.Backend(cfg.Cache.Type), cache.Options{
		Size:   cfg.Cache.Size,
		TTL:    ttl,
		Logger: cacheLogger{logger: logger},
		Redis: cache.RedisOptions{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		},
		Group: "search",
	})
	if err != nil {
		logger.Warn().Err(err).Str("type", cfg.Cache.Type).Msg("Search cache unavailable, continuing without cache")
		return nil
	}

	logger.Info().Str("type", cfg.Cache.Type).Dur("ttl", ttl).Int("size", cfg.Cache.Size).Msg("Search cache enabled")
	return c
}
