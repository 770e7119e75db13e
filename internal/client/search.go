package client

import (
	"bytes"
	"context"
	"net/url"

	"github.com/wherecaniwatch/finder/internal/apperrors"
	"github.com/wherecaniwatch/finder/internal/cache"
	"github.com/wherecaniwatch/finder/internal/config"
	"github.com/wherecaniwatch/finder/internal/models"
)

// Search queries the provider's multi-search endpoint (first page only) and
// returns the movie and tv results in provider order.
func (c *client) Search(ctx context.Context, query string) ([]models.Title, error) {
	if !c.Configured() {
		return nil, apperrors.NewProviderRequestError(endpointSearch, apperrors.ErrNotConfigured)
	}
	logger := config.GetLogger()
	cacheKey := cache.SearchKey(query)

	if c.searchCache != nil {
		if body, ok := c.searchCache.Get(ctx, cacheKey); ok {
			titles, err := c.searchParser.Parse(bytes.NewReader(body))
			if err == nil {
				logger.Debug().Str("query", query).Int("titles", len(titles)).Msg("Search served from cache")
				return titles, nil
			}
			logger.Warn().Err(err).Str("query", query).Msg("Discarding unreadable cached search response")
		}
	}

	body, err := c.get(ctx, endpointSearch, "/search/multi", url.Values{
		"query": {query},
		"page":  {"1"},
	})
	if err != nil {
		return nil, err
	}

	titles, err := c.searchParser.Parse(bytes.NewReader(body))
	if err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("Provider search response could not be parsed")
		return nil, apperrors.NewProviderRequestError(endpointSearch, err)
	}

	if c.searchCache != nil {
		c.searchCache.Set(ctx, cacheKey, body)
	}

	logger.Info().Str("query", query).Int("titles", len(titles)).Msg("Provider search completed")
	return titles, nil
}
