package client

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wherecaniwatch/finder/internal/apperrors"
	"github.com/wherecaniwatch/finder/internal/config"
	"github.com/wherecaniwatch/finder/internal/models"
)

// WatchProviders fetches the per-country streaming offers for one title.
// Results are never cached.
func (c *client) WatchProviders(ctx context.Context, titleID int, mediaType models.MediaType) (models.WatchProviders, error) {
	if !mediaType.Valid() {
		return nil, apperrors.NewValidationError("media_type", "Invalid media_type. Use 'movie' or 'tv'")
	}
	if !c.Configured() {
		return nil, apperrors.NewProviderRequestError(endpointWatchProviders, apperrors.ErrNotConfigured)
	}

	path := fmt.Sprintf("/%s/%d/watch/providers", mediaType, titleID)
	body, err := c.get(ctx, endpointWatchProviders, path, nil)
	if err != nil {
		return nil, err
	}

	providers, err := c.providersParser.Parse(bytes.NewReader(body))
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Int("title_id", titleID).Msg("Watch providers response could not be parsed")
		return nil, apperrors.NewProviderRequestError(endpointWatchProviders, err)
	}
	return providers, nil
}
