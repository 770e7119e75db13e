package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wherecaniwatch/finder/internal/models"
)

// WatchProvidersParser decodes watch/providers responses
type WatchProvidersParser struct{}

// NewWatchProvidersParser creates a new watch providers parser instance
func NewWatchProvidersParser() *WatchProvidersParser {
	return &WatchProvidersParser{}
}

// Parse decodes the per-country offers. A missing results object yields an
// empty, non-nil map.
func (p *WatchProvidersParser) Parse(body io.Reader) (models.WatchProviders, error) {
	var resp models.WatchProvidersResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode watch providers response: %w", err)
	}

	if resp.Results == nil {
		return models.WatchProviders{}, nil
	}
	return models.WatchProviders(resp.Results), nil
}
