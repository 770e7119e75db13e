package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/wherecaniwatch/finder/internal/apperrors"
	"github.com/wherecaniwatch/finder/internal/client"
	"github.com/wherecaniwatch/finder/internal/config"
	"github.com/wherecaniwatch/finder/internal/countries"
	"github.com/wherecaniwatch/finder/internal/metrics"
	"github.com/wherecaniwatch/finder/internal/models"
)

const noResultsMessage = "No results found."

// DefaultFinder implements Finder on top of the provider client and the
// country table. It holds no mutable state and is safe for concurrent use.
type DefaultFinder struct {
	client       client.Client
	countries    *countries.Table
	imageBaseURL string
	providerID   int
}

// NewFinder creates a finder using the image base URL and provider ID from cfg
func NewFinder(c client.Client, table *countries.Table, cfg *config.Config) Finder {
	providerID := cfg.TMDB.ProviderID
	if providerID == 0 {
		providerID = 8
	}
	return &DefaultFinder{
		client:       c,
		countries:    table,
		imageBaseURL: cfg.TMDB.ImageBaseURL,
		providerID:   providerID,
	}
}

func (f *DefaultFinder) Configured() bool {
	return f.client.Configured()
}

func (f *DefaultFinder) SearchTitles(ctx context.Context, query string) ([]models.Title, error) {
	logger := config.GetLogger()

	if !f.client.Configured() {
		metrics.DemoFallbacksTotal.WithLabelValues("not_configured").Inc()
		titles := searchSampleTitles(query)
		logger.Debug().Str("query", query).Int("titles", len(titles)).Msg("Answering search from sample titles")
		return titles, nil
	}

	titles, err := f.client.Search(ctx, query)
	if err != nil {
		var perr *apperrors.ProviderError
		if errors.As(err, &perr) {
			metrics.DemoFallbacksTotal.WithLabelValues("provider_error").Inc()
			logger.Warn().Err(err).Str("query", query).Msg("Provider search failed, using sample titles")
			return searchSampleTitles(query), nil
		}
		return nil, fmt.Errorf("failed to search titles: %w", err)
	}

	for _, title := range titles {
		info := title.Info()
		if info.PosterPath != "" {
			posterURL := f.imageBaseURL + info.PosterPath
			info.PosterURL = &posterURL
		}
	}
	return titles, nil
}

func (f *DefaultFinder) DisplayResults(titles []models.Title) models.APIResponse[[]models.TitleSummary] {
	if len(titles) == 0 {
		return models.APIResponse[[]models.TitleSummary]{
			Success: false,
			Data:    []models.TitleSummary{},
			Message: noResultsMessage,
		}
	}

	summaries := make([]models.TitleSummary, 0, len(titles))
	for _, title := range titles {
		summaries = append(summaries, models.NewTitleSummary(title))
	}
	return models.APIResponse[[]models.TitleSummary]{Success: true, Data: summaries}
}

func (f *DefaultFinder) GetCountries(ctx context.Context, titleID int, mediaType models.MediaType) (models.APIResponse[[]string], error) {
	if !mediaType.Valid() {
		return models.APIResponse[[]string]{}, apperrors.NewValidationError("media_type", "Invalid media_type. Use 'movie' or 'tv'")
	}

	if !f.client.Configured() {
		sample, err := findSampleTitle(titleID, mediaType)
		if err != nil {
			logger := config.GetLogger()
			logger.Debug().Err(err).Str("media_type", mediaType.String()).Msg("Countries requested for a title outside the sample set")
			return failedCountries(), nil
		}
		return models.APIResponse[[]string]{Success: true, Data: sortedUnique(sample.Info().NetflixCountries)}, nil
	}

	names, err := f.lookupCountries(ctx, titleID, mediaType)
	if err != nil {
		var perr *apperrors.ProviderError
		if errors.As(err, &perr) {
			return failedCountries(), nil
		}
		return models.APIResponse[[]string]{}, err
	}
	return models.APIResponse[[]string]{Success: true, Data: names}, nil
}

func (f *DefaultFinder) NetflixCountries(ctx context.Context, title models.Title) []string {
	info := title.Info()
	if !f.client.Configured() {
		if info.NetflixCountries == nil {
			return []string{}
		}
		return append([]string(nil), info.NetflixCountries...)
	}
	if info.ID == 0 {
		return []string{}
	}

	names, err := f.lookupCountries(ctx, info.ID, title.MediaType())
	if err != nil {
		return []string{}
	}
	return names
}

// lookupCountries fetches watch providers and maps the matching country codes
// to sorted, unique display names.
func (f *DefaultFinder) lookupCountries(ctx context.Context, titleID int, mediaType models.MediaType) ([]string, error) {
	providers, err := f.client.WatchProviders(ctx, titleID, mediaType)
	if err != nil {
		return nil, err
	}

	codes := providers.SubscriptionCountries(f.providerID)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, f.countries.Name(code))
	}

	logger := config.GetLogger()
	logger.Debug().
		Int("title_id", titleID).
		Str("media_type", mediaType.String()).
		Int("regions", len(providers)).
		Int("countries", len(codes)).
		Msg("Resolved subscription countries")
	return sortedUnique(names), nil
}

func failedCountries() models.APIResponse[[]string] {
	return models.APIResponse[[]string]{Success: false, Data: []string{}}
}

// sortedUnique returns a sorted copy of names with duplicates removed.
func sortedUnique(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
