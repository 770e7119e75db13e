package services

import (
	"context"

	"github.com/wherecaniwatch/finder/internal/models"
)

// Finder answers the questions the HTTP surface asks: which titles match a
// query, and in which countries a title streams on the target provider.
type Finder interface {
	// Configured reports whether live provider data is available. When false
	// every answer comes from the bundled sample titles.
	Configured() bool

	// SearchTitles returns movie and tv titles matching query, each with its
	// poster URL resolved. Provider failures fall back to the sample titles.
	SearchTitles(ctx context.Context, query string) ([]models.Title, error)

	// DisplayResults flattens titles into the search response envelope.
	DisplayResults(titles []models.Title) models.APIResponse[[]models.TitleSummary]

	// GetCountries lists, sorted and without duplicates, the country names where
	// the title is available as a subscription on the target provider.
	GetCountries(ctx context.Context, titleID int, mediaType models.MediaType) (models.APIResponse[[]string], error)

	// NetflixCountries resolves availability for a title taken from a search
	// result. Sample titles return their bundled list as-is.
	NetflixCountries(ctx context.Context, title models.Title) []string
}
