package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wherecaniwatch/finder/internal/config"
	"github.com/wherecaniwatch/finder/internal/models"
)

// SearchParser decodes multi-search responses into movie and tv titles
type SearchParser struct{}

// NewSearchParser creates a new search parser instance
func NewSearchParser() *SearchParser {
	return &SearchParser{}
}

// Parse decodes the response body and keeps only movie and tv results, in
// provider order. Entries that fail to decode are skipped.
func (p *SearchParser) Parse(body io.Reader) ([]models.Title, error) {
	logger := config.GetLogger()

	var resp models.SearchResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	titles := make([]models.Title, 0, len(resp.Results))
	for i, raw := range resp.Results {
		var result models.SearchResult
		if err := json.Unmarshal(raw, &result); err != nil {
			logger.Debug().Err(err).Int("index", i).Msg("Skipping undecodable search result")
			continue
		}

		title := toTitle(result)
		if title == nil {
			logger.Debug().Str("media_type", result.MediaType).Int("id", result.ID).Msg("Skipping non movie/tv search result")
			continue
		}
		titles = append(titles, title)
	}

	logger.Debug().
		Int("raw_results", len(resp.Results)).
		Int("titles", len(titles)).
		Msg("Parsed search response")
	return titles, nil
}

func toTitle(r models.SearchResult) models.Title {
	info := models.TitleInfo{
		ID:          r.ID,
		VoteAverage: r.VoteAverage,
	}
	if r.PosterPath != nil {
		info.PosterPath = *r.PosterPath
	}

	switch models.MediaType(r.MediaType) {
	case models.MediaTypeMovie:
		return &models.Movie{TitleInfo: info, Title: r.Title, ReleaseDate: r.ReleaseDate}
	case models.MediaTypeTV:
		return &models.TVShow{TitleInfo: info, Name: r.Name, FirstAirDate: r.FirstAirDate}
	default:
		return nil
	}
}
