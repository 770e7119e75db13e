package services

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/wherecaniwatch/finder/internal/apperrors"
	"github.com/wherecaniwatch/finder/internal/models"
)

// sampleEntry is one lookup key of the bundled sample dataset
type sampleEntry struct {
	key    string
	titles []sampleTitle
}

type sampleTitle struct {
	id        int
	mediaType models.MediaType
	name      string
	posterURL string
	countries []string
}

// sampleTitles is served when no API key is configured or the provider fails.
// Keys are matched in this order.
var sampleTitles = []sampleEntry{
	{
		key: "attack on titan",
		titles: []sampleTitle{
			{
				id:        20574,
				mediaType: models.MediaTypeTV,
				name:      "Attack on Titan",
				posterURL: "https://image.tmdb.org/t/p/w342/1wnFLcuIbF3cBFRXBSe4EBkAJc4.jpg",
				countries: []string{"Japan", "Italy", "Germany", "United States", "Canada"},
			},
			{
				id:        95396,
				mediaType: models.MediaTypeTV,
				name:      "Attack on Titan: The Final Season",
				posterURL: "https://image.tmdb.org/t/p/w342/qvf5xAJGOEzd1G9pwghSYvs06Jx.jpg",
				countries: []string{"Japan", "Italy", "Germany", "France", "Spain"},
			},
		},
	},
	{
		key: "interstellar",
		titles: []sampleTitle{{
			id:        157336,
			mediaType: models.MediaTypeMovie,
			name:      "Interstellar",
			posterURL: "https://image.tmdb.org/t/p/w342/gEU2QniY6ShO7h4mXrpMSfcAgJe.jpg",
			countries: []string{"United States", "United Kingdom", "Canada", "Australia"},
		}},
	},
	{
		key: "inception",
		titles: []sampleTitle{{
			id:        27205,
			mediaType: models.MediaTypeMovie,
			name:      "Inception",
			posterURL: "https://image.tmdb.org/t/p/w342/9gk7adHYeDMNNGceKPn30Up0HwU.jpg",
			countries: []string{"United States", "United Kingdom", "France", "Japan"},
		}},
	},
	{
		key: "breaking bad",
		titles: []sampleTitle{{
			id:        1396,
			mediaType: models.MediaTypeTV,
			name:      "Breaking Bad",
			posterURL: "https://image.tmdb.org/t/p/w342/ggFHVNu6YYI5L9pIClnuVfmXoPE.jpg",
			countries: []string{"United States", "Mexico", "Canada", "United Kingdom"},
		}},
	},
}

// searchSampleTitles returns fresh copies of every sample title whose key
// contains the case-folded query.
func searchSampleTitles(query string) []models.Title {
	folded := cases.Fold().String(query)

	titles := make([]models.Title, 0)
	for _, entry := range sampleTitles {
		if !strings.Contains(entry.key, folded) {
			continue
		}
		for _, s := range entry.titles {
			titles = append(titles, s.toTitle())
		}
	}
	return titles
}

// findSampleTitle returns the sample title with the given ID and media type
func findSampleTitle(titleID int, mediaType models.MediaType) (models.Title, error) {
	for _, entry := range sampleTitles {
		for _, s := range entry.titles {
			if s.id == titleID && s.mediaType == mediaType {
				return s.toTitle(), nil
			}
		}
	}
	return nil, apperrors.NewTitleNotFoundError(titleID)
}

func (s sampleTitle) toTitle() models.Title {
	posterURL := s.posterURL
	info := models.TitleInfo{
		ID:               s.id,
		PosterURL:        &posterURL,
		NetflixCountries: append([]string(nil), s.countries...),
	}
	if s.mediaType == models.MediaTypeTV {
		return &models.TVShow{TitleInfo: info, Name: s.name}
	}
	return &models.Movie{TitleInfo: info, Title: s.name}
}
