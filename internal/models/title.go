package models

// Title is a search result from the metadata provider. It is a closed union:
// the only implementations are *Movie and *TVShow.
type Title interface {
	Info() *TitleInfo
	MediaType() MediaType
	// DisplayTitle returns the variant's title field, or "Unknown" when empty
	DisplayTitle() string
	// AirDate returns the release date for movies and the first air date for shows
	AirDate() string

	isTitle()
}

// TitleInfo holds the fields shared by every title variant
type TitleInfo struct {
	ID          int
	PosterPath  string
	PosterURL   *string // Full image URL, nil when the provider has no poster
	VoteAverage float64

	// NetflixCountries is only populated for the bundled sample titles
	NetflixCountries []string
}

// Movie is a title with media type "movie"
type Movie struct {
	TitleInfo
	Title       string
	ReleaseDate string
}

// TVShow is a title with media type "tv"
type TVShow struct {
	TitleInfo
	Name         string
	FirstAirDate string
}

func (m *Movie) Info() *TitleInfo     { return &m.TitleInfo }
func (m *Movie) MediaType() MediaType { return MediaTypeMovie }
func (m *Movie) AirDate() string      { return m.ReleaseDate }
func (m *Movie) isTitle()             {}

func (m *Movie) DisplayTitle() string {
	return displayOrUnknown(m.Title)
}

func (s *TVShow) Info() *TitleInfo     { return &s.TitleInfo }
func (s *TVShow) MediaType() MediaType { return MediaTypeTV }
func (s *TVShow) AirDate() string      { return s.FirstAirDate }
func (s *TVShow) isTitle()             {}

func (s *TVShow) DisplayTitle() string {
	return displayOrUnknown(s.Name)
}

func displayOrUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

// ReleaseYear extracts the leading four-digit year from a provider date
// ("2010-07-15" -> "2010"). Anything else yields an empty string.
func ReleaseYear(date string) string {
	if len(date) < 4 {
		return ""
	}
	year := date[:4]
	for i := 0; i < len(year); i++ {
		if year[i] < '0' || year[i] > '9' {
			return ""
		}
	}
	return year
}
