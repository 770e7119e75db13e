package models

// TitleSummary is the client-facing representation of a search result.
// The JSON keys match what the web frontend reads.
type TitleSummary struct {
	ID     int       `json:"id"`
	Title  string    `json:"title"`
	Type   MediaType `json:"type"`
	Year   string    `json:"year"`
	Poster *string   `json:"poster"` // null when no poster is available
	Rating float64   `json:"rating"`
}

// NewTitleSummary flattens a title into its response shape
func NewTitleSummary(t Title) TitleSummary {
	info := t.Info()
	return TitleSummary{
		ID:     info.ID,
		Title:  t.DisplayTitle(),
		Type:   t.MediaType(),
		Year:   ReleaseYear(t.AirDate()),
		Poster: info.PosterURL,
		Rating: info.VoteAverage,
	}
}
