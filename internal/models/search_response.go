package models

import "encoding/json"

// SearchResponse is the raw body of the provider's multi-search endpoint.
// Results are kept raw because their shape depends on media_type.
type SearchResponse struct {
	Page         int               `json:"page"`
	Results      []json.RawMessage `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}

// SearchResult is the union of the fields the provider returns for movie and
// tv search results. Person results share the envelope but are discarded.
type SearchResult struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`          // movie
	ReleaseDate  string  `json:"release_date"`   // movie
	Name         string  `json:"name"`           // tv
	FirstAirDate string  `json:"first_air_date"` // tv
	PosterPath   *string `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
}
