package models

import "strings"

// MediaType identifies which kind of title a provider ID refers to
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// String returns the string representation of the media type
func (m MediaType) String() string {
	return string(m)
}

// Valid reports whether m is one of the supported media types
func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// ParseMediaType converts a path or payload value to a MediaType.
// Matching is exact: "Movie" is rejected just like "radio".
func ParseMediaType(value string) (MediaType, bool) {
	m := MediaType(strings.TrimSpace(value))
	if !m.Valid() {
		return "", false
	}
	return m, true
}
