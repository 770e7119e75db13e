package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// StringPtr is a helper for creating *string values in tests
func StringPtr(v string) *string {
	return &v
}

// SearchResultOptions describes one entry of a multi-search response
type SearchResultOptions struct {
	ID           int
	MediaType    string // "movie", "tv", "person"
	Title        string
	Name         string
	ReleaseDate  string
	FirstAirDate string
	PosterPath   string // empty renders as null
	VoteAverage  float64
}

// GenerateSearchJSON builds a multi-search response body shaped like the real provider's
func GenerateSearchJSON(results []SearchResultOptions) string {
	entries := make([]map[string]any, 0, len(results))
	for _, r := range results {
		entry := map[string]any{
			"id":           r.ID,
			"media_type":   r.MediaType,
			"vote_average": r.VoteAverage,
			"popularity":   12.5,
			"adult":        false,
		}
		if r.PosterPath != "" {
			entry["poster_path"] = r.PosterPath
		} else {
			entry["poster_path"] = nil
		}
		switch r.MediaType {
		case "movie":
			entry["title"] = r.Title
			entry["original_title"] = r.Title
			entry["release_date"] = r.ReleaseDate
		case "tv":
			entry["name"] = r.Name
			entry["original_name"] = r.Name
			entry["first_air_date"] = r.FirstAirDate
		default:
			entry["name"] = r.Name
			entry["known_for_department"] = "Acting"
		}
		entries = append(entries, entry)
	}

	body, _ := json.Marshal(map[string]any{
		"page":          1,
		"results":       entries,
		"total_pages":   1,
		"total_results": len(entries),
	})
	return string(body)
}

// GenerateWatchProvidersJSON builds a watch/providers body where each country
// maps offer type ("flatrate", "rent", "buy") to provider IDs
func GenerateWatchProvidersJSON(titleID int, countries map[string]map[string][]int) string {
	results := make(map[string]any, len(countries))
	for code, offers := range countries {
		region := map[string]any{
			"link": "https://www.themoviedb.org/movie/" + code + "/watch",
		}
		for offerType, ids := range offers {
			list := make([]map[string]any, 0, len(ids))
			for i, id := range ids {
				list = append(list, map[string]any{
					"provider_id":      id,
					"provider_name":    "Provider",
					"logo_path":        "/logo.jpg",
					"display_priority": i,
				})
			}
			region[offerType] = list
		}
		results[code] = region
	}

	body, _ := json.Marshal(map[string]any{
		"id":      titleID,
		"results": results,
	})
	return string(body)
}

// FakeProvider is an httptest server standing in for the metadata provider.
// Routes are matched on URL path; unmatched paths return 404.
type FakeProvider struct {
	Server   *httptest.Server
	requests atomic.Int64
	lastReq  atomic.Pointer[http.Request]
}

// NewFakeProvider starts a fake provider serving the given path -> JSON body routes
func NewFakeProvider(t *testing.T, routes map[string]string) *FakeProvider {
	t.Helper()
	f := &FakeProvider{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		f.lastReq.Store(r)
		body, ok := routes[strings.TrimSuffix(r.URL.Path, "/")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`))
			return
		}
		w.Header().Set("Content-Type", "application/json;charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.Server.Close)
	return f
}

// Requests returns how many requests the fake provider has received
func (f *FakeProvider) Requests() int {
	return int(f.requests.Load())
}

// LastRequest returns the most recent request, or nil
func (f *FakeProvider) LastRequest() *http.Request {
	return f.lastReq.Load()
}

// URL returns the base URL of the fake provider
func (f *FakeProvider) URL() string {
	return f.Server.URL
}
