// Package server exposes the finder over HTTP.
package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wherecaniwatch/finder/internal/services"
)

// NewRouter builds the API router. Every route also answers OPTIONS so the
// CORS middleware can serve preflight requests.
func NewRouter(finder services.Finder) *mux.Router {
	h := NewHandler(finder)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.Use(requestIDMiddleware, loggingMiddleware, corsMiddleware, recoveryMiddleware)

	r.HandleFunc("/api/search", h.Search).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/countries/{titleId}/{mediaType}", h.Countries).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet, http.MethodOptions)

	return r
}
