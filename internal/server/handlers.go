package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/wherecaniwatch/finder/internal/apperrors"
	"github.com/wherecaniwatch/finder/internal/models"
	"github.com/wherecaniwatch/finder/internal/services"
)

const maxSearchBody = 1 << 16

// Handler serves the finder API
type Handler struct {
	finder services.Finder
}

// NewHandler creates a handler backed by finder
func NewHandler(finder services.Finder) *Handler {
	return &Handler{finder: finder}
}

type searchRequest struct {
	Query string `json:"query"`
}

// Search handles POST /api/search with a {"query": "..."} body.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxSearchBody)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	titles, err := h.finder.SearchTitles(r.Context(), query)
	if err != nil {
		requestLogger(r).Error().Err(err).Str("query", query).Msg("Search failed")
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, h.finder.DisplayResults(titles))
}

// Countries handles GET /api/countries/{titleId}/{mediaType}.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	titleID, err := strconv.Atoi(vars["titleId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid title_id")
		return
	}

	mediaType, ok := models.ParseMediaType(vars["mediaType"])
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid media_type. Use 'movie' or 'tv'")
		return
	}

	resp, err := h.finder.GetCountries(r.Context(), titleID, mediaType)
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		requestLogger(r).Error().Err(err).Int("title_id", titleID).Msg("Countries lookup failed")
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /api/health. It never calls the provider.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:           "ok",
		APIKeyConfigured: h.finder.Configured(),
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
