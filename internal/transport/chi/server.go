// Package chi implements the portal search HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/calcportal/searchd/internal/domain"
	healthuc "github.com/calcportal/searchd/internal/usecase/health"
	searchuc "github.com/calcportal/searchd/internal/usecase/search"
)

// Server exposes the search and health use cases over HTTP.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// Routes mounts the API endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.Search)
	r.Get("/healthz", s.Health)
	r.Get("/metrics", s.Metrics)
}

// searchResponse is the wire shape of a federated search result.
type searchResponse struct {
	Calculators        searchGroup `json:"calculators"`
	Articles           searchGroup `json:"articles"`
	Standards          searchGroup `json:"standards"`
	FallbackLocaleUsed bool        `json:"fallbackLocaleUsed"`
	UsedLocale         string      `json:"usedLocale"`
}

type searchGroup struct {
	Total int         `json:"total"`
	Items []searchHit `json:"items"`
}

type searchHit struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	URL             string `json:"url"`
	Category        string `json:"category,omitempty"`
	IsForeignLocale bool   `json:"isForeignLocale"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Search handles GET /search?q=&locale=&limit=. A short or empty q is a
// successful empty response, not an error.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	locale := domain.Locale(r.URL.Query().Get("locale"))
	if locale == "" {
		locale = domain.DefaultLocale
	}

	var opts searchuc.Options
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "bad_request", "limit must be a positive integer")
			return
		}
		opts.LimitPerType = limit
	}

	resp, err := s.search.Search(r.Context(), query, locale, opts)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, responseToWire(&resp))
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}
	writeJSON(w, status, healthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// handleDomainError maps use case failures to HTTP statuses. A content store
// failure surfaces as a generic "search unavailable" so the UI can show its
// try-again message.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrProviderFailure) {
		s.logger.Warn("search unavailable", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "search_unavailable", "search is temporarily unavailable")
		return
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func responseToWire(resp *domain.SearchResponse) searchResponse {
	return searchResponse{
		Calculators:        groupToWire(resp.Calculators),
		Articles:           groupToWire(resp.Articles),
		Standards:          groupToWire(resp.Standards),
		FallbackLocaleUsed: resp.FallbackLocaleUsed,
		UsedLocale:         string(resp.UsedLocale),
	}
}

func groupToWire(g domain.SearchGroup) searchGroup {
	items := make([]searchHit, len(g.Items))
	for i, hit := range g.Items {
		items[i] = searchHit{
			ID:              hit.ID,
			Type:            string(hit.Type),
			Title:           hit.Title,
			Description:     hit.Description,
			URL:             hit.URL,
			Category:        hit.Category,
			IsForeignLocale: hit.IsForeignLocale,
		}
	}
	return searchGroup{Total: g.Total, Items: items}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
