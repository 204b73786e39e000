package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopbot/internal/domain"
	healthuc "github.com/kailas-cloud/shopbot/internal/usecase/health"
)

// IntentExtractor resolves a free-text message into a structured intent.
type IntentExtractor interface {
	Extract(ctx context.Context, message string) (domain.Intent, error)
}

// ProductFilter applies an intent as a predicate over the catalog.
type ProductFilter interface {
	Filter(products []domain.Product, intent domain.Intent) []domain.Product
}

// Catalog exposes the loaded product list.
type Catalog interface {
	Products() []domain.Product
	Len() int
}

// Server implements the HTTP API.
type Server struct {
	intents IntentExtractor
	filter  ProductFilter
	catalog Catalog
	health  *healthuc.Service
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	intents IntentExtractor,
	filter ProductFilter,
	catalog Catalog,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		intents: intents,
		filter:  filter,
		catalog: catalog,
		health:  health,
		logger:  logger,
	}
}

// Routes mounts all endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/v1/chat", s.HandleChat)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatDebug struct {
	OriginalMessage string        `json:"originalMessage"`
	ExtractedIntent domain.Intent `json:"extractedIntent"`
	TotalProducts   int           `json:"totalProducts"`
	FilteredCount   int           `json:"filteredCount"`
}

type chatResponse struct {
	Products []domain.Product `json:"products"`
	Intent   domain.Intent    `json:"intent"`
	Debug    chatDebug        `json:"debug"`
}

// HandleChat handles POST /api/v1/chat: validate, extract intent, filter the
// catalog, assemble the response with debug counters.
func (s *Server) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, domain.ErrEmptyMessage)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.respondError(w, domain.ErrEmptyMessage)
		return
	}

	intent, err := s.intents.Extract(r.Context(), req.Message)
	if err != nil {
		s.respondError(w, err)
		return
	}

	products := s.catalog.Products()
	filtered := s.filter.Filter(products, intent)

	writeJSON(w, http.StatusOK, chatResponse{
		Products: filtered,
		Intent:   intent,
		Debug: chatDebug{
			OriginalMessage: req.Message,
			ExtractedIntent: intent,
			TotalProducts:   len(products),
			FilteredCount:   len(filtered),
		},
	})
}

type healthResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks,omitempty"`
	Products int               `json:"products"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:   string(report.Status),
		Checks:   checks,
		Products: report.CatalogCount,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// respondError maps domain sentinels to status codes. Anything unmapped is an
// unexpected pipeline failure.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrEmptyMessage) {
		writeError(w, http.StatusBadRequest, "Message is required", "")
		return
	}
	s.logger.Error("chat pipeline failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Failed to process message", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}
