package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the judgment use case, a logger for structured logging and the
// renderer used for reason text. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc      port.JudgmentUseCase
	logger   *slog.Logger
	render   domain.ReasonRenderer
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. metrics is
// mounted on /metrics when non-nil. Browser clients from allowedOrigins
// may call the API.
func NewHandler(svc port.JudgmentUseCase, logger *slog.Logger, metrics http.Handler, allowedOrigins []string) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		render:   domain.RenderReasonEN,
		validate: validator.New(),
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/judgments", h.handleRunJudgments)
		r.Post("/judgments", h.handleJudgeBatch)
		r.Get("/anomalies", h.handleScanAnomalies)
		r.Post("/anomalies", h.handleDetectAnomalies)
		r.Put("/overrides/{key}", h.handleSetOverride)
		r.Delete("/overrides/{key}", h.handleClearOverride)
	})
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain and port errors onto status codes. Unknown errors
// are logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidClassification),
		errors.Is(err, domain.ErrInvalidCampaign),
		errors.Is(err, domain.ErrInvalidRecord):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.Is(err, port.ErrSourceUnavailable):
		h.logger.Warn(op+" rejected", slog.Any("error", err))
		http.Error(w, "record source unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// decode reads a JSON body into v and validates it.
func (h *Handler) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid JSON")
	}
	return h.validate.Struct(v)
}
