package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"appointment-intake-service/internal/observability"
)

// RouterConfig holds the router-level settings.
type RouterConfig struct {
	RequestsPerMinute int
	OCRPerMinute      int
}

// NewRouter constructs the HTTP router for the service.
func NewRouter(pipeline IntakeRunner, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observability.RequestLogger)

	// Health endpoints
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/readiness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	handler := NewHandler(pipeline, cfg.OCRPerMinute)

	// API routes
	r.Group(func(r chi.Router) {
		r.Use(RateLimit(cfg.RequestsPerMinute))
		r.Post("/v1/parse", handler.Parse)
	})

	return r
}
