// Package server exposes the scheduling engine over a JSON API. Every run
// builds a fresh engine from the request body, so the server holds no state
// between calls beyond its metrics.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/me/seeksim/internal/config"
	"github.com/me/seeksim/pkg/model"
)

const version = "0.1.0"

// Server is the seeksim REST API server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	metrics   *serverMetrics
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithMetricsRegistry registers the server's metrics on reg instead of a
// private registry, so embedders can fold seeksim metrics into their own
// exposition.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.metrics = newServerMetrics(reg)
	}
}

// New creates a Server with all routes registered.
func New(cfg config.ServerConfig, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = newServerMetrics(prometheus.NewRegistry())
	}

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	// Prometheus exposition, outside the JSON envelope.
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	// API routes (JSON)
	r.Route("/api/v1", func(r chi.Router) {
		r.NotFound(s.handleNotFound)

		// Discovery
		r.Get("/", s.handleDiscovery)

		// Health
		r.Get("/health", s.handleHealth)

		// Algorithms
		r.Get("/algorithms", s.handleListAlgorithms)

		// Simulation runs
		r.Post("/simulations", s.handleCreateSimulation)
		r.Post("/comparisons", s.handleCreateComparison)
	})
}

// handleNotFound keeps unknown API paths inside the JSON envelope.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("route", r.URL.Path))
}
