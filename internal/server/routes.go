package server

import (
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agelookup/internal/dataset"
	"agelookup/internal/handlers"
	"agelookup/internal/metrics"
	"agelookup/internal/resolver"
	"agelookup/internal/tracker"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ds *dataset.File, r *resolver.Resolver, t *tracker.Tracker) {
	// Initialize handlers
	ageHandler := handlers.NewAgeHandler(r, t)
	uiHandler := handlers.NewUIHandler(r, t)
	probeHandler := handlers.NewProbeHandler(ds)

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	// Metrics
	if s.Cfg.MetricsEnabled {
		metrics.Init(t)
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	} else {
		log.Println("Metrics are disabled. Unset METRICS_ENABLED=false to enable /metrics.")
	}

	// Browser page
	s.App.Get("/ui", uiHandler.Index)

	// JSON API
	s.App.Get("/", ageHandler.Lookup)
	s.App.Get("/stats", ageHandler.Stats)
	s.App.Get("/max-age-name", ageHandler.MaxAge)
}
