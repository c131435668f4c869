// Package api provides the HTTP API for the station locator.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/stationfinder/stationfinder/internal/api/handler"
	"github.com/stationfinder/stationfinder/internal/api/middleware"
	"github.com/stationfinder/stationfinder/internal/station"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	BuildTime      string
	Logger         zerolog.Logger
	ServiceName    string
	Metrics        *middleware.Metrics
	StationService *station.Service
	DB             handler.Pinger
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "stationfinder-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers
	r.Use(middleware.RequireTLS)           // TLS enforcement (REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.DB)
	stationHandler := handler.NewStationHandler(cfg.StationService, cfg.Logger)

	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)

	r.Get("/", opsHandler.Root)
	r.Get("/healthz", opsHandler.HealthCheck)
	r.Get("/readyz", opsHandler.ReadinessCheck)

	r.Route("/api/stations", func(r chi.Router) {
		r.Use(standardRateLimit)
		r.Get("/", stationHandler.ListStations)
		r.Get("/{stationId}", stationHandler.GetStation)
	})

	return r
}
