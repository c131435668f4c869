// Package handler provides HTTP handlers for the station API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/stationfinder/stationfinder/internal/api/models"
	"github.com/stationfinder/stationfinder/internal/api/response"
)

// Pinger verifies connectivity to a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	db        Pinger
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, db Pinger) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		db:        db,
	}
}

// Root handles GET / - minimal ping route.
func (h *OpsHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Message{Message: "API is running"})
}

// HealthCheck handles GET /healthz - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /readyz - readiness check with a store ping.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			response.ServiceUnavailable(w, r, "database unreachable")
			return
		}
	}

	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}
