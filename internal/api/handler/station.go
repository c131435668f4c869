package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/stationfinder/stationfinder/internal/api/response"
	"github.com/stationfinder/stationfinder/internal/station"
)

// StationHandler handles station endpoints.
type StationHandler struct {
	stations *station.Service
	logger   zerolog.Logger
}

// NewStationHandler creates a new StationHandler.
func NewStationHandler(stations *station.Service, logger zerolog.Logger) *StationHandler {
	return &StationHandler{
		stations: stations,
		logger:   logger,
	}
}

// ListStations handles GET /api/stations - search and filter stations.
//
// All query parameters are optional; malformed limit and near values fall
// back silently rather than erroring, so this endpoint only fails on store
// errors.
func (h *StationHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := station.ListFilter{
		Query:   q.Get("query"),
		Service: q.Get("service"),
		Fuel:    q.Get("fuel"),
		Near:    q.Get("near"),
		Limit:   q.Get("limit"),
	}

	stations, err := h.stations.List(r.Context(), filter)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("request_id", getRequestID(r)).
			Msg("station listing failed")
		response.InternalError(w, r, "failed to fetch stations")
		return
	}

	response.JSON(w, r, http.StatusOK, stations)
}

// GetStation handles GET /api/stations/{stationId} - get one station.
func (h *StationHandler) GetStation(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "stationId")
	if stationID == "" {
		response.BadRequest(w, r, "stationId is required")
		return
	}

	doc, err := h.stations.Get(r.Context(), stationID)
	if err != nil {
		if errors.Is(err, station.ErrStationNotFound) {
			response.NotFound(w, r, "Station not found")
			return
		}
		h.logger.Error().
			Err(err).
			Str("request_id", getRequestID(r)).
			Str("station_id", stationID).
			Msg("station lookup failed")
		response.InternalError(w, r, "failed to fetch station")
		return
	}

	response.JSON(w, r, http.StatusOK, doc)
}
