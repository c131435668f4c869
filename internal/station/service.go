package station

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stationfinder/stationfinder/internal/api/models"
)

// PriceSource provides current pump prices near a point, keyed by canonical
// fuel label. Implemented by the prices package.
type PriceSource interface {
	Nearby(ctx context.Context, lat, lng float64) (map[string]float64, error)
}

// ServiceConfig holds configuration for creating a Service.
type ServiceConfig struct {
	Repository Repository

	// Prices is optional; when nil the detail endpoint carries no prices.
	Prices PriceSource

	Logger zerolog.Logger
}

// Service provides station lookup operations.
type Service struct {
	repo   Repository
	prices PriceSource
	logger zerolog.Logger
}

// NewService creates a new station service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:   cfg.Repository,
		prices: cfg.Prices,
		logger: cfg.Logger,
	}
}

// List validates and defaults the filter, runs the store lookup, and shapes
// each result. Store errors propagate unmodified.
func (s *Service) List(ctx context.Context, f ListFilter) ([]models.Station, error) {
	criteria := BuildCriteria(f)

	stations, err := s.repo.List(ctx, criteria)
	if err != nil {
		return nil, err
	}

	shaped := make([]models.Station, 0, len(stations))
	for _, st := range stations {
		shaped = append(shaped, Shape(st))
	}
	return shaped, nil
}

// Get looks up a single station by ID. Distance is never computed on this
// path. When a price feed is configured the result is enriched with current
// pump prices; feed failures degrade to a result without prices.
func (s *Service) Get(ctx context.Context, id string) (*models.Station, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shaped := Shape(st)

	if s.prices != nil && shaped.Lat != nil && shaped.Lng != nil {
		prices, err := s.prices.Nearby(ctx, *shaped.Lat, *shaped.Lng)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("station_id", id).
				Msg("price feed unavailable, returning station without prices")
		} else if len(prices) > 0 {
			shaped.Prices = prices
		}
	}

	return &shaped, nil
}
