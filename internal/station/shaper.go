package station

import (
	"math"

	"github.com/stationfinder/stationfinder/internal/api/models"
)

// Shape converts a stored record into the client-facing view: canonical
// service and fuel labels (order and multiplicity preserved), a resolved
// hours string, flattened coordinates, and a distance annotation when the
// record came from a proximity query.
func Shape(s *Station) models.Station {
	out := models.Station{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Hours:   s.Hours,
	}

	if s.IsOpen24Hours {
		out.Hours = "24 hours"
	}

	out.Services = make([]string, len(s.Services))
	for i, raw := range s.Services {
		out.Services[i] = CanonicalService(raw)
	}

	// The legacy column is read only when the newer one is absent entirely;
	// an empty (but present) fuels list does not fall through.
	fuels := s.Fuels
	if fuels == nil {
		fuels = s.FuelTypes
	}
	out.Fuels = make([]string, len(fuels))
	for i, raw := range fuels {
		out.Fuels[i] = CanonicalFuel(raw)
	}

	if s.Location != nil {
		lat, lng := s.Location.Lat, s.Location.Lng
		out.Lat = &lat
		out.Lng = &lng
	}

	if s.DistanceMeters != nil {
		out.DistanceKm = distanceKm(*s.DistanceMeters)
	}

	return out
}

// distanceKm rounds to the nearest 100 meters and then divides, rather than
// rounding the kilometer value to one decimal. The two diverge at half-unit
// boundaries and stored clients expect this one.
func distanceKm(meters float64) *float64 {
	km := math.Round(meters/100) / 10
	return &km
}
