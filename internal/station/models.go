// Package station provides station lookup: the persisted model, synonym
// tables for service and fuel labels, the filter-to-criteria translation,
// and the response shaping.
package station

import (
	"errors"
	"time"
)

// Repository errors.
var (
	ErrStationNotFound = errors.New("station not found")
)

// Station is a persisted station record. Service and fuel labels are stored
// as written by whoever loaded the data; canonical display forms are applied
// at shaping time only.
type Station struct {
	ID            string
	Name          string
	Address       string
	Hours         string
	IsOpen24Hours bool
	Services      []string

	// FuelTypes is the legacy fuel column. Fuels supersedes it, but old rows
	// may carry either, so filters check both and shaping prefers Fuels only
	// when the column is actually present.
	FuelTypes []string
	Fuels     []string

	// Location is nil when a row has no usable coordinates.
	Location *GeoPoint

	CreatedAt time.Time
	UpdatedAt time.Time

	// DistanceMeters is populated by proximity queries only.
	DistanceMeters *float64
}

// GeoPoint is a geographic point. Stored coordinates are [lng, lat] while
// the `near` query parameter is latitude-first; named fields keep the two
// conventions from being confused in Go code.
type GeoPoint struct {
	Lat float64
	Lng float64
}
