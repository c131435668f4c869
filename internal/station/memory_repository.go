package station

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository with the
// same matching semantics as PostgresRepository. This is intended for
// testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu       sync.RWMutex
	stations map[string]*Station
	order    []string
}

// NewInMemoryRepository creates a new in-memory station repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		stations: make(map[string]*Station),
	}
}

// List returns stations matching the criteria.
func (r *InMemoryRepository) List(_ context.Context, c Criteria) ([]*Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Station
	for _, id := range r.order {
		st := r.stations[id]
		if matches(st, c) {
			cpy := *st
			matched = append(matched, &cpy)
		}
	}

	if c.Near != nil {
		for _, st := range matched {
			if st.Location != nil {
				d := haversineMeters(*c.Near, *st.Location)
				st.DistanceMeters = &d
			}
		}
		// Rows without coordinates sort last, matching the SQL NULL ordering.
		sort.SliceStable(matched, func(i, j int) bool {
			di, dj := matched[i].DistanceMeters, matched[j].DistanceMeters
			switch {
			case di == nil:
				return false
			case dj == nil:
				return true
			default:
				return *di < *dj
			}
		})
	}

	if len(matched) > c.Limit {
		matched = matched[:c.Limit]
	}
	return matched, nil
}

// Get retrieves a station by ID.
func (r *InMemoryRepository) Get(_ context.Context, id string) (*Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.stations[id]
	if !ok {
		return nil, ErrStationNotFound
	}

	cpy := *st
	return &cpy, nil
}

// ReplaceAll deletes every station and inserts the given set.
func (r *InMemoryRepository) ReplaceAll(_ context.Context, stations []*Station) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stations = make(map[string]*Station, len(stations))
	r.order = r.order[:0]
	for _, st := range stations {
		cpy := *st
		r.stations[st.ID] = &cpy
		r.order = append(r.order, st.ID)
	}
	return nil
}

func matches(st *Station, c Criteria) bool {
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		if !strings.Contains(strings.ToLower(st.Name), q) &&
			!strings.Contains(strings.ToLower(st.Address), q) {
			return false
		}
	}

	if len(c.Service) > 0 && !anyLabelIn(st.Services, c.Service) {
		return false
	}

	if len(c.Fuel) > 0 &&
		!anyLabelIn(st.FuelTypes, c.Fuel) && !anyLabelIn(st.Fuels, c.Fuel) {
		return false
	}

	return true
}

func anyLabelIn(labels, set []string) bool {
	for _, label := range labels {
		l := strings.ToLower(label)
		for _, s := range set {
			if l == s {
				return true
			}
		}
	}
	return false
}

const earthRadiusMeters = 6371000

// haversineMeters returns the great-circle distance between two points.
func haversineMeters(a, b GeoPoint) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
