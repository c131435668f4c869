package station

import "context"

// Repository defines the interface for station data access.
type Repository interface {
	// List returns stations matching the criteria, capped at c.Limit. When
	// the criteria carry a proximity point the result is sorted ascending by
	// distance from it and each record's DistanceMeters is populated;
	// otherwise ordering is unspecified and DistanceMeters stays nil.
	List(ctx context.Context, c Criteria) ([]*Station, error)

	// Get retrieves a station by ID. Returns ErrStationNotFound when absent.
	Get(ctx context.Context, id string) (*Station, error)

	// ReplaceAll deletes every station and inserts the given set. Used by
	// the seeder only; the API surface is read-only.
	ReplaceAll(ctx context.Context, stations []*Station) error
}
