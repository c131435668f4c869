package station

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const stationColumns = `id, name, address, hours, is_open_24_hours, services, fuel_type, fuels, longitude, latitude, created_at, updated_at`

// schema creates the stations table and its geospatial index. The seeder runs
// it before loading data; the API assumes it exists.
const schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS stations (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	address          TEXT NOT NULL,
	hours            TEXT NOT NULL DEFAULT '',
	is_open_24_hours BOOLEAN NOT NULL DEFAULT FALSE,
	services         TEXT[] NOT NULL DEFAULT '{}',
	fuel_type        TEXT[],
	fuels            TEXT[],
	longitude        DOUBLE PRECISION,
	latitude         DOUBLE PRECISION,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS stations_location_idx
	ON stations USING gist ((ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)));
`

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL station repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the stations table and indexes if they do not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// List returns stations matching the criteria. Proximity criteria order by
// spherical distance and annotate each row with its distance in meters.
func (r *PostgresRepository) List(ctx context.Context, c Criteria) ([]*Station, error) {
	where, args := buildWhere(c)

	var query string
	if c.Near != nil {
		// ST_MakePoint takes longitude first; the parsed near point is
		// latitude-first. Rows without coordinates sort last with a NULL
		// distance.
		args = append(args, c.Near.Lng, c.Near.Lat)
		query = fmt.Sprintf(`
			SELECT %s,
				ST_DistanceSphere(
					ST_MakePoint(longitude, latitude),
					ST_MakePoint($%d, $%d)
				) AS distance_meters
			FROM stations
			%s
			ORDER BY distance_meters ASC
			LIMIT %d
		`, stationColumns, len(args)-1, len(args), where, c.Limit)
	} else {
		query = fmt.Sprintf(`
			SELECT %s, NULL::DOUBLE PRECISION AS distance_meters
			FROM stations
			%s
			LIMIT %d
		`, stationColumns, where, c.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []*Station
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, err
		}
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}

// Get retrieves a station by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Station, error) {
	query := fmt.Sprintf(`
		SELECT %s, NULL::DOUBLE PRECISION AS distance_meters
		FROM stations
		WHERE id = $1
	`, stationColumns)

	st, err := scanStation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return st, nil
}

// ReplaceAll deletes every station and inserts the given set in one
// transaction.
func (r *PostgresRepository) ReplaceAll(ctx context.Context, stations []*Station) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM stations`); err != nil {
		return err
	}

	insert := `
		INSERT INTO stations (
			id, name, address, hours, is_open_24_hours,
			services, fuel_type, fuels, longitude, latitude,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	for _, st := range stations {
		var lng, lat *float64
		if st.Location != nil {
			lng, lat = &st.Location.Lng, &st.Location.Lat
		}

		_, err := tx.Exec(ctx, insert,
			st.ID,
			st.Name,
			st.Address,
			st.Hours,
			st.IsOpen24Hours,
			st.Services,
			st.FuelTypes,
			st.Fuels,
			lng,
			lat,
			st.CreatedAt,
			st.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// buildWhere renders the AND of the criteria's filter clauses. An empty
// criteria yields no WHERE clause at all, matching every row.
func buildWhere(c Criteria) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if c.Query != "" {
		args = append(args, "%"+escapeLike(c.Query)+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR address ILIKE $%d)", n, n))
	}

	if len(c.Service) > 0 {
		args = append(args, c.Service)
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM unnest(services) AS s WHERE lower(s) = ANY($%d))", len(args)))
	}

	if len(c.Fuel) > 0 {
		// Both legacy fuel columns are checked; stored rows carry either.
		args = append(args, c.Fuel)
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(EXISTS (SELECT 1 FROM unnest(fuel_type) AS f WHERE lower(f) = ANY($%d))"+
				" OR EXISTS (SELECT 1 FROM unnest(fuels) AS f WHERE lower(f) = ANY($%d)))", n, n))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// escapeLike escapes LIKE metacharacters so the query text is matched as a
// literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func scanStation(row pgx.Row) (*Station, error) {
	var st Station
	var lng, lat *float64

	err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Address,
		&st.Hours,
		&st.IsOpen24Hours,
		&st.Services,
		&st.FuelTypes,
		&st.Fuels,
		&lng,
		&lat,
		&st.CreatedAt,
		&st.UpdatedAt,
		&st.DistanceMeters,
	)
	if err != nil {
		return nil, err
	}

	if lng != nil && lat != nil {
		st.Location = &GeoPoint{Lat: *lat, Lng: *lng}
	}

	return &st, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
