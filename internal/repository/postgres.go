package repository

import (
	"context"
	"fmt"

	"restaurant-finder-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository geocodes addresses against the local PostGIS address table
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Schema creates the address table used by the local geocoder.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;
	CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		address TEXT NOT NULL,
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS addresses_geom_idx ON addresses USING GIST (geom);
`

// Geocode returns the addresses containing the query text, shortest (closest) match first
func (r *Repository) Geocode(ctx context.Context, address string) ([]models.GeocodeCandidate, error) {
	sql := `
		SELECT
			address,
			ST_Y(geom::geometry) AS latitude,
			ST_X(geom::geometry) AS longitude
		FROM addresses
		WHERE address = $1 OR strpos(address, $1) > 0
		ORDER BY (address = $1) DESC, length(address), id
		LIMIT 10
	`

	rows, err := r.db.Query(ctx, sql, address)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute geocode query: %w", err)
	}
	defer rows.Close()

	candidates := []models.GeocodeCandidate{}
	for rows.Next() {
		var c models.GeocodeCandidate
		if err := rows.Scan(&c.Address, &c.Location.Lat, &c.Location.Lng); err != nil {
			return nil, fmt.Errorf("repository: failed to scan address: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return candidates, nil
}
