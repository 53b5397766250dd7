//go:build integration

package repository

import (
	"context"
	"testing"

	"restaurant-finder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container with PostGIS
	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	_, err = pool.Exec(ctx, Schema)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		INSERT INTO addresses (address, geom) VALUES
		('台北車站', ST_SetSRID(ST_MakePoint(121.517, 25.0478), 4326)),
		('台北車站東三門', ST_SetSRID(ST_MakePoint(121.5185, 25.0480), 4326)),
		('台北101', ST_SetSRID(ST_MakePoint(121.5645, 25.0340), 4326));
	`)
	require.NoError(t, err)

	return pool
}

func TestRepository_Geocode(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		expected []models.GeocodeCandidate
	}{
		{
			name:  "exact match first",
			query: "台北車站",
			expected: []models.GeocodeCandidate{
				{Address: "台北車站", Location: models.Coordinates{Lat: 25.0478, Lng: 121.517}},
				{Address: "台北車站東三門", Location: models.Coordinates{Lat: 25.048, Lng: 121.5185}},
			},
		},
		{
			name:  "partial match",
			query: "101",
			expected: []models.GeocodeCandidate{
				{Address: "台北101", Location: models.Coordinates{Lat: 25.034, Lng: 121.5645}},
			},
		},
		{
			name:     "search with no results",
			query:    "nonexistent",
			expected: []models.GeocodeCandidate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := repo.Geocode(ctx, tt.query)
			require.NoError(t, err)
			require.Len(t, candidates, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.Address, candidates[i].Address)
				assert.InDelta(t, want.Location.Lat, candidates[i].Location.Lat, 1e-6)
				assert.InDelta(t, want.Location.Lng, candidates[i].Location.Lng, 1e-6)
			}
		})
	}
}
