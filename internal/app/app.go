// Package app wires configuration, the provider client and the services together.
package app

import (
	"context"
	"fmt"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/places"
	"restaurant-finder-api/internal/repository"
	"restaurant-finder-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// App holds the constructed services. Close releases the database pool, if any.
type App struct {
	Places   *places.Client
	GeoCode  *service.GeoCodeService
	Location *service.LocationService
	Search   *service.SearchService

	pool *pgxpool.Pool
}

// New builds the services for cfg. apiKey must already be resolved.
func New(ctx context.Context, cfg config.Config, apiKey string, logger zerolog.Logger) (*App, error) {
	client, err := places.NewClient(apiKey, cfg.PlacesBaseURL, cfg.RequestTimeout, places.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("app: cannot create places client: %w", err)
	}

	a := &App{Places: client}

	var geocoder service.Geocoder = client
	if cfg.Geocoder == config.GeocoderPostgres {
		pool, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, fmt.Errorf("app: cannot connect to db: %w", err)
		}
		a.pool = pool
		geocoder = repository.NewRepository(pool)
		logger.Info().Msg("using local address table for geocoding")
	}

	a.GeoCode = service.NewGeoCodeService(geocoder)
	a.Location = service.NewLocationService(geocoder)
	a.Search = service.NewSearchService(a.Location, client, cfg.ResultLanguage, logger)
	return a, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
