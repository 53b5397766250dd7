package service

import (
	"context"

	"restaurant-finder-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) ([]models.GeocodeCandidate, error) {
	args := m.Called(ctx, address)
	return args.Get(0).([]models.GeocodeCandidate), args.Error(1)
}

// MockPlacesSearcher is a mock implementation of the PlacesSearcher interface
type MockPlacesSearcher struct {
	mock.Mock
}

func (m *MockPlacesSearcher) NearbySearch(ctx context.Context, origin models.Coordinates, radiusMeters int, query models.ProviderQuery) ([]models.RawPlace, error) {
	args := m.Called(ctx, origin, radiusMeters, query)
	return args.Get(0).([]models.RawPlace), args.Error(1)
}

func ratingPtr(r float64) *float64 { return &r }

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func rawPlace(name string, rating *float64) models.RawPlace {
	p := models.RawPlace{Name: name, Rating: rating, PlaceID: "id-" + name}
	p.Geometry.Location = models.Coordinates{Lat: 25.04, Lng: 121.51}
	return p
}
