package service

import (
	"context"
	"fmt"
	"strings"

	"restaurant-finder-api/internal/models"
)

// GeoCodeService turns address text into coordinate candidates
type GeoCodeService struct {
	geocoder Geocoder
}

// Geocoder is implemented by the Google client and the PostGIS repository
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]models.GeocodeCandidate, error)
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(geocoder Geocoder) *GeoCodeService {
	return &GeoCodeService{geocoder: geocoder}
}

// Geocode returns every candidate for address, best match first
func (s *GeoCodeService) Geocode(ctx context.Context, address string) ([]models.GeocodeCandidate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, &models.ValidationError{Field: "address", Message: "address cannot be empty"}
	}

	candidates, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode address: %w", err)
	}

	return candidates, nil
}
