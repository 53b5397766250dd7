package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-finder-api/internal/models"
)

// LocationService resolves the origin of a search
type LocationService struct {
	geocoder Geocoder
}

// NewLocationService creates a new location resolver
func NewLocationService(geocoder Geocoder) *LocationService {
	return &LocationService{geocoder: geocoder}
}

// Resolve returns the origin for criteria. Manual mode geocodes the address and takes
// the first candidate; device mode requires coordinates that were already delivered.
func (s *LocationService) Resolve(ctx context.Context, criteria models.SearchCriteria) (*models.Coordinates, error) {
	switch criteria.Mode {
	case models.LocationManual:
		address := strings.TrimSpace(criteria.Address)
		if address == "" {
			return nil, fmt.Errorf("service: empty address: %w", models.ErrLocationNotFound)
		}
		candidates, err := s.geocoder.Geocode(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("service: failed to geocode address: %w", err)
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("service: %q: %w", address, models.ErrLocationNotFound)
		}
		loc := candidates[0].Location
		return &loc, nil

	case models.LocationDeviceGPS:
		if criteria.DeviceCoords == nil {
			return nil, fmt.Errorf("service: no device coordinates: %w", models.ErrLocationUnavailable)
		}
		loc := *criteria.DeviceCoords
		return &loc, nil
	}

	return nil, &models.ValidationError{Field: "mode", Message: fmt.Sprintf("unknown location mode %q", criteria.Mode)}
}

// AwaitDeviceFix waits for the device to report its position. A closed channel,
// a cancelled context or an elapsed timeout all mean the location is unavailable.
// A non-positive timeout waits on ctx alone.
func AwaitDeviceFix(ctx context.Context, fix <-chan models.Coordinates, timeout time.Duration) (*models.Coordinates, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	select {
	case loc, ok := <-fix:
		if !ok {
			return nil, fmt.Errorf("service: device fix channel closed: %w", models.ErrLocationUnavailable)
		}
		return &loc, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("service: device fix timed out: %w", models.ErrLocationUnavailable)
		}
		return nil, fmt.Errorf("service: %v: %w", ctx.Err(), models.ErrLocationUnavailable)
	}
}
