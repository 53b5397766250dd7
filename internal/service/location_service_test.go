package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"restaurant-finder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_Resolve(t *testing.T) {
	taipei := models.Coordinates{Lat: 25.0478, Lng: 121.517}

	tests := []struct {
		name           string
		criteria       models.SearchCriteria
		mockCandidates []models.GeocodeCandidate
		mockError      error
		expected       *models.Coordinates
		expectedErr    error
		expectError    bool
	}{
		{
			name:     "manual address takes first candidate",
			criteria: models.SearchCriteria{Mode: models.LocationManual, Address: "台北車站"},
			mockCandidates: []models.GeocodeCandidate{
				{Location: taipei},
				{Location: models.Coordinates{Lat: 1, Lng: 1}},
			},
			expected: &taipei,
		},
		{
			name:           "manual address with no candidates",
			criteria:       models.SearchCriteria{Mode: models.LocationManual, Address: "nowhere"},
			mockCandidates: []models.GeocodeCandidate{},
			expectedErr:    models.ErrLocationNotFound,
		},
		{
			name:        "manual mode without address",
			criteria:    models.SearchCriteria{Mode: models.LocationManual},
			expectedErr: models.ErrLocationNotFound,
		},
		{
			name:        "manual mode with whitespace-only address",
			criteria:    models.SearchCriteria{Mode: models.LocationManual, Address: "  \t "},
			expectedErr: models.ErrLocationNotFound,
		},
		{
			name:           "manual address is trimmed before geocoding",
			criteria:       models.SearchCriteria{Mode: models.LocationManual, Address: "  台北車站 "},
			mockCandidates: []models.GeocodeCandidate{{Location: taipei}},
			expected:       &taipei,
		},
		{
			name:        "geocoder error",
			criteria:    models.SearchCriteria{Mode: models.LocationManual, Address: "台北車站"},
			mockError:   assert.AnError,
			expectedErr: assert.AnError,
		},
		{
			name:     "device coordinates present",
			criteria: models.SearchCriteria{Mode: models.LocationDeviceGPS, DeviceCoords: &taipei},
			expected: &taipei,
		},
		{
			name:        "device coordinates missing",
			criteria:    models.SearchCriteria{Mode: models.LocationDeviceGPS},
			expectedErr: models.ErrLocationUnavailable,
		},
		{
			name:        "unknown mode",
			criteria:    models.SearchCriteria{Mode: "satellite"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGeocoder := new(MockGeocoder)
			resolver := NewLocationService(mockGeocoder)

			address := strings.TrimSpace(tt.criteria.Address)
			if tt.criteria.Mode == models.LocationManual && address != "" {
				mockGeocoder.On("Geocode", mock.Anything, address).Return(tt.mockCandidates, tt.mockError)
			}

			result, err := resolver.Resolve(context.Background(), tt.criteria)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			case tt.expectError:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockGeocoder.AssertExpectations(t)
			if tt.criteria.Mode != models.LocationManual || address == "" {
				mockGeocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAwaitDeviceFix(t *testing.T) {
	t.Run("fix delivered", func(t *testing.T) {
		fix := make(chan models.Coordinates, 1)
		fix <- models.Coordinates{Lat: 25.03, Lng: 121.56}

		loc, err := AwaitDeviceFix(context.Background(), fix, time.Second)
		require.NoError(t, err)
		assert.Equal(t, &models.Coordinates{Lat: 25.03, Lng: 121.56}, loc)
	})

	t.Run("fix delivered later", func(t *testing.T) {
		fix := make(chan models.Coordinates)
		go func() {
			time.Sleep(10 * time.Millisecond)
			fix <- models.Coordinates{Lat: 1, Lng: 2}
		}()

		loc, err := AwaitDeviceFix(context.Background(), fix, time.Second)
		require.NoError(t, err)
		assert.Equal(t, 1.0, loc.Lat)
	})

	t.Run("channel closed", func(t *testing.T) {
		fix := make(chan models.Coordinates)
		close(fix)

		_, err := AwaitDeviceFix(context.Background(), fix, time.Second)
		assert.ErrorIs(t, err, models.ErrLocationUnavailable)
	})

	t.Run("never resolves", func(t *testing.T) {
		_, err := AwaitDeviceFix(context.Background(), make(chan models.Coordinates), 10*time.Millisecond)
		assert.ErrorIs(t, err, models.ErrLocationUnavailable)
	})

	t.Run("context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := AwaitDeviceFix(ctx, make(chan models.Coordinates), 0)
		assert.ErrorIs(t, err, models.ErrLocationUnavailable)
	})
}
