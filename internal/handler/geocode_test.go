package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-finder-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGeoCodeService is a mock implementation of the GeoCodeService interface
type MockGeoCodeService struct {
	mock.Mock
}

func (m *MockGeoCodeService) Geocode(ctx context.Context, address string) ([]models.GeocodeCandidate, error) {
	args := m.Called(ctx, address)
	return args.Get(0).([]models.GeocodeCandidate), args.Error(1)
}

func TestGeoCodeHandler_Geocode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		mockCandidates []models.GeocodeCandidate
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameter 'q'"},
		},
		{
			name:  "successful geocoding with results",
			query: "台北車站",
			mockCandidates: []models.GeocodeCandidate{
				{Address: "台北車站", Location: models.Coordinates{Lat: 25.0478, Lng: 121.517}},
			},
			expectedStatus: http.StatusOK,
			expectedBody: []interface{}{
				map[string]interface{}{
					"address":  "台北車站",
					"location": map[string]interface{}{"lat": 25.0478, "lng": 121.517},
				},
			},
		},
		{
			name:           "successful geocoding with no results",
			query:          "nonexistent address",
			mockCandidates: []models.GeocodeCandidate{},
			expectedStatus: http.StatusOK,
			expectedBody:   []interface{}{},
		},
		{
			name:           "whitespace-only query",
			query:          "   ",
			mockError:      &models.ValidationError{Field: "address", Message: "address cannot be empty"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "validation error on field 'address': address cannot be empty"},
		},
		{
			name:           "provider error",
			query:          "台北車站",
			mockError:      &models.ProviderError{Operation: "geocode", Status: "REQUEST_DENIED", Message: "bad key"},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   map[string]interface{}{"error": "搜尋服務發生錯誤：bad key"},
		},
		{
			name:           "service error",
			query:          "台北車站",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockGeoCodeService)
			handler := NewGeoCodeHandler(mockSvc)

			if tt.query != "" {
				mockSvc.On("Geocode", mock.Anything, tt.query).Return(tt.mockCandidates, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/geocode", nil)
			if tt.query != "" {
				q := req.URL.Query()
				q.Add("q", tt.query)
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.GeoCode(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}
