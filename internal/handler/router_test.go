package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	geo := new(MockGeoCodeService)
	geo.On("Geocode", mock.Anything, "台北車站").Return([]models.GeocodeCandidate{}, nil)

	r := NewRouter(RouterConfig{
		GeoCode:     NewGeoCodeHandler(geo),
		Search:      NewSearchHandler(new(MockSearchService), time.Second),
		Logger:      zerolog.Nop(),
		RateLimiter: middleware.NewRateLimiter(0.001, 1),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geocode?q=%E5%8F%B0%E5%8C%97%E8%BB%8A%E7%AB%99", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// health is not rate limited, the API group is
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?address=x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
