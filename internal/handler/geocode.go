package handler

import (
	"context"
	"errors"
	"net/http"

	"restaurant-finder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection
type GeoCodeService interface {
	Geocode(context.Context, string) ([]models.GeocodeCandidate, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests
//
//	@Summary	Geocode an address
//	@Tags		geocode
//	@Produce	json
//	@Param		q	query		string	true	"address text"
//	@Success	200	{array}		models.GeocodeCandidate
//	@Failure	400	{object}	ErrorResponse
//	@Failure	502	{object}	ErrorResponse
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	candidates, err := h.service.Geocode(c.Request.Context(), query)
	if err != nil {
		var (
			provErr *models.ProviderError
			valErr  *models.ValidationError
		)
		switch {
		case errors.As(err, &valErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": models.UserMessage(err)})
			return
		case errors.As(err, &provErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": models.UserMessage(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, candidates)
}
