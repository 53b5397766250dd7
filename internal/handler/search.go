package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurant-finder-api/internal/models"
	"restaurant-finder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SearchHandler handles restaurant search requests
type SearchHandler struct {
	service          SearchService
	deviceFixTimeout time.Duration
}

// SearchService interface for dependency injection
type SearchService interface {
	Search(context.Context, models.SearchCriteria) (*models.SearchResult, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService, deviceFixTimeout time.Duration) *SearchHandler {
	return &SearchHandler{service: svc, deviceFixTimeout: deviceFixTimeout}
}

// SearchRequest is the query string of GET /search
type SearchRequest struct {
	Mode      string   `form:"mode" binding:"omitempty,oneof=manual gps"`
	Address   string   `form:"address"`
	Lat       *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Lng       *float64 `form:"lng" binding:"omitempty,min=-180,max=180"`
	Radius    int      `form:"radius,default=1000" binding:"oneof=100 500 1000 5000"`
	MealTime  string   `form:"meal_time"`
	Budget    string   `form:"budget,default=500" binding:"oneof=100 300 500 1000"`
	Cuisines  []string `form:"cuisine"`
	MinRating float64  `form:"min_rating,default=4.2" binding:"min=0,max=5"`
}

// SearchResponse is the body of a successful search
type SearchResponse struct {
	Origin   models.Coordinates   `json:"origin"`
	Keyword  string               `json:"keyword"`
	MaxPrice int                  `json:"max_price"`
	Count    int                  `json:"count"`
	Places   []models.PlaceRecord `json:"places"`
	Message  string               `json:"message,omitempty"`
}

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// Search handles GET /search requests
//
//	@Summary	Search nearby restaurants
//	@Tags		search
//	@Produce	json
//	@Param		mode		query		string		false	"manual or gps"
//	@Param		address		query		string		false	"address for manual mode"
//	@Param		lat			query		number		false	"device latitude for gps mode"
//	@Param		lng			query		number		false	"device longitude for gps mode"
//	@Param		radius		query		int			false	"100, 500, 1000 or 5000"
//	@Param		meal_time	query		string		false	"meal time label or name"
//	@Param		budget		query		string		false	"100, 300, 500 or 1000"
//	@Param		cuisine		query		[]string	false	"cuisine tags"	collectionFormat(multi)
//	@Param		min_rating	query		number		false	"minimum rating"
//	@Success	200			{object}	SearchResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Failure	502			{object}	ErrorResponse
//	@Router		/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criteria, err := h.criteria(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	result, err := h.service.Search(c.Request.Context(), criteria)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := SearchResponse{
		Origin:   result.Origin,
		Keyword:  result.Query.Keyword,
		MaxPrice: result.Query.MaxPrice,
		Count:    len(result.Places),
		Places:   result.Places,
	}
	if result.Empty() {
		resp.Places = []models.PlaceRecord{}
		resp.Message = models.UserMessage(models.ErrNoResultsAfterFilter)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) criteria(ctx context.Context, req SearchRequest) (models.SearchCriteria, error) {
	mode, err := models.ParseLocationMode(req.Mode)
	if err != nil {
		return models.SearchCriteria{}, err
	}
	meal, err := models.ParseMealTime(req.MealTime)
	if err != nil {
		return models.SearchCriteria{}, err
	}

	criteria := models.SearchCriteria{
		Mode:         mode,
		Address:      strings.TrimSpace(req.Address),
		RadiusMeters: req.Radius,
		MealTime:     meal,
		Budget:       models.BudgetTier(req.Budget),
		Cuisines:     req.Cuisines,
		MinRating:    req.MinRating,
	}
	if criteria.Cuisines == nil {
		criteria.Cuisines = []string{}
	}

	if mode == models.LocationDeviceGPS {
		loc, err := service.AwaitDeviceFix(ctx, deviceFix(req), h.deviceFixTimeout)
		if err != nil {
			return models.SearchCriteria{}, err
		}
		criteria.DeviceCoords = loc
	}

	return criteria, nil
}

// deviceFix delivers the coordinates the browser attached to the request.
// Without both of them the channel is closed and the fix never arrives.
func deviceFix(req SearchRequest) <-chan models.Coordinates {
	fix := make(chan models.Coordinates, 1)
	if req.Lat != nil && req.Lng != nil {
		fix <- models.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	}
	close(fix)
	return fix
}

func (h *SearchHandler) writeError(c *gin.Context, err error) {
	var (
		provErr *models.ProviderError
		valErr  *models.ValidationError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &valErr), errors.Is(err, models.ErrInvalidBudget):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrLocationNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrLocationUnavailable):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &provErr):
		status = http.StatusBadGateway
	}

	logger := zerolog.Ctx(c.Request.Context())
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Msg("search failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	logger.Warn().Err(err).Int("status", status).Msg("search rejected")
	c.JSON(status, gin.H{"error": models.UserMessage(err)})
}
