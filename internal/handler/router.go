package handler

import (
	"net/http"

	"restaurant-finder-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig collects what NewRouter wires together.
type RouterConfig struct {
	GeoCode     *GeoCodeHandler
	Search      *SearchHandler
	Logger      zerolog.Logger
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the HTTP API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(cfg.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/")
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Middleware())
	}
	api.GET("/geocode", cfg.GeoCode.GeoCode)
	api.GET("/search", cfg.Search.Search)

	return r
}
