package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "restaurant-finder-api/docs"
	"restaurant-finder-api/internal/app"
	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/credential"
	"restaurant-finder-api/internal/handler"
	"restaurant-finder-api/internal/logging"
	"restaurant-finder-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logging.Setup(config.LogLevel, config.LogFormat, os.Stderr)

	// No operator is attached to the server, so the key must come from config.
	apiKey, err := credential.NewProvider(config.GoogleAPIKey, nil).APIKey()
	if err != nil {
		log.Fatal().Err(err).Msg("GOOGLE_API_KEY is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize layers
	services, err := app.New(ctx, config, apiKey, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot initialize services")
	}
	defer services.Close()

	var limiter *middleware.RateLimiter
	if config.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(config.RateLimitRPS, config.RateLimitBurst)
	}

	gin.SetMode(gin.ReleaseMode)
	r := handler.NewRouter(handler.RouterConfig{
		GeoCode:     handler.NewGeoCodeHandler(services.GeoCode),
		Search:      handler.NewSearchHandler(services.Search, config.DeviceFixTimeout),
		Logger:      logger,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
