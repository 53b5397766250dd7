package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	GoogleAPIKey     string        `mapstructure:"GOOGLE_API_KEY"`
	PlacesBaseURL    string        `mapstructure:"PLACES_BASE_URL"`
	ResultLanguage   string        `mapstructure:"RESULT_LANGUAGE"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	DeviceFixTimeout time.Duration `mapstructure:"DEVICE_FIX_TIMEOUT"`
	Geocoder         string        `mapstructure:"GEOCODER"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	RateLimitRPS     float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int           `mapstructure:"RATE_LIMIT_BURST"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	LogFormat        string        `mapstructure:"LOG_FORMAT"`
}

const (
	GeocoderGoogle   = "google"
	GeocoderPostgres = "postgres"
)

var defaults = map[string]any{
	"SERVER_ADDRESS":     "0.0.0.0:8080",
	"GOOGLE_API_KEY":     "",
	"PLACES_BASE_URL":    "https://maps.googleapis.com",
	"RESULT_LANGUAGE":    "zh-TW",
	"REQUEST_TIMEOUT":    "5s",
	"DEVICE_FIX_TIMEOUT": "10s",
	"GEOCODER":           GeocoderGoogle,
	"DB_SOURCE":          "",
	"RATE_LIMIT_RPS":     5.0,
	"RATE_LIMIT_BURST":   10,
	"LOG_LEVEL":          "info",
	"LOG_FORMAT":         "json",
}

// LoadConfig reads configuration from app.env in path, overridden by environment variables.
// A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, config.Validate()
}

// Validate checks the values that cannot be defaulted sensibly.
func (c Config) Validate() error {
	switch c.Geocoder {
	case GeocoderGoogle:
	case GeocoderPostgres:
		if c.DBSource == "" {
			return errors.New("config: DB_SOURCE is required when GEOCODER=postgres")
		}
	default:
		return fmt.Errorf("config: GEOCODER must be %q or %q, got %q", GeocoderGoogle, GeocoderPostgres, c.Geocoder)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: REQUEST_TIMEOUT must be positive")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return errors.New("config: rate limit values cannot be negative")
	}
	return nil
}
