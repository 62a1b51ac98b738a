package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-cli/internal/common"
	"github.com/i474232898/weather-cli/internal/weather"
)

type AppConfig struct {
	// APIKey is the OpenWeatherMap credential.
	APIKey  string
	BaseURL string

	HTTPTimeout time.Duration

	// GeocoderAPIKey enables resolving city names through Google Geocoding.
	GeocoderAPIKey string

	// NoColor mirrors the NO_COLOR convention.
	NoColor bool
}

// Load reads configuration from .env and the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("INFO: could not load .env file: %v", err)
	}
	cfg := &AppConfig{}

	cfg.APIKey = common.FirstNonEmpty(os.Getenv("WEATHER_API_KEY"), os.Getenv("OPENWEATHER_API_KEY"))
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: no API key found, please set WEATHER_API_KEY or OPENWEATHER_API_KEY", weather.ErrConfiguration)
	}
	if common.IsPlaceholderKey(cfg.APIKey) {
		return nil, fmt.Errorf("%w: invalid API key, please set a valid OpenWeatherMap API key", weather.ErrConfiguration)
	}

	cfg.BaseURL = os.Getenv("OPENWEATHER_BASE_URL")

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid HTTP_TIMEOUT: %v", weather.ErrConfiguration, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: HTTP_TIMEOUT must be positive", weather.ErrConfiguration)
	}
	cfg.HTTPTimeout = timeout

	cfg.GeocoderAPIKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")
	_, cfg.NoColor = os.LookupEnv("NO_COLOR")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
