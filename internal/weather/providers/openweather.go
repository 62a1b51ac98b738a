package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-cli/internal/weather"
)

// DefaultOpenWeatherURL is the public OpenWeatherMap API root.
const DefaultOpenWeatherURL = "https://api.openweathermap.org"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherProvider creates a provider for the current weather endpoint.
// An empty baseURL selects DefaultOpenWeatherURL.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL, userAgent string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/") + "/data/2.5/weather",
		httpCfg: HTTPClientConfig{
			Client:    client,
			UserAgent: userAgent,
		},
		circuit: newCircuitBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Fetch retrieves the current weather. Temperatures stay in Kelvin (the API
// default) and are converted only when rendering.
func (p *OpenWeatherProvider) Fetch(ctx context.Context, q weather.Query) (*weather.Record, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: openweather api key is not configured", weather.ErrConfiguration)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		if q.Coords != nil {
			values.Set("lat", strconv.FormatFloat(q.Coords.Lat, 'f', -1, 64))
			values.Set("lon", strconv.FormatFloat(q.Coords.Lon, 'f', -1, 64))
		} else {
			values.Set("q", q.City)
		}
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, classify(err, q)
	}
	defer resp.Body.Close()

	var rec weather.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrMalformedResponse, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// classify maps upstream statuses onto the weather error taxonomy.
func classify(err error, q weather.Query) error {
	var se *StatusError
	if !errors.As(err, &se) {
		return err
	}
	switch se.Status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: please check your OpenWeatherMap API key", weather.ErrInvalidCredential)
	case http.StatusNotFound:
		if q.Coords != nil {
			return fmt.Errorf("%w: no weather data for coordinates %s", weather.ErrNotFound, q)
		}
		return fmt.Errorf("%w: city '%s' not found, please check the spelling", weather.ErrNotFound, q.City)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: please try again later", weather.ErrRateLimited)
	default:
		return fmt.Errorf("%w: %v", weather.ErrRequest, se)
	}
}
