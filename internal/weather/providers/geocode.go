package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-cli/internal/weather"
)

// geocoder keeps its key in a package variable; serialize access to it.
var geocoderMu sync.Mutex

// GeocoderLocator resolves city names to coordinates with the Google
// Geocoding API.
type GeocoderLocator struct {
	apiKey string
	lookup func(geocoder.Address) (geocoder.Location, error)
}

func NewGeocoderLocator(apiKey string) *GeocoderLocator {
	return &GeocoderLocator{
		apiKey: apiKey,
		lookup: geocoder.Geocoding,
	}
}

// Locate implements weather.Locator.
func (g *GeocoderLocator) Locate(ctx context.Context, city string) (weather.Coord, error) {
	if err := ctx.Err(); err != nil {
		return weather.Coord{}, err
	}

	geocoderMu.Lock()
	geocoder.ApiKey = g.apiKey
	loc, err := g.lookup(geocoder.Address{City: city})
	geocoderMu.Unlock()

	if err != nil {
		return weather.Coord{}, fmt.Errorf("%w: cannot geocode '%s': %v", weather.ErrNotFound, city, err)
	}
	return weather.Coord{Lat: loc.Latitude, Lon: loc.Longitude}, nil
}
