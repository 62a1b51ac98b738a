package weather

import (
	"context"
	"fmt"
	"strings"
)

// Query identifies the place to fetch weather for: either a city name or a
// coordinate pair.
type Query struct {
	City   string
	Coords *Coord
}

// ByCity builds a city query.
func ByCity(city string) Query {
	return Query{City: strings.TrimSpace(city)}
}

// ByCoords builds a coordinate query.
func ByCoords(lat, lon float64) Query {
	return Query{Coords: &Coord{Lat: lat, Lon: lon}}
}

func (q Query) String() string {
	if q.Coords != nil {
		return fmt.Sprintf("%.4f,%.4f", q.Coords.Lat, q.Coords.Lon)
	}
	return q.City
}

func (q Query) validate() error {
	if q.Coords == nil && q.City == "" {
		return fmt.Errorf("%w: a city or coordinates are required", ErrConfiguration)
	}
	return nil
}

// Provider abstracts a current-weather data source (e.g. OpenWeatherMap).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, q Query) (*Record, error)
}

// Locator resolves a free-form city name to coordinates.
type Locator interface {
	Locate(ctx context.Context, city string) (Coord, error)
}
