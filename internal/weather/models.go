package weather

import (
	"fmt"
	"strings"
)

// Condition represents a normalized high-level weather family.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// FamilyOf maps an OpenWeatherMap icon code (e.g. "10n") to its family.
func FamilyOf(icon string) Condition {
	code := strings.TrimRight(icon, "dn")
	switch code {
	case "01":
		return ConditionClear
	case "02", "03", "04":
		return ConditionCloudy
	case "09", "10":
		return ConditionRain
	case "11":
		return ConditionStorm
	case "13":
		return ConditionSnow
	case "50":
		return ConditionMist
	default:
		return ConditionUnknown
	}
}

// Coord is a geographic position in decimal degrees.
type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// WeatherCondition is one entry of the upstream "weather" array.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainData holds temperatures (Kelvin) and atmospheric readings.
type MainData struct {
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Pressure    int     `json:"pressure"`
	Humidity    int     `json:"humidity"`
	SeaLevel    *int    `json:"sea_level,omitempty"`
	GroundLevel *int    `json:"grnd_level,omitempty"`
}

type Wind struct {
	Speed float64  `json:"speed"` // m/s
	Deg   int      `json:"deg"`
	Gust  *float64 `json:"gust,omitempty"`
}

type Clouds struct {
	All int `json:"all"`
}

type Sys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// Record is a snapshot of current weather for one location, as returned by
// the OpenWeatherMap current weather endpoint. It is not modified after decoding.
type Record struct {
	Coord      Coord              `json:"coord"`
	Conditions []WeatherCondition `json:"weather"`
	Main       MainData           `json:"main"`
	Wind       Wind               `json:"wind"`
	Clouds     Clouds             `json:"clouds"`
	Sys        Sys                `json:"sys"`
	Name       string             `json:"name"`
	Visibility *int               `json:"visibility,omitempty"`
	Timezone   int                `json:"timezone"` // offset from UTC in seconds
}

// Validate reports whether the record is usable for rendering.
func (r *Record) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: empty payload", ErrMalformedResponse)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: missing location name", ErrMalformedResponse)
	}
	if len(r.Conditions) == 0 {
		return fmt.Errorf("%w: missing weather conditions", ErrMalformedResponse)
	}
	return nil
}

// Primary returns the authoritative (first) weather condition.
func (r *Record) Primary() (WeatherCondition, error) {
	if r == nil || len(r.Conditions) == 0 {
		return WeatherCondition{}, fmt.Errorf("%w: record has no weather conditions", ErrPrecondition)
	}
	return r.Conditions[0], nil
}

// Location returns "Name, CC" or just the name when the country is unknown.
func (r *Record) Location() string {
	if r.Sys.Country == "" {
		return r.Name
	}
	return r.Name + ", " + r.Sys.Country
}
