package display

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var compass = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection returns the 16-point compass label for a bearing in degrees.
// Bearings outside [0, 360) are wrapped first.
func WindDirection(deg float64) string {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		deg = 0
	}
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	idx := int(math.Floor((d+11.25)/22.5)) % 16
	return compass[idx]
}

// Cloudiness buckets a cloud cover percentage.
func Cloudiness(pct int) string {
	switch {
	case pct == 0:
		return "Clear sky"
	case pct >= 1 && pct <= 25:
		return "Mostly clear"
	case pct >= 26 && pct <= 50:
		return "Partly cloudy"
	case pct >= 51 && pct <= 75:
		return "Mostly cloudy"
	case pct >= 76 && pct <= 100:
		return "Overcast"
	default:
		return "Unknown"
	}
}

// Visibility formats a distance in metres, or "N/A" when absent.
func Visibility(meters *int) string {
	if meters == nil {
		return "N/A"
	}
	if *meters >= 1000 {
		return Fixed1(float64(*meters)/1000) + " km"
	}
	return strconv.Itoa(*meters) + " m"
}

func Humidity(pct int) string {
	return strconv.Itoa(pct) + "%"
}

func Pressure(hpa int) string {
	return strconv.Itoa(hpa) + " hPa"
}

// Speed formats a wind speed in metres per second.
func Speed(mps float64) string {
	return Fixed1(mps) + " m/s"
}

// SunTime renders an epoch second as local HH:MM for a fixed UTC offset.
func SunTime(epoch int64, offsetSeconds int) string {
	zone := time.FixedZone("", offsetSeconds)
	return time.Unix(epoch, 0).In(zone).Format("15:04")
}

// Timezone labels a UTC offset: "UTC+2", "UTC-5", "UTC+5:30".
func Timezone(offsetSeconds int) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	hours := offsetSeconds / 3600
	minutes := (offsetSeconds % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}

// Coordinates formats a position with hemisphere letters.
func Coordinates(lat, lon float64) string {
	ns, ew := "N", "E"
	if lat < 0 {
		ns = "S"
	}
	if lon < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.3f°%s, %.3f°%s", math.Abs(lat), ns, math.Abs(lon), ew)
}

// Timestamp is the footer format for the render time.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05") + " UTC"
}

// MoonPhase is a fixed placeholder; records carry no lunar data.
func MoonPhase() string {
	return "🌓"
}
