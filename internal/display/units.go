// Package display turns a weather.Record into terminal text or an HTML page.
// Everything here is a pure function of its inputs; nothing is printed.
package display

import (
	"math"
	"strconv"

	"github.com/i474232898/weather-cli/internal/weather"
)

const absoluteZeroC = 273.15

// Celsius converts Kelvin to degrees Celsius.
func Celsius(kelvin float64) float64 {
	return kelvin - absoluteZeroC
}

// Fahrenheit converts Kelvin to degrees Fahrenheit.
func Fahrenheit(kelvin float64) float64 {
	return Celsius(kelvin)*9/5 + 32
}

// Convert returns kelvin expressed in unit.
func Convert(kelvin float64, unit weather.Unit) float64 {
	switch unit {
	case weather.Fahrenheit:
		return Fahrenheit(kelvin)
	case weather.Kelvin:
		return kelvin
	default:
		return Celsius(kelvin)
	}
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0 // drop the sign of -0
	}
	return r
}

// Fixed1 formats v with exactly one decimal, rounding half away from zero.
func Fixed1(v float64) string {
	return strconv.FormatFloat(Round1(v), 'f', 1, 64)
}

// Temperature formats a Kelvin reading in unit, e.g. "20.0°C" or "293.1K".
func Temperature(kelvin float64, unit weather.Unit) string {
	return Fixed1(Convert(kelvin, unit)) + unit.Symbol()
}
