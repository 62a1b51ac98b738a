package weather

import (
	"fmt"
	"strings"
)

// Unit is a temperature display unit.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
	Kelvin
)

// UnitError is returned by ParseUnit for an unrecognized token.
type UnitError struct {
	Token string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("unknown temperature unit: %s", e.Token)
}

func (e *UnitError) Unwrap() error { return ErrInvalidUnit }

// ParseUnit accepts c/celsius, f/fahrenheit and k/kelvin in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "k", "kelvin":
		return Kelvin, nil
	default:
		return Celsius, &UnitError{Token: s}
	}
}

// Symbol is the suffix printed after a converted value.
func (u Unit) Symbol() string {
	switch u {
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "°C"
	}
}

func (u Unit) String() string {
	switch u {
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	default:
		return "celsius"
	}
}
