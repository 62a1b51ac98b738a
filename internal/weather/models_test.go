package weather

import (
	"errors"
	"testing"
)

func TestFamilyOf(t *testing.T) {
	tests := map[string]Condition{
		"01d": ConditionClear,
		"01n": ConditionClear,
		"02d": ConditionCloudy,
		"04n": ConditionCloudy,
		"09d": ConditionRain,
		"10n": ConditionRain,
		"11d": ConditionStorm,
		"13n": ConditionSnow,
		"50d": ConditionMist,
		"77d": ConditionUnknown,
		"":    ConditionUnknown,
	}
	for icon, want := range tests {
		if got := FamilyOf(icon); got != want {
			t.Errorf("FamilyOf(%q) = %q, want %q", icon, got, want)
		}
	}
}

func TestRecordValidate(t *testing.T) {
	valid := Record{
		Name:       "Oslo",
		Conditions: []WeatherCondition{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on a valid record: %v", err)
	}

	noName := valid
	noName.Name = ""
	noConditions := valid
	noConditions.Conditions = nil

	for name, rec := range map[string]*Record{
		"nil":           nil,
		"no name":       &noName,
		"no conditions": &noConditions,
	} {
		if err := rec.Validate(); !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("%s: Validate() = %v, want ErrMalformedResponse", name, err)
		}
	}
}

func TestRecordPrimary(t *testing.T) {
	rec := &Record{
		Name: "Lima",
		Conditions: []WeatherCondition{
			{ID: 500, Description: "light rain", Icon: "10d"},
			{ID: 701, Description: "mist", Icon: "50d"},
		},
	}
	cond, err := rec.Primary()
	if err != nil {
		t.Fatalf("Primary: %v", err)
	}
	if cond.ID != 500 {
		t.Errorf("Primary() picked condition %d, want the first one", cond.ID)
	}

	rec.Conditions = nil
	if _, err := rec.Primary(); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Primary() on empty conditions = %v, want ErrPrecondition", err)
	}
}

func TestRecordLocation(t *testing.T) {
	rec := &Record{Name: "Nairobi", Sys: Sys{Country: "KE"}}
	if got := rec.Location(); got != "Nairobi, KE" {
		t.Errorf("Location() = %q", got)
	}
	rec.Sys.Country = ""
	if got := rec.Location(); got != "Nairobi" {
		t.Errorf("Location() without country = %q", got)
	}
}

func TestParseUnit(t *testing.T) {
	tests := map[string]Unit{
		"c":          Celsius,
		"Celsius":    Celsius,
		"F":          Fahrenheit,
		"fahrenheit": Fahrenheit,
		"k":          Kelvin,
		" KELVIN ":   Kelvin,
	}
	for in, want := range tests {
		got, err := ParseUnit(in)
		if err != nil || got != want {
			t.Errorf("ParseUnit(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	_, err := ParseUnit("rankine")
	var ue *UnitError
	if !errors.As(err, &ue) {
		t.Fatalf("ParseUnit(rankine) error = %v, want *UnitError", err)
	}
	if ue.Token != "rankine" {
		t.Errorf("Token = %q", ue.Token)
	}
	if !errors.Is(err, ErrInvalidUnit) {
		t.Errorf("error does not wrap ErrInvalidUnit")
	}
}

func TestUnitSymbol(t *testing.T) {
	for u, want := range map[Unit]string{Celsius: "°C", Fahrenheit: "°F", Kelvin: "K"} {
		if got := u.Symbol(); got != want {
			t.Errorf("%v.Symbol() = %q, want %q", u, got, want)
		}
	}
}
