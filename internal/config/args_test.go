package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/i474232898/weather-cli/internal/display"
	"github.com/i474232898/weather-cli/internal/weather"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "defaults",
			args: []string{"Nairobi"},
			want: Options{City: "Nairobi", Unit: weather.Celsius, Template: display.Default, Port: 8080},
		},
		{
			name: "multi-word city with trailing flags",
			args: []string{"New", "York", "--unit", "fahrenheit"},
			want: Options{City: "New York", Unit: weather.Fahrenheit, Template: display.Default, Port: 8080},
		},
		{
			name: "short flags before the city",
			args: []string{"-u", "k", "-t", "compact", "Tokyo"},
			want: Options{City: "Tokyo", Unit: weather.Kelvin, Template: display.Compact, Port: 8080},
		},
		{
			name: "web mode",
			args: []string{"Paris", "-w", "--port", "9090", "--no-browser", "--no-color"},
			want: Options{
				City: "Paris", Unit: weather.Celsius, Template: display.Default,
				Web: true, Port: 9090, NoBrowser: true, NoColor: true,
			},
		},
		{
			name: "coordinates instead of a city",
			args: []string{"--coords", "48.8566,2.3522", "--template", "minimal"},
			want: Options{
				Coords: &weather.Coord{Lat: 48.8566, Lon: 2.3522},
				Unit:   weather.Celsius, Template: display.Minimal, Port: 8080,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("ParseArgs(%q): %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"no city", nil, "no city specified"},
		{"blank city", []string{"  "}, "no city specified"},
		{"port too low", []string{"Paris", "--port", "0"}, "--port must be between 1 and 65535"},
		{"port too high", []string{"Paris", "--port", "70000"}, "--port must be between 1 and 65535"},
		{"bad coordinates", []string{"--coords", "north,east"}, "--coords must be"},
		{"unknown unit", []string{"Paris", "-u", "rankine"}, "unknown temperature unit: rankine"},
		{"unknown template", []string{"Paris", "-t", "fancy"}, "unknown display template: fancy"},
		{"unknown flag", []string{"Paris", "--bogus"}, "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args, io.Discard)
			if !errors.Is(err, ErrUsage) {
				t.Fatalf("ParseArgs(%q) error = %v, want ErrUsage", tt.args, err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err, tt.message)
			}
		})
	}
}

func TestParseArgsKeepsTypedErrors(t *testing.T) {
	_, err := ParseArgs([]string{"Paris", "--unit", "x"}, io.Discard)
	if !errors.Is(err, weather.ErrInvalidUnit) {
		t.Errorf("error = %v, want ErrInvalidUnit in chain", err)
	}
	_, err = ParseArgs([]string{"Paris", "--template", "x"}, io.Discard)
	if !errors.Is(err, display.ErrUnknownTemplate) {
		t.Errorf("error = %v, want ErrUnknownTemplate in chain", err)
	}
}

func TestParseArgsHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := ParseArgs([]string{"--help"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(out.String(), "Usage: weather <city> [options]") {
		t.Errorf("usage not printed: %q", out.String())
	}
}

func TestParseArgsVersion(t *testing.T) {
	opts, err := ParseArgs([]string{"-v"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !opts.Version {
		t.Errorf("Version not set")
	}
}

func TestOptionsQuery(t *testing.T) {
	q := Options{City: "Lagos"}.Query()
	if q.City != "Lagos" || q.Coords != nil {
		t.Errorf("city query = %+v", q)
	}

	q = Options{City: "ignored", Coords: &weather.Coord{Lat: 1, Lon: 2}}.Query()
	if q.Coords == nil || q.Coords.Lat != 1 || q.Coords.Lon != 2 || q.City != "" {
		t.Errorf("coordinate query = %+v", q)
	}
}

func TestParseArgsCoordinates(t *testing.T) {
	tests := []struct {
		in   string
		want *weather.Coord
	}{
		{"48.8566,2.3522", &weather.Coord{Lat: 48.8566, Lon: 2.3522}},
		{"-33.8688, 151.2093", &weather.Coord{Lat: -33.8688, Lon: 151.2093}},
		{"90,-180", &weather.Coord{Lat: 90, Lon: -180}},
		{"91,0", nil},
		{"0,181", nil},
		{"48.8566", nil},
		{"48.8566,", nil},
		{",2.3522", nil},
		{"north,east", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseArgs([]string{"--coords", tt.in}, io.Discard)
			if tt.want == nil {
				if !errors.Is(err, ErrUsage) || !strings.Contains(err.Error(), "--coords must be") {
					t.Fatalf("ParseArgs(--coords %q) error = %v, want a --coords usage error", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs(--coords %q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got.Coords); diff != "" {
				t.Errorf("coords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
