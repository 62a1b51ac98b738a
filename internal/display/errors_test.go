package display

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/i474232898/weather-cli/internal/weather"
)

func TestErrorHints(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    []string
		notWant []string
	}{
		{
			name:    "missing key",
			err:     fmt.Errorf("%w: no API key found", weather.ErrConfiguration),
			want:    []string{"no API key found", "export WEATHER_API_KEY", "https://openweathermap.org/api"},
			notWant: []string{"city name is correct"},
		},
		{
			name: "bad key",
			err:  fmt.Errorf("%w: invalid API key", weather.ErrInvalidCredential),
			want: []string{"invalid API key", "export WEATHER_API_KEY"},
		},
		{
			name:    "not found",
			err:     fmt.Errorf("%w: city 'Atlantis' not found", weather.ErrNotFound),
			want:    []string{"Atlantis", "city name is correct"},
			notWant: []string{"WEATHER_API_KEY"},
		},
		{
			name: "rate limited",
			err:  weather.ErrRateLimited,
			want: []string{"Wait a minute"},
		},
		{
			name: "network",
			err:  errors.New("dial tcp: connection refused"),
			want: []string{"connection refused", "internet connection", "city name is correct"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Error(tt.err, false)
			if !strings.HasPrefix(out, "\n❌ ERROR: ") {
				t.Errorf("output does not start with the error banner: %q", out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output unexpectedly contains %q", w)
				}
			}
			if n := strings.Count(out, strings.Repeat("─", 60)); n != 2 {
				t.Errorf("got %d rules, want 2", n)
			}
		})
	}
}

func TestErrorColor(t *testing.T) {
	if out := Error(weather.ErrNotFound, true); !strings.Contains(out, "\x1b[") {
		t.Errorf("colored error has no escape codes")
	}
	if out := Error(weather.ErrNotFound, false); strings.Contains(out, "\x1b[") {
		t.Errorf("plain error has escape codes")
	}
}
