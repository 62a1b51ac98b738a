package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/i474232898/weather-cli/internal/weather"
)

// Error formats err as the boxed terminal error block, with hints chosen by
// the kind of failure.
func Error(err error, colored bool) string {
	st := styles{enabled: colored}
	rule := st.paint(strings.Repeat("─", 60), color.FgRed)

	var hints []string
	switch {
	case errors.Is(err, weather.ErrConfiguration), errors.Is(err, weather.ErrInvalidCredential):
		hints = []string{
			"💡 Set your OpenWeatherMap API key: export WEATHER_API_KEY=\"your_api_key_here\"",
			"🔗 Get a free API key at: https://openweathermap.org/api",
		}
	case errors.Is(err, weather.ErrNotFound):
		hints = []string{"🔍 Make sure the city name is correct"}
	case errors.Is(err, weather.ErrRateLimited):
		hints = []string{"⏳ Wait a minute before trying again"}
	default:
		hints = []string{
			"💡 Check your internet connection and API key",
			"🔍 Make sure the city name is correct",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s %v\n", st.paint("❌ ERROR:", color.FgRed, color.Bold), err)
	fmt.Fprintln(&b, rule)
	for _, h := range hints {
		fmt.Fprintln(&b, st.paint(h, color.FgYellow))
	}
	fmt.Fprintln(&b, rule)
	return b.String()
}
