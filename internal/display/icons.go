package display

// Icon maps an OpenWeatherMap icon code to a glyph. Unknown codes get a
// generic rainbow rather than an error.
func Icon(code string) string {
	switch code {
	case "01d":
		return "☀️"
	case "01n":
		return "🌙"
	case "02d", "02n":
		return "⛅"
	case "03d", "03n", "04d", "04n":
		return "☁️"
	case "09d", "09n":
		return "🌧️"
	case "10d", "10n":
		return "🌦️"
	case "11d", "11n":
		return "⛈️"
	case "13d", "13n":
		return "❄️"
	case "50d", "50n":
		return "🌫️"
	default:
		return "🌈"
	}
}
