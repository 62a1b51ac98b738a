package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	ruleWidth    = 80
	sectionWidth = 40
	columnWidth  = 35

	// boxWidth is the number of cells between the corners of a Detailed box.
	boxWidth = 60
)

const poweredBy = "Powered by OpenWeatherMap API"

// cellWidth is the terminal width of s. go-runewidth counts a text-default
// symbol followed by VS16 (U+FE0F) as one cell; terminals draw it as emoji
// presentation, two cells wide.
func cellWidth(s string) int {
	w := runewidth.StringWidth(s)
	var prev rune
	for _, r := range s {
		if r == '\uFE0F' && prev != 0 && runewidth.RuneWidth(prev) == 1 {
			w++
		}
		prev = r
	}
	return w
}

// fillRight pads s with spaces to width cells.
func fillRight(s string, width int) string {
	if pad := width - cellWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func (v *view) feelingText() string {
	return v.st.paint(v.feeling.Glyph, v.feeling.Color) + " " + v.feeling.Label
}

func (v *view) gaugeBar() string {
	return "[" +
		v.st.paint(strings.Repeat("█", v.gauge.Filled), v.band.Attribute()) +
		v.st.paint(strings.Repeat("░", v.gauge.Empty), color.Faint) +
		"]"
}

func (v *view) windText() string {
	return v.windSpeed + " " + v.windDir
}

// writeDefault is the multi-section layout.
func (v *view) writeDefault(b *strings.Builder) {
	rule := v.st.paint(strings.Repeat("=", ruleWidth), color.FgCyan)
	thin := v.st.paint(strings.Repeat("─", sectionWidth), color.Faint)

	fmt.Fprintln(b, rule)
	fmt.Fprintln(b, v.st.paint("🌤️  WEATHER REPORT", color.FgCyan, color.Bold))
	fmt.Fprintln(b, rule)
	fmt.Fprintln(b)

	fmt.Fprintln(b, v.st.paint("📍 LOCATION", color.Bold))
	fmt.Fprintln(b, thin)
	fmt.Fprintf(b, "  🏙️ %s\n", v.st.paint(v.location, color.FgGreen, color.Bold))
	fmt.Fprintf(b, "  🗺️ Coordinates: %s\n", v.coords)
	fmt.Fprintf(b, "  🕐 Timezone: %s\n", v.timezone)
	fmt.Fprintln(b)

	fmt.Fprintln(b, v.st.paint("🌡️  CURRENT WEATHER", color.Bold))
	fmt.Fprintln(b, thin)
	fmt.Fprintf(b, "  %s %s\n", v.icon, v.st.paint(strings.ToUpper(v.cond.Description), color.Bold))
	fmt.Fprintf(b, "  🌡️ Temperature: %s\n", v.st.paint(v.temp, v.band.Attribute(), color.Bold))
	fmt.Fprintf(b, "  🤚 Feels like: %s\n", v.feelsLike)
	fmt.Fprintf(b, "  💭 %s\n", v.feelingText())
	fmt.Fprintf(b, "  📊 Daily range: %s - %s\n", v.tempMin, v.tempMax)
	fmt.Fprintf(b, "  📈 %s\n", v.gaugeBar())
	fmt.Fprintln(b)

	fmt.Fprintln(b, v.st.paint("📊 DETAILED INFORMATION", color.Bold))
	fmt.Fprintln(b, thin)
	left := []string{
		"💧 Humidity: " + v.humidity,
		"🎈 Pressure: " + v.pressure,
		"💨 Wind: " + v.windText(),
		"☁️ Clouds: " + v.cloudiness,
	}
	right := []string{
		"👁️ Visibility: " + v.visibility,
		"🌅 Sunrise: " + v.sunrise,
		"🌇 Sunset: " + v.sunset,
		"🌙 Moon: " + MoonPhase(),
	}
	for i := range left {
		fmt.Fprintf(b, "  %s  %s\n", fillRight(left[i], columnWidth), right[i])
	}
	fmt.Fprintln(b)

	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "%s Last updated: %s\n", v.st.paint("🔄", color.Faint), v.st.paint(v.updated, color.Faint))
	fmt.Fprintf(b, "%s %s\n", v.st.paint("⚡", color.Faint), poweredBy)
	fmt.Fprintln(b, rule)
}

// writeCompact is a small box with the essentials.
func (v *view) writeCompact(b *strings.Builder) {
	fmt.Fprintf(b, "┌─ 🌤️ %s ─┐\n", v.st.paint("WEATHER", color.FgCyan, color.Bold))
	fmt.Fprintf(b, "│ %s %s %s %s\n",
		v.icon,
		v.st.paint(v.cond.Description, color.Bold),
		v.st.paint(v.temp, color.FgYellow, color.Bold),
		v.st.paint("(feels "+v.feelsLike+")", color.Faint),
	)
	fmt.Fprintln(b, "│")
	fmt.Fprintf(b, "│ 📍 %s | 💧 %s | 💨 %s\n", v.st.paint(v.rec.Name, color.Bold), v.humidity, v.windText())
	fmt.Fprintf(b, "│ 🌅 %s | 🌇 %s\n", v.sunrise, v.sunset)
	fmt.Fprintln(b, "└"+strings.Repeat("─", 48)+"┘")
}

// writeMinimal is a single line.
func (v *view) writeMinimal(b *strings.Builder) {
	fmt.Fprintf(b, "%s %s %s in %s | %s\n",
		v.icon,
		v.cond.Description,
		v.st.paint(v.temp, color.Bold),
		v.st.paint(v.rec.Name, color.FgCyan, color.Bold),
		v.feelingText(),
	)
}

// box writes framed sections for the Detailed template.
type box struct {
	b    *strings.Builder
	st   styles
	attr color.Attribute
}

func (x box) top(title string) {
	head := "─ " + title + " "
	fill := boxWidth - cellWidth(head)
	if fill < 0 {
		fill = 0
	}
	fmt.Fprintln(x.b, x.st.paint("┌"+head+strings.Repeat("─", fill)+"┐", x.attr))
}

// row pads by the width of the unstyled text so escape codes do not skew the frame.
func (x box) row(label, value string, attrs ...color.Attribute) {
	plain := " " + label + ": " + value
	pad := boxWidth - cellWidth(plain)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(x.b, "│ %s: %s%s│\n", label, x.st.paint(value, attrs...), strings.Repeat(" ", pad))
}

func (x box) bottom() {
	fmt.Fprintln(x.b, x.st.paint("└"+strings.Repeat("─", boxWidth)+"┘", x.attr))
}

func (v *view) banner(b *strings.Builder, lines ...string) {
	edge := strings.Repeat("═", boxWidth)
	fmt.Fprintln(b, v.st.paint("╔"+edge+"╗", color.FgHiCyan))
	for _, line := range lines {
		pad := boxWidth - cellWidth(line)
		if pad < 0 {
			pad = 0
		}
		left := pad / 2
		fmt.Fprintln(b, v.st.paint("║"+strings.Repeat(" ", left)+line+strings.Repeat(" ", pad-left)+"║", color.FgHiCyan))
	}
	fmt.Fprintln(b, v.st.paint("╚"+edge+"╝", color.FgHiCyan))
}

// writeDetailed is the Default content plus gust, country and sea/ground
// pressure, laid out in boxes.
func (v *view) writeDetailed(b *strings.Builder) {
	rec := v.rec
	v.banner(b, "🌤️  ADVANCED WEATHER INFORMATION 🌤️")
	fmt.Fprintln(b)

	country := rec.Sys.Country
	if country == "" {
		country = "N/A"
	}
	loc := box{b: b, st: v.st, attr: color.FgCyan}
	loc.top("📍 LOCATION")
	loc.row("City", rec.Name, color.FgGreen, color.Bold)
	loc.row("Country", country, color.Bold)
	loc.row("Coordinates", v.coords)
	loc.row("Timezone", v.timezone)
	loc.bottom()
	fmt.Fprintln(b)

	cur := box{b: b, st: v.st, attr: color.FgYellow}
	cur.top("🌡️  CURRENT CONDITIONS")
	cur.row("Condition", v.icon+" "+strings.ToUpper(v.cond.Description), color.Bold)
	cur.row("Temperature", v.temp, v.band.Attribute(), color.Bold)
	cur.row("Feels Like", v.feelsLike)
	cur.row("Daily Range", v.tempMin+" - "+v.tempMax)
	cur.row("Sensation", v.feeling.String(), v.feeling.Color)
	cur.row("Gauge", "["+strings.Repeat("█", v.gauge.Filled)+strings.Repeat("░", v.gauge.Empty)+"]", v.band.Attribute())
	cur.bottom()
	fmt.Fprintln(b)

	atm := box{b: b, st: v.st, attr: color.FgCyan}
	atm.top("💨 ATMOSPHERIC CONDITIONS")
	atm.row("Humidity", v.humidity, color.FgBlue, color.Bold)
	atm.row("Pressure", v.pressure)
	if rec.Main.SeaLevel != nil {
		atm.row("Sea Level", Pressure(*rec.Main.SeaLevel))
	}
	if rec.Main.GroundLevel != nil {
		atm.row("Ground Level", Pressure(*rec.Main.GroundLevel))
	}
	atm.row("Wind Speed", v.windSpeed, color.Bold)
	atm.row("Wind Direction", fmt.Sprintf("%s (%d°)", v.windDir, rec.Wind.Deg), color.Bold)
	if v.gust != "" {
		atm.row("Wind Gust", v.gust)
	}
	atm.row("Cloudiness", v.cloudiness, color.Bold)
	atm.row("Cloud Cover", ProgressBar(rec.Clouds.All, 100, 20), color.FgHiBlue)
	atm.row("Visibility", v.visibility)
	atm.bottom()
	fmt.Fprintln(b)

	sun := box{b: b, st: v.st, attr: color.FgHiYellow}
	sun.top("☀️  SUN & MOON")
	sun.row("Sunrise", v.sunrise, color.Bold)
	sun.row("Sunset", v.sunset, color.Bold)
	sun.row("Moon Phase", MoonPhase())
	sun.bottom()
	fmt.Fprintln(b)

	v.banner(b,
		"🔄 Last updated: "+v.updated,
		"⚡ "+poweredBy,
	)
}
