package display

import "github.com/fatih/color"

// Band is a temperature color band shared by terminal and HTML output.
type Band int

const (
	BandFreezing Band = iota // below 0°C
	BandCold                 // [0, 10)
	BandCool                 // [10, 20)
	BandMild                 // [20, 30)
	BandWarm                 // [30, 40)
	BandHot                  // 40°C and above
)

// bandCeilings are the exclusive upper bounds of each band but the last.
var bandCeilings = [...]float64{0, 10, 20, 30, 40}

// BandFor classifies a Celsius value. A value equal to a threshold belongs
// to the band above it.
func BandFor(celsius float64) Band {
	for i, ceil := range bandCeilings {
		if celsius < ceil {
			return Band(i)
		}
	}
	return BandHot
}

// CSS is the hex color used for the band in the HTML page.
func (b Band) CSS() string {
	switch b {
	case BandFreezing:
		return "#3498db"
	case BandCold:
		return "#2980b9"
	case BandCool:
		return "#27ae60"
	case BandMild:
		return "#f39c12"
	case BandWarm:
		return "#e67e22"
	default:
		return "#e74c3c"
	}
}

// Attribute is the terminal foreground color for the band.
func (b Band) Attribute() color.Attribute {
	switch b {
	case BandFreezing:
		return color.FgHiBlue
	case BandCold:
		return color.FgBlue
	case BandCool:
		return color.FgHiGreen
	case BandMild:
		return color.FgYellow
	case BandWarm:
		return color.FgHiYellow
	default:
		return color.FgRed
	}
}

// Feeling is the subjective description of a temperature.
type Feeling struct {
	Label string
	Glyph string
	Color color.Attribute
}

func (f Feeling) String() string {
	return f.Glyph + " " + f.Label
}

var feelings = [...]struct {
	below float64
	Feeling
}{
	{-10, Feeling{"Freezing", "🥶", color.FgHiCyan}},
	{0, Feeling{"Very Cold", "🧊", color.FgHiBlue}},
	{10, Feeling{"Cold", "🌬️", color.FgBlue}},
	{20, Feeling{"Cool", "😎", color.FgGreen}},
	{30, Feeling{"Warm", "🌤️", color.FgYellow}},
	{40, Feeling{"Hot", "🔥", color.FgHiYellow}},
}

var extremelyHot = Feeling{"Extremely Hot", "🥵", color.FgRed}

// FeelingFor classifies a Celsius value with the same tie-break as BandFor.
func FeelingFor(celsius float64) Feeling {
	for _, f := range feelings {
		if celsius < f.below {
			return f.Feeling
		}
	}
	return extremelyHot
}
