package display

import (
	"fmt"
	"math"
	"strings"
)

const (
	gaugeMinC = -20.0
	gaugeMaxC = 40.0

	// TerminalGaugeWidth is the number of cells in the terminal temperature bar.
	TerminalGaugeWidth = 20
)

// Gauge is a bar split into filled and empty cells.
type Gauge struct {
	Filled int
	Empty  int
}

// Width is always Filled+Empty.
func (g Gauge) Width() int {
	return g.Filled + g.Empty
}

// TemperatureGauge maps a Celsius value clamped to [-20, 40] onto width cells.
func TemperatureGauge(celsius float64, width int) Gauge {
	if width <= 0 {
		return Gauge{}
	}
	norm := (celsius - gaugeMinC) / (gaugeMaxC - gaugeMinC)
	if math.IsNaN(norm) || norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	filled := int(math.Floor(norm * float64(width)))
	if filled > width {
		filled = width
	}
	return Gauge{Filled: filled, Empty: width - filled}
}

// GaugePercent is the temperature gauge expressed as a 0-100 percentage.
func GaugePercent(celsius float64) int {
	return TemperatureGauge(celsius, 100).Filled
}

// ProgressBar draws "[████░░░░] 40%" for value out of total.
func ProgressBar(value, total, width int) string {
	pct := 0.0
	if total > 0 {
		pct = math.Min(math.Max(float64(value)/float64(total), 0), 1)
	}
	filled := int(math.Round(pct * float64(width)))
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", width-filled),
		int(math.Round(pct*100)),
	)
}
