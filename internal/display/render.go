package display

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/i474232898/weather-cli/internal/weather"
)

// Template selects one of the terminal layouts.
type Template int

const (
	Default Template = iota
	Compact
	Detailed
	Minimal
)

// ErrUnknownTemplate is returned for a Template value outside the enum or
// an unrecognized template name.
var ErrUnknownTemplate = errors.New("unknown display template")

// TemplateError reports the offending template token.
type TemplateError struct {
	Token string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("unknown display template: %s", e.Token)
}

func (e *TemplateError) Unwrap() error { return ErrUnknownTemplate }

// ParseTemplate accepts default, compact, detailed and minimal in any case.
func ParseTemplate(s string) (Template, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default":
		return Default, nil
	case "compact":
		return Compact, nil
	case "detailed":
		return Detailed, nil
	case "minimal":
		return Minimal, nil
	default:
		return Default, &TemplateError{Token: s}
	}
}

func (t Template) String() string {
	switch t {
	case Default:
		return "default"
	case Compact:
		return "compact"
	case Detailed:
		return "detailed"
	case Minimal:
		return "minimal"
	default:
		return fmt.Sprintf("template(%d)", int(t))
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the source of the "last updated" timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithColor toggles ANSI styling of terminal output. HTML is unaffected.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
	}
}

// Renderer produces presentations of a weather.Record. It holds no state
// besides its options and is safe for concurrent use.
type Renderer struct {
	now   func() time.Time
	color bool
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		now:   time.Now,
		color: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays out rec with the given template. It fails with
// weather.ErrPrecondition when rec has no weather conditions.
func (r *Renderer) Render(rec *weather.Record, unit weather.Unit, tmpl Template) (string, error) {
	v, err := r.newView(rec, unit)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch tmpl {
	case Default:
		v.writeDefault(&b)
	case Compact:
		v.writeCompact(&b)
	case Detailed:
		v.writeDetailed(&b)
	case Minimal:
		v.writeMinimal(&b)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, tmpl)
	}
	return b.String(), nil
}

// RenderHTML produces a complete HTML document for rec.
func (r *Renderer) RenderHTML(rec *weather.Record, unit weather.Unit) (string, error) {
	v, err := r.newView(rec, unit)
	if err != nil {
		return "", err
	}
	return v.html()
}

var defaultRenderer = NewRenderer()

// Render uses a renderer with the wall clock and colors enabled.
func Render(rec *weather.Record, unit weather.Unit, tmpl Template) (string, error) {
	return defaultRenderer.Render(rec, unit, tmpl)
}

// RenderHTML uses a renderer with the wall clock.
func RenderHTML(rec *weather.Record, unit weather.Unit) (string, error) {
	return defaultRenderer.RenderHTML(rec, unit)
}

// styles applies terminal colors, or nothing when disabled.
type styles struct {
	enabled bool
}

func (s styles) paint(text string, attrs ...color.Attribute) string {
	if text == "" || len(attrs) == 0 {
		return text
	}
	c := color.New(attrs...)
	if s.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// view holds every derived value a template may need, computed once from
// the shared formatters so layouts cannot drift apart.
type view struct {
	rec  *weather.Record
	cond weather.WeatherCondition
	st   styles

	icon       string
	location   string
	coords     string
	timezone   string
	temp       string
	feelsLike  string
	tempMin    string
	tempMax    string
	celsius    float64
	band       Band
	feeling    Feeling
	gauge      Gauge
	humidity   string
	pressure   string
	windSpeed  string
	windDir    string
	gust       string
	cloudiness string
	visibility string
	sunrise    string
	sunset     string
	updated    string
}

func (r *Renderer) newView(rec *weather.Record, unit weather.Unit) (*view, error) {
	cond, err := rec.Primary()
	if err != nil {
		return nil, err
	}

	c := Celsius(rec.Main.Temp)
	v := &view{
		rec:        rec,
		cond:       cond,
		st:         styles{enabled: r.color},
		icon:       Icon(cond.Icon),
		location:   rec.Location(),
		coords:     Coordinates(rec.Coord.Lat, rec.Coord.Lon),
		timezone:   Timezone(rec.Timezone),
		temp:       Temperature(rec.Main.Temp, unit),
		feelsLike:  Temperature(rec.Main.FeelsLike, unit),
		tempMin:    Temperature(rec.Main.TempMin, unit),
		tempMax:    Temperature(rec.Main.TempMax, unit),
		celsius:    c,
		band:       BandFor(c),
		feeling:    FeelingFor(c),
		gauge:      TemperatureGauge(c, TerminalGaugeWidth),
		humidity:   Humidity(rec.Main.Humidity),
		pressure:   Pressure(rec.Main.Pressure),
		windSpeed:  Speed(rec.Wind.Speed),
		windDir:    WindDirection(float64(rec.Wind.Deg)),
		cloudiness: Cloudiness(rec.Clouds.All),
		visibility: Visibility(rec.Visibility),
		sunrise:    SunTime(rec.Sys.Sunrise, rec.Timezone),
		sunset:     SunTime(rec.Sys.Sunset, rec.Timezone),
		updated:    Timestamp(r.now()),
	}
	if rec.Wind.Gust != nil {
		v.gust = Speed(*rec.Wind.Gust)
	}
	return v, nil
}
