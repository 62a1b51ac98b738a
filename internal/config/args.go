package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-cli/internal/display"
	"github.com/i474232898/weather-cli/internal/weather"
)

// ErrUsage is returned for invalid command-line arguments.
var ErrUsage = errors.New("invalid usage")

var validate = newValidator()

// coordValidator checks the halves of a "lat,lon" pair with the built-in
// latitude and longitude rules.
var coordValidator = validator.New()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("latlong", validLatLong); err != nil {
		panic(err)
	}
	return v
}

// validLatLong accepts "lat,lon" with optional spaces around either number.
func validLatLong(fl validator.FieldLevel) bool {
	lat, lon, ok := strings.Cut(fl.Field().String(), ",")
	if !ok {
		return false
	}
	return coordValidator.Var(strings.TrimSpace(lat), "required,latitude") == nil &&
		coordValidator.Var(strings.TrimSpace(lon), "required,longitude") == nil
}

// Options are the parsed command-line settings.
type Options struct {
	City      string
	Coords    *weather.Coord
	Unit      weather.Unit
	Template  display.Template
	Web       bool
	Port      int
	NoBrowser bool
	NoColor   bool
	Version   bool
}

// Query builds the weather query the options describe.
func (o Options) Query() weather.Query {
	if o.Coords != nil {
		return weather.ByCoords(o.Coords.Lat, o.Coords.Lon)
	}
	return weather.ByCity(o.City)
}

// rawArgs holds flag values before parsing into typed options.
type rawArgs struct {
	City     string `validate:"required_without=Coords"`
	Coords   string `validate:"omitempty,latlong"`
	Unit     string `validate:"required"`
	Template string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
}

// Usage is printed for -h/--help and on argument errors.
const Usage = `Usage: weather <city> [options]

Fetch current weather for any city in the world.
Get your free API key at: https://openweathermap.org/api

Options:
  -u, --unit <UNIT>          Temperature unit: celsius, fahrenheit, kelvin (default celsius)
  -t, --template <TEMPLATE>  Display template: default, compact, detailed, minimal (default default)
  -w, --web                  Show weather in the browser instead of the terminal
      --port <PORT>          Web server port (default 8080)
      --coords <LAT,LON>     Use coordinates instead of a city name
      --no-browser           Do not open the browser in web mode
      --no-color             Disable colored terminal output
  -v, --version              Show version information
  -h, --help                 Show this help message

Examples:
  weather Nairobi
  weather "New York" --unit fahrenheit
  weather Tokyo -u k -t compact
  weather --coords 48.8566,2.3522 --web
`

// ParseArgs parses args (without the program name). Flags may appear before
// or after the city; several positional words are joined with spaces.
// flag.ErrHelp is returned unchanged when help was requested.
func ParseArgs(args []string, output io.Writer) (Options, error) {
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	raw := rawArgs{}
	var opts Options

	fs.StringVar(&raw.Unit, "unit", "celsius", "")
	fs.StringVar(&raw.Unit, "u", "celsius", "")
	fs.StringVar(&raw.Template, "template", "default", "")
	fs.StringVar(&raw.Template, "t", "default", "")
	fs.BoolVar(&opts.Web, "web", false, "")
	fs.BoolVar(&opts.Web, "w", false, "")
	fs.IntVar(&raw.Port, "port", 8080, "")
	fs.StringVar(&raw.Coords, "coords", "", "")
	fs.BoolVar(&opts.NoBrowser, "no-browser", false, "")
	fs.BoolVar(&opts.NoColor, "no-color", false, "")
	fs.BoolVar(&opts.Version, "version", false, "")
	fs.BoolVar(&opts.Version, "v", false, "")

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				fmt.Fprint(output, Usage)
				return Options{}, err
			}
			return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
	raw.City = strings.TrimSpace(strings.Join(positional, " "))

	if opts.Version {
		return opts, nil
	}

	if err := validate.Struct(raw); err != nil {
		return Options{}, describe(err)
	}

	unit, err := weather.ParseUnit(raw.Unit)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	tmpl, err := display.ParseTemplate(raw.Template)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	opts.City = raw.City
	opts.Unit = unit
	opts.Template = tmpl
	opts.Port = raw.Port
	if raw.Coords != "" {
		coord, err := parseCoords(raw.Coords)
		if err != nil {
			return Options{}, err
		}
		opts.Coords = &coord
	}
	return opts, nil
}

// parseCoords splits an already validated "lat,lon" pair.
func parseCoords(s string) (weather.Coord, error) {
	latStr, lonStr, _ := strings.Cut(s, ",")
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return weather.Coord{}, fmt.Errorf("%w: invalid latitude %q", ErrUsage, latStr)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return weather.Coord{}, fmt.Errorf("%w: invalid longitude %q", ErrUsage, lonStr)
	}
	return weather.Coord{Lat: lat, Lon: lon}, nil
}

// describe turns validator errors into one readable message.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "City":
			msgs = append(msgs, "no city specified, use --help for usage information")
		case "Coords":
			msgs = append(msgs, fmt.Sprintf("--coords must be \"lat,lon\", got %q", fe.Value()))
		case "Port":
			msgs = append(msgs, fmt.Sprintf("--port must be between 1 and 65535, got %v", fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("--%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrUsage, strings.Join(msgs, "; "))
}
