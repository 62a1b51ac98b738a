package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/browser"

	httpapi "github.com/i474232898/weather-cli/internal/api/http"
	"github.com/i474232898/weather-cli/internal/config"
	"github.com/i474232898/weather-cli/internal/display"
	"github.com/i474232898/weather-cli/internal/weather"
	"github.com/i474232898/weather-cli/internal/weather/providers"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	stdout := colorable.NewColorableStdout()
	stderr := colorable.NewColorableStderr()

	opts, err := config.ParseArgs(args, stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "\n%s %v\n", paint("❌ ERROR:", color.FgRed, useColor(os.Stderr, false)), err)
		fmt.Fprintln(stderr, "Run 'weather --help' for usage.")
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "🌤️  Weather CLI %s\n", version)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(stderr, display.Error(err, useColor(os.Stderr, opts.NoColor)))
		return 1
	}
	colored := useColor(os.Stdout, opts.NoColor || cfg.NoColor)

	// Shared HTTP client for the single outbound provider call.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	provider := providers.NewOpenWeatherProvider(httpClient, cfg.APIKey, cfg.BaseURL, "weather-cli/"+version)

	var locator weather.Locator
	if cfg.GeocoderAPIKey != "" && opts.Coords == nil {
		locator = providers.NewGeocoderLocator(cfg.GeocoderAPIKey)
	}
	service := weather.NewService(provider, locator)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	query := opts.Query()
	fmt.Fprintf(stdout, "%s Fetching weather data for '%s'...\n", paint("⏳", color.FgYellow, colored), query)

	rec, err := service.Current(ctx, query)
	if err != nil {
		fmt.Fprint(stderr, display.Error(err, colored))
		return 1
	}

	renderer := display.NewRenderer(display.WithColor(colored))

	if opts.Web {
		if err := serveWeb(ctx, stdout, renderer, rec, opts); err != nil {
			fmt.Fprint(stderr, display.Error(err, colored))
			return 1
		}
		return 0
	}

	out, err := renderer.Render(rec, opts.Unit, opts.Template)
	if err != nil {
		fmt.Fprint(stderr, display.Error(err, colored))
		return 1
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		clearScreen(stdout)
	}
	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, out)
	fmt.Fprintln(stdout)
	return 0
}

// serveWeb renders the page once and serves it on loopback until interrupted.
func serveWeb(ctx context.Context, stdout io.Writer, renderer *display.Renderer, rec *weather.Record, opts config.Options) error {
	page, err := renderer.RenderHTML(rec, opts.Unit)
	if err != nil {
		return err
	}

	app := httpapi.NewApp(page)
	return httpapi.Serve(ctx, app, httpapi.LoopbackAddr(opts.Port), func(url string) {
		fmt.Fprintf(stdout, "🌐 Starting web server on %s\n", url)
		if opts.NoBrowser {
			fmt.Fprintln(stdout, "Press Ctrl+C to stop.")
			return
		}
		fmt.Fprintln(stdout, "🔗 Opening browser... (Ctrl+C to stop)")
		if err := browser.OpenURL(url); err != nil {
			log.Printf("INFO: could not open browser: %v", err)
		}
	})
}

// useColor enables ANSI styling only for terminals, and never when disabled.
func useColor(f *os.File, disabled bool) bool {
	if disabled {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func paint(s string, attr color.Attribute, enabled bool) string {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}
