package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-cli/internal/weather"
)

// HTTPClientConfig bundles the HTTP client and request settings.
type HTTPClientConfig struct {
	Client    *http.Client
	UserAgent string
}

// StatusError carries a non-2xx response from the upstream API.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned status %d", e.Status)
	}
	return fmt.Sprintf("API returned status %d: %s", e.Status, e.Body)
}

var (
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

const maxErrorBody = 512

func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// doRequest executes a single GET through the circuit breaker. Client-side
// statuses (4xx) are returned as *StatusError without tripping the breaker;
// transport failures and 5xx do count against it. There is no retry.
func doRequest(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}

	req, err := buildRequest()
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	var clientErr *StatusError
	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := cfg.Client.Do(req)
		if execErr != nil {
			return nil, execErr
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		se := &StatusError{Status: resp.StatusCode, Body: string(body)}
		if resp.StatusCode >= 500 {
			return nil, se
		}
		// Not the server's fault; report success to the breaker.
		clientErr = se
		return nil, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w: %v", weather.ErrRequest, errCircuitOpen, err)
		}
		var se *StatusError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, fmt.Errorf("%w: %v", weather.ErrRequest, err)
	}
	if clientErr != nil {
		return nil, clientErr
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type from circuit breaker", weather.ErrRequest)
	}
	return resp, nil
}
