package weather

import (
	"context"
	"fmt"
)

// Service fetches a single current-weather record for a query.
type Service struct {
	provider Provider
	locator  Locator
}

// NewService creates a new Service. locator may be nil, in which case city
// names are passed to the provider unchanged.
func NewService(provider Provider, locator Locator) *Service {
	return &Service{
		provider: provider,
		locator:  locator,
	}
}

// Current returns the validated record for q. There is exactly one provider
// call per invocation; errors are returned as-is for the caller to report.
func (s *Service) Current(ctx context.Context, q Query) (*Record, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, fmt.Errorf("%w: no weather provider configured", ErrConfiguration)
	}

	if q.Coords == nil && s.locator != nil {
		coord, err := s.locator.Locate(ctx, q.City)
		if err != nil {
			return nil, err
		}
		q = Query{City: q.City, Coords: &coord}
	}

	rec, err := s.provider.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}
