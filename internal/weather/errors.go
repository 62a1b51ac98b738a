package weather

import "errors"

var (
	// ErrConfiguration is returned when the API credential is missing or invalid locally.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidCredential is returned when the provider rejects the API key.
	ErrInvalidCredential = errors.New("invalid API key")

	// ErrNotFound is returned when the requested location is unknown.
	ErrNotFound = errors.New("location not found")

	ErrRateLimited = errors.New("API rate limit exceeded")

	// ErrRequest covers transport failures and unexpected HTTP statuses.
	ErrRequest = errors.New("weather request failed")

	// ErrMalformedResponse is returned when the payload cannot be decoded or
	// lacks a location name or weather conditions.
	ErrMalformedResponse = errors.New("invalid response from API")

	// ErrPrecondition is returned by renderers given a record without conditions.
	ErrPrecondition = errors.New("precondition failed")

	ErrInvalidUnit = errors.New("invalid temperature unit")
)
