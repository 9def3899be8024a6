package directions

import (
	"errors"
	"fmt"
)

// ErrDataAccess is returned when the route could not be read from the
// Directions API: transport failures, bad status codes, malformed payloads or
// a response without route.
var ErrDataAccess = errors.New("directions data access")

// ErrMissingAPIKey is returned when a client is created without key.
var ErrMissingAPIKey = errors.New("directions api key is required")

// APIError reports a non OK status returned by the Directions API, such as
// REQUEST_DENIED or ZERO_RESULTS.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("directions api status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("directions api status %s", e.Status)
}

// Unwrap makes API errors match ErrDataAccess.
func (e *APIError) Unwrap() error { return ErrDataAccess }
