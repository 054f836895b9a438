package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery is returned when search or lookup input fails validation
	ErrInvalidQuery = errors.New("invalid query parameters")

	// ErrMisconfigured is returned when the USDA API key is missing at call time
	ErrMisconfigured = errors.New("USDA API key not configured")

	// ErrUpstreamUnavailable is returned when the USDA API cannot be reached
	ErrUpstreamUnavailable = errors.New("USDA API request failed")

	// ErrFoodNotFound is returned when a food record does not exist in the USDA database
	ErrFoodNotFound = errors.New("food not found in USDA database")
)

// UpstreamStatusError is returned when the USDA API answered with a non-success
// status that is not a lookup 404. The original status code is preserved so the
// transport layer can pass it through unchanged.
type UpstreamStatusError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("USDA API rejected request: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("USDA API rejected request: status %d", e.StatusCode)
}
