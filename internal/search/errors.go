package search

import (
	"fmt"

	"placefinder-api/internal/models"
)

// ProviderError is returned when the places provider answers a query with a
// non-success response.
type ProviderError struct {
	Location models.Coordinate
	Category string
	// Page is the 1-based page whose request failed.
	Page int
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("search: provider query %q at %s failed on page %d: %v", e.Category, e.Location, e.Page, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// DegenerateGridError is returned when the longitude offset of a grid cannot be
// computed at the requested latitude.
type DegenerateGridError struct {
	Latitude float64
}

func (e *DegenerateGridError) Error() string {
	return fmt.Sprintf("search: cannot build grid at latitude %g: longitude scaling is undefined", e.Latitude)
}
