// Package apperr holds the error kinds shared across layers.
//
// Lower layers wrap these sentinels with %w so that the HTTP layer can map
// them to status codes with errors.Is:
//   - ErrInvalidInput -> 400 Bad Request
//   - ErrNotFound     -> 404 Not Found
//   - ErrUpstream     -> 500 Internal Server Error (details logged, never returned)
package apperr

import "errors"

var (
	// ErrInvalidInput is returned when a path/query parameter or a computation input is not acceptable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a single-entity lookup matched no rows.
	ErrNotFound = errors.New("not found")

	// ErrUpstream is returned when the datastore is unreachable or a query failed.
	ErrUpstream = errors.New("upstream failure")
)
