// ABOUTME: Error helpers exposed by the Snapfind library
// ABOUTME: Lets callers tell expired sessions and bad input apart

package snapfind

import (
	"errors"

	coreerrors "snapfind-api/core/errors"
)

var (
	// ErrMissingCache is returned when the client has no session cache
	ErrMissingCache = errors.New("snapfind: cache is required")

	// ErrMissingHTTPClient is returned when the client has no HTTP client
	ErrMissingHTTPClient = errors.New("snapfind: http client is required")
)

// IsSessionExpired reports whether err means the session is gone
func IsSessionExpired(err error) bool {
	return coreerrors.IsSessionNotFound(err)
}

// IsInvalidInput reports whether err was caused by caller input
func IsInvalidInput(err error) bool {
	return coreerrors.IsValidation(err)
}
