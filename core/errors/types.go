// ABOUTME: Custom error types for the search pipeline and session handling
// ABOUTME: Maps failures onto the user-facing outcomes the presentation layer shows

package errors

import (
	"errors"
	"fmt"
)

// ResourceSession is the resource name used for session lookups.
const ResourceSession = "session"

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// SessionNotFound builds the error returned for unknown or evicted sessions.
func SessionNotFound(id string) error {
	return &NotFoundError{Resource: ResourceSession, ID: id}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from the search provider.
// A zero StatusCode means no response was received.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// MalformedPayloadError describes provider content that could not be decoded.
// It is recovered from locally and only ever logged.
type MalformedPayloadError struct {
	Source string
	Reason string
}

// Error implements the error interface
func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload in %s: %s", e.Source, e.Reason)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsSessionNotFound checks if an error is a NotFoundError for a session
func IsSessionNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr) && notFoundErr.Resource == ResourceSession
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsMalformedPayload checks if an error is a MalformedPayloadError
func IsMalformedPayload(err error) bool {
	var payloadErr *MalformedPayloadError
	return errors.As(err, &payloadErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
