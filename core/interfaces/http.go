package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests to the search provider.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations. Implementations attach the configured
// outbound headers (User-Agent, Accept-Language) to every request.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Returns a Response interface or an error if no response was received.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs an HTTP POST request with the given content type and body.
	Post(ctx context.Context, url string, contentType string, body io.Reader) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
