// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Sends the configured browser headers and keeps provider cookies between requests

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"

	"snapfind-api/core/interfaces"
)

const (
	// DefaultUserAgent mimics a desktop browser; the provider serves reduced markup otherwise
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	// DefaultAcceptLanguage matches the provider's primary locale
	DefaultAcceptLanguage = "ru-RU,ru;q=0.9,en;q=0.8"

	// DefaultMaxRetries is the number of GET attempts on 5xx or transport errors
	DefaultMaxRetries = 3
)

// Options configures outbound requests
type Options struct {
	Timeout        time.Duration
	UserAgent      string
	AcceptLanguage string
	MaxRetries     int
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client  *http.Client
	options Options
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout and default headers
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return NewStandardHTTPClientWithOptions(Options{Timeout: timeout})
}

// NewStandardHTTPClientWithOptions creates a client with explicit headers and retry count
func NewStandardHTTPClientWithOptions(options Options) *StandardHTTPClient {
	if options.UserAgent == "" {
		options.UserAgent = DefaultUserAgent
	}
	if options.AcceptLanguage == "" {
		options.AcceptLanguage = DefaultAcceptLanguage
	}
	if options.MaxRetries < 1 {
		options.MaxRetries = DefaultMaxRetries
	}

	// cookiejar.New only fails on a nil PublicSuffixList
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: options.Timeout,
			Jar:     jar,
		},
		options: options,
	}
}

func (c *StandardHTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.options.UserAgent)
	req.Header.Set("Accept-Language", c.options.AcceptLanguage)
}

// Get performs an HTTP GET request, retrying transport errors and 5xx responses
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.options.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		if resp.StatusCode < 500 || attempt == c.options.MaxRetries-1 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return newResponse(resp), nil
}

// Post performs a single HTTP POST request; the body cannot be replayed so there are no retries
func (c *StandardHTTPClient) Post(ctx context.Context, url, contentType string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	return newResponse(resp), nil
}

func newResponse(resp *http.Response) *httpResponse {
	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
