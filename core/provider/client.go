// ABOUTME: Reverse image search provider client: image upload and result page fetching
// ABOUTME: Follows continuation cursors up to a fixed cap and never raises past its boundary

package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	coreerrors "snapfind-api/core/errors"
	"snapfind-api/core/interfaces"
)

const (
	// DefaultUploadURL is the provider endpoint that accepts raw image bytes
	DefaultUploadURL = "https://yandex.ru/images-apphost/image-download?cbird=111&images_avatars_size=preview&images_avatars_namespace=images-cbir"

	// DefaultSearchURL is the provider endpoint serving result pages
	DefaultSearchURL = "https://yandex.ru/images/search"

	// DefaultMaxContinuations bounds how many continuation pages are followed
	DefaultMaxContinuations = 30

	// SitesPage is the page selector for "sites containing this image"
	SitesPage = "sites"

	maxBodyBytes = 8 << 20
)

// Config holds provider endpoints and loop bounds
type Config struct {
	UploadURL        string
	SearchURL        string
	MaxContinuations int
}

// DefaultConfig returns the production provider configuration
func DefaultConfig() Config {
	return Config{
		UploadURL:        DefaultUploadURL,
		SearchURL:        DefaultSearchURL,
		MaxContinuations: DefaultMaxContinuations,
	}
}

// Client implements interfaces.ImageSearchProvider over interfaces.HTTPClient
type Client struct {
	deps   interfaces.Dependencies
	config Config
}

// NewClient creates a new provider client
func NewClient(deps interfaces.Dependencies, config Config) *Client {
	if config.UploadURL == "" {
		config.UploadURL = DefaultUploadURL
	}
	if config.SearchURL == "" {
		config.SearchURL = DefaultSearchURL
	}
	if config.MaxContinuations < 0 {
		config.MaxContinuations = 0
	}
	return &Client{
		deps:   deps,
		config: config,
	}
}

func (c *Client) logWarn(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Warn(msg, fields)
	}
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, fields)
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func readBody(resp interfaces.Response) ([]byte, error) {
	body := resp.Body()
	if body == nil {
		return nil, nil
	}
	defer body.Close()
	return io.ReadAll(io.LimitReader(body, maxBodyBytes))
}

// jsonLike reports whether a body should be decoded as a JSON payload
func jsonLike(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "json") {
		return true
	}
	trimmed := strings.TrimSpace(string(body[:min(len(body), 64)]))
	return strings.HasPrefix(trimmed, "{")
}

// stringField renders a loosely typed JSON scalar as a string
func stringField(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func apiError(api string, status int, message string) error {
	return &coreerrors.ExternalAPIError{API: api, StatusCode: status, Message: message}
}

func (c *Client) searchURL(handleID, locator, cursor string) (string, error) {
	u, err := url.Parse(c.config.SearchURL)
	if err != nil {
		return "", fmt.Errorf("invalid search url: %w", err)
	}
	q := u.Query()
	q.Set("cbir_id", handleID)
	q.Set("cbir_page", SitesPage)
	q.Set("rpt", "imageview")
	q.Set("url", locator)
	if cursor != "" {
		q.Set("cbir_cursor", cursor)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// detectImageType picks the upload content type from the image bytes
func detectImageType(image []byte) string {
	ct := http.DetectContentType(image)
	if strings.HasPrefix(ct, "image/") {
		return ct
	}
	return "image/jpeg"
}
