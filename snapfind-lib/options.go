// ABOUTME: Configuration options for the Snapfind library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package snapfind

import (
	"errors"
	"time"

	"snapfind-api/core/domain"
	"snapfind-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation for sessions
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithRules replaces the built-in skip list and marketplace registry
func WithRules(rules domain.DomainRules) Option {
	return func(c *Config) error {
		c.Rules = rules
		return nil
	}
}

// WithResultsPerPage sets how many links a page shows
func WithResultsPerPage(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return errors.New("results per page must be at least 1")
		}
		c.ResultsPerPage = n
		return nil
	}
}

// WithSessionTTL sets how long untouched sessions stay available
func WithSessionTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return errors.New("session ttl must be positive")
		}
		c.SessionTTL = ttl
		return nil
	}
}

// WithProviderEndpoints points the client at different upload and search URLs
func WithProviderEndpoints(uploadURL, searchURL string) Option {
	return func(c *Config) error {
		c.UploadURL = uploadURL
		c.SearchURL = searchURL
		return nil
	}
}

// WithExportTitles adds a page title column to exports
func WithExportTitles(enabled bool) Option {
	return func(c *Config) error {
		c.ExportTitles = enabled
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:          DefaultMemoryCache(),
		HTTPClient:     DefaultHTTPClient(),
		Logger:         QuietLogger(),
		Rules:          domain.DefaultDomainRules(),
		ResultsPerPage: 10,
		SessionTTL:     24 * time.Hour,
	}
}
