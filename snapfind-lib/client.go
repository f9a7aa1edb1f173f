// ABOUTME: Main client for the Snapfind library providing reverse image search
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package snapfind

import (
	"context"
	"time"

	"snapfind-api/core/domain"
	"snapfind-api/core/export"
	"snapfind-api/core/extract"
	"snapfind-api/core/interfaces"
	"snapfind-api/core/presenter"
	"snapfind-api/core/preview"
	"snapfind-api/core/provider"
	"snapfind-api/core/search"
	"snapfind-api/core/session"
	"snapfind-api/infrastructure/export/xlsx"
)

// Client is the main entry point for the Snapfind library
type Client struct {
	searchService *search.SearchService
	presenter     *presenter.Presenter
	exporter      *export.Service

	deps   interfaces.Dependencies
	config Config
}

// Config holds the configuration for the client
type Config struct {
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger

	Rules          domain.DomainRules
	ResultsPerPage int
	SessionTTL     time.Duration

	// Empty endpoints use the provider defaults
	UploadURL string
	SearchURL string

	ExportTitles bool
}

// NewClient creates a new Snapfind client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	if config.Cache == nil {
		return nil, ErrMissingCache
	}
	if config.HTTPClient == nil {
		return nil, ErrMissingHTTPClient
	}

	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	providerConfig := provider.DefaultConfig()
	if config.UploadURL != "" {
		providerConfig.UploadURL = config.UploadURL
	}
	if config.SearchURL != "" {
		providerConfig.SearchURL = config.SearchURL
	}

	store := session.NewStore(deps, config.SessionTTL)

	var titles interfaces.TitleResolver
	if config.ExportTitles {
		titles = preview.NewTitleService(deps, preview.Config{})
	}

	return &Client{
		searchService: search.NewSearchService(
			deps,
			provider.NewClient(deps, providerConfig),
			extract.NewExtractor(deps),
			store,
			search.Options{Rules: config.Rules},
		),
		presenter: presenter.New(deps, store, config.Rules.Marketplaces, config.ResultsPerPage),
		exporter:  export.NewService(deps, store, xlsx.NewWriter(xlsx.DefaultFileName), titles),
		deps:      deps,
		config:    config,
	}, nil
}

// Search runs a reverse image search and returns the first page of the new
// session. ownerID may be empty; when set, View can later find the latest
// session of that owner.
func (c *Client) Search(ctx context.Context, ownerID string, image []byte) (*SearchResult, error) {
	outcome, err := c.searchService.Search(ctx, ownerID, image)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Status:    string(outcome.Outcome),
		Message:   presenter.Message(outcome.Outcome),
		SessionID: outcome.SessionID,
	}
	if outcome.SessionID != "" {
		view, err := c.View(ctx, outcome.SessionID)
		if err != nil {
			return nil, err
		}
		result.View = view
	}
	return result, nil
}

// View renders the current page of a session
func (c *Client) View(ctx context.Context, sessionID string) (*View, error) {
	v, err := c.presenter.Show(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return viewToPublic(v, presenter.FormatHTML(v)), nil
}

// LatestView renders the most recent session of ownerID
func (c *Client) LatestView(ctx context.Context, ownerID string) (*View, error) {
	v, err := c.presenter.ShowLatest(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return viewToPublic(v, presenter.FormatHTML(v)), nil
}

// Act applies a navigation action and returns the resulting page
func (c *Client) Act(ctx context.Context, sessionID string, action Action) (*View, error) {
	v, err := c.presenter.Apply(ctx, sessionID, domain.Action(action))
	if err != nil {
		return nil, err
	}
	return viewToPublic(v, presenter.FormatHTML(v)), nil
}

// Export renders both result buckets of a session as a spreadsheet
func (c *Client) Export(ctx context.Context, sessionID string) (*File, error) {
	f, err := c.exporter.Export(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &File{Name: f.Name, ContentType: f.ContentType, Data: f.Data}, nil
}
