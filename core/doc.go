// Package core contains the business logic of the Snapfind service.
// It has no HTTP framework dependencies and can be used on its own,
// as snapfind-lib does.
//
// Sub-packages:
//
// - domain: results, sessions, views and domain rules
// - provider: image upload and result page fetching
// - extract: candidate URL extraction strategies
// - filter: normalization, skip rules and marketplace categorization
// - search: the end-to-end search pipeline
// - session: TTL-bound session storage on top of interfaces.Cache
// - presenter: pagination, mode switching and chat rendering
// - export: two-sheet spreadsheet documents
// - preview: page title lookup for exports
// - errors: typed errors shared across layers
// - interfaces: contracts for cache, HTTP, logging, metrics and writers
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,
//	    HTTPClient: myHTTPClient,
//	    Logger:     myLogger,
//	}
//	store := session.NewStore(deps, 24*time.Hour)
//	service := search.NewSearchService(deps,
//	    provider.NewClient(deps, provider.DefaultConfig()),
//	    extract.NewExtractor(deps),
//	    store,
//	    search.Options{Rules: domain.DefaultDomainRules()},
//	)
//	outcome, err := service.Search(ctx, "chat-1", imageBytes)
package core
