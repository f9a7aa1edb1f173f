// ABOUTME: Search service runs the reverse image search pipeline end to end
// ABOUTME: Submits the image, extracts and filters links, then stores a browsable session

package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"snapfind-api/core/domain"
	coreerrors "snapfind-api/core/errors"
	"snapfind-api/core/extract"
	"snapfind-api/core/filter"
	"snapfind-api/core/interfaces"
)

// DefaultMaxImageBytes caps accepted uploads
const DefaultMaxImageBytes = 10 << 20

const resultCachePrefix = "results:"

// Options configures the pipeline
type Options struct {
	Rules domain.DomainRules

	// MaxImageBytes rejects larger uploads; zero uses DefaultMaxImageBytes
	MaxImageBytes int

	// ResultCacheTTL keeps result sets per image digest; zero disables the cache
	ResultCacheTTL time.Duration
}

// SearchService turns image bytes into a categorized result set
type SearchService struct {
	deps      interfaces.Dependencies
	provider  interfaces.ImageSearchProvider
	extractor *extract.Extractor
	filter    *filter.Filter
	store     interfaces.SessionStore
	opts      Options
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, provider interfaces.ImageSearchProvider, extractor *extract.Extractor, store interfaces.SessionStore, opts Options) *SearchService {
	if opts.MaxImageBytes <= 0 {
		opts.MaxImageBytes = DefaultMaxImageBytes
	}
	if extractor == nil {
		extractor = extract.NewExtractor(deps)
	}
	return &SearchService{
		deps:      deps,
		provider:  provider,
		extractor: extractor,
		filter:    filter.New(opts.Rules),
		store:     store,
		opts:      opts,
	}
}

// validateImage checks the upload before anything goes over the network
func (s *SearchService) validateImage(image []byte) error {
	if len(image) == 0 {
		return &coreerrors.ValidationError{Field: "image", Message: "image cannot be empty"}
	}
	if len(image) > s.opts.MaxImageBytes {
		return &coreerrors.ValidationError{
			Field:   "image",
			Message: fmt.Sprintf("image exceeds %d bytes", s.opts.MaxImageBytes),
		}
	}
	return nil
}

// Search runs the pipeline and stores a session for every successful run,
// including runs that found nothing. Failed runs store nothing.
func (s *SearchService) Search(ctx context.Context, ownerID string, image []byte) (*domain.SearchOutcome, error) {
	if err := s.validateImage(image); err != nil {
		return nil, err
	}

	results, outcome := s.RunSearch(ctx, image)
	if s.deps.Metrics != nil {
		s.deps.Metrics.SearchCompleted(outcome)
	}
	if outcome == domain.OutcomeSearchFailed {
		return &domain.SearchOutcome{Outcome: outcome, Results: results}, nil
	}

	id, err := s.store.Create(ctx, ownerID, results)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to create search session")
	}

	s.logInfo("Search completed", map[string]interface{}{
		"session_id":  id,
		"outcome":     string(outcome),
		"general":     len(results.General),
		"marketplace": len(results.Marketplace),
	})
	return &domain.SearchOutcome{Outcome: outcome, SessionID: id, Results: results}, nil
}

// RunSearch executes submit, fetch, extract, filter and categorize.
// It never fails: upstream problems yield an empty set and OutcomeSearchFailed.
func (s *SearchService) RunSearch(ctx context.Context, image []byte) (domain.ResultSet, domain.Outcome) {
	empty := filter.Categorize(nil, nil)

	cacheKey := resultCachePrefix + digest(image)
	if cached, ok := s.cachedResults(ctx, cacheKey); ok {
		return cached, outcomeFor(cached)
	}

	if s.provider == nil {
		return empty, domain.OutcomeSearchFailed
	}
	handle, ok := s.provider.Submit(ctx, image)
	if !ok {
		return empty, domain.OutcomeSearchFailed
	}

	var candidates []domain.Candidate
	pages := 0
	complete := true
	for page, err := range s.provider.FetchPages(ctx, handle) {
		if err != nil {
			if pages == 0 {
				s.logWarn("Result fetch failed", map[string]interface{}{
					"error": err.Error(),
				})
				return empty, domain.OutcomeSearchFailed
			}
			s.logWarn("Result fetch stopped early, keeping earlier pages", map[string]interface{}{
				"pages": pages,
				"error": err.Error(),
			})
			complete = false
			break
		}
		pages++
		candidates = append(candidates, s.extractor.ExtractPage(page)...)
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.PagesFetched(pages)
	}

	entries := s.filter.Normalize(candidates)
	results := filter.Categorize(entries, s.opts.Rules.Marketplaces)

	s.logDebug("Candidates filtered", map[string]interface{}{
		"pages":      pages,
		"candidates": len(candidates),
		"kept":       len(entries),
	})

	if complete {
		s.cacheResults(ctx, cacheKey, results)
	}
	return results, outcomeFor(results)
}

func outcomeFor(results domain.ResultSet) domain.Outcome {
	if results.IsEmpty() {
		return domain.OutcomeNoResults
	}
	return domain.OutcomeOK
}

func digest(image []byte) string {
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:])
}

func (s *SearchService) cachedResults(ctx context.Context, key string) (domain.ResultSet, bool) {
	if s.deps.Cache == nil || s.opts.ResultCacheTTL <= 0 {
		return domain.ResultSet{}, false
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return domain.ResultSet{}, false
	}
	var results domain.ResultSet
	if err := json.Unmarshal(data, &results); err != nil {
		return domain.ResultSet{}, false
	}
	s.logDebug("Result cache hit", map[string]interface{}{"key": key})
	return results, true
}

func (s *SearchService) cacheResults(ctx context.Context, key string, results domain.ResultSet) {
	if s.deps.Cache == nil || s.opts.ResultCacheTTL <= 0 || results.IsEmpty() {
		return
	}
	if data, err := json.Marshal(results); err == nil {
		_ = s.deps.Cache.Set(ctx, key, data, s.opts.ResultCacheTTL)
	}
}

func (s *SearchService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *SearchService) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *SearchService) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
