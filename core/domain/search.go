// ABOUTME: Search domain models for reverse image search results
// ABOUTME: Defines the handle, raw pages, candidates and the categorized result set

package domain

// SearchHandle identifies one submitted image at the provider.
// It only lives for the duration of a single fetch loop.
type SearchHandle struct {
	// HandleID is the provider-assigned identifier (cbir id)
	HandleID string

	// AssetLocator is the provider-internal URL of the uploaded image
	AssetLocator string
}

// IsZero reports whether the handle is the "no handle" value.
func (h SearchHandle) IsZero() bool {
	return h.HandleID == "" || h.AssetLocator == ""
}

// RawPage is one provider result page in fetch order.
type RawPage struct {
	// Index is the zero-based position of the page in the fetch loop
	Index int

	// Markup is the page HTML
	Markup string
}

// Candidate is a raw URL pulled out of a page by one extraction strategy.
type Candidate struct {
	URL       string
	PageIndex int
	Strategy  string
}

// ResultEntry is a filtered, normalized result.
type ResultEntry struct {
	// URL is an absolute http(s) URL
	URL string `json:"url"`

	// Domain is the lowercase host of URL
	Domain string `json:"domain"`
}

// ResultSet holds both result buckets of one search.
// Marketplace is always a subsequence of General.
type ResultSet struct {
	General     []ResultEntry `json:"general"`
	Marketplace []ResultEntry `json:"marketplace"`
}

// IsEmpty reports whether the search produced no results at all.
func (r ResultSet) IsEmpty() bool {
	return len(r.General) == 0
}

// Bucket returns the entries backing the given view mode.
func (r ResultSet) Bucket(mode ViewMode) []ResultEntry {
	if mode == ModeMarketplace {
		return r.Marketplace
	}
	return r.General
}

// URLs returns the URLs of the given bucket in order.
func (r ResultSet) URLs(mode ViewMode) []string {
	entries := r.Bucket(mode)
	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, e.URL)
	}
	return urls
}

// Outcome is the user-facing classification of a search or session lookup.
type Outcome string

const (
	// OutcomeOK means results were found
	OutcomeOK Outcome = "ok"

	// OutcomeNoResults means the run succeeded but nothing survived filtering
	OutcomeNoResults Outcome = "no_results"

	// OutcomeSearchFailed means the provider could not be reached or rejected the request
	OutcomeSearchFailed Outcome = "search_failed"

	// OutcomeSessionExpired means the session id is unknown or evicted
	OutcomeSessionExpired Outcome = "session_expired"
)

// SearchOutcome is what a full search run hands back to the caller.
type SearchOutcome struct {
	Outcome   Outcome
	SessionID string
	Results   ResultSet
}
