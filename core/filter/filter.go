// ABOUTME: Normalizer and filter turning raw candidates into unique result entries
// ABOUTME: Applies the skip list, asset extension check and blocked URL list

package filter

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/purell"

	"snapfind-api/core/domain"
)

// normalizeFlags are applied before deduplication
const normalizeFlags = purell.FlagsSafe | purell.FlagRemoveFragment

// staticAsset matches paths ending in a stylesheet, script or image extension
var staticAsset = regexp.MustCompile(`(?i)\.(css|js|jpe?g|png|webp|gif|svg|ico|bmp)$`)

// Filter drops noise candidates and deduplicates the rest
type Filter struct {
	skip    []string
	blocked map[string]struct{}
}

// New builds a filter from the static rule sets
func New(rules domain.DomainRules) *Filter {
	f := &Filter{
		blocked: make(map[string]struct{}, len(rules.BlockedExactURLs)),
	}
	for _, s := range rules.SkipDomains {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			f.skip = append(f.skip, s)
		}
	}
	for _, u := range rules.BlockedExactURLs {
		if u = strings.TrimSpace(u); u != "" {
			f.blocked[u] = struct{}{}
		}
	}
	return f
}

// Normalize keeps the first occurrence of every acceptable candidate URL.
// The output depends only on the candidate order and the rule sets.
func (f *Filter) Normalize(candidates []domain.Candidate) []domain.ResultEntry {
	var entries []domain.ResultEntry
	seen := make(map[string]struct{})
	for _, c := range candidates {
		entry, ok := f.accept(c.URL)
		if !ok {
			continue
		}
		if _, dup := seen[entry.URL]; dup {
			continue
		}
		seen[entry.URL] = struct{}{}
		entries = append(entries, entry)
	}
	return entries
}

// NormalizeURLs is Normalize for plain URL strings
func (f *Filter) NormalizeURLs(urls []string) []domain.ResultEntry {
	candidates := make([]domain.Candidate, 0, len(urls))
	for _, u := range urls {
		candidates = append(candidates, domain.Candidate{URL: u})
	}
	return f.Normalize(candidates)
}

func (f *Filter) accept(raw string) (domain.ResultEntry, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || f.isBlocked(raw) {
		return domain.ResultEntry{}, false
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return domain.ResultEntry{}, false
	}
	host := strings.ToLower(u.Hostname())
	if f.isSkipped(host) {
		return domain.ResultEntry{}, false
	}
	if staticAsset.MatchString(u.Path) {
		return domain.ResultEntry{}, false
	}

	normalized := purell.NormalizeURL(u, normalizeFlags)
	if f.isBlocked(normalized) {
		return domain.ResultEntry{}, false
	}
	return domain.ResultEntry{URL: normalized, Domain: host}, true
}

// isSkipped matches skip entries anywhere in the host. The path never takes
// part, so an entry carrying one cannot match.
func (f *Filter) isSkipped(host string) bool {
	for _, s := range f.skip {
		if strings.Contains(host, s) {
			return true
		}
	}
	return false
}

func (f *Filter) isBlocked(u string) bool {
	_, ok := f.blocked[u]
	return ok
}

// Categorize splits entries into the general bucket and its marketplace subsequence
func Categorize(entries []domain.ResultEntry, registry domain.MarketplaceRegistry) domain.ResultSet {
	set := domain.ResultSet{
		General:     entries,
		Marketplace: []domain.ResultEntry{},
	}
	if set.General == nil {
		set.General = []domain.ResultEntry{}
	}
	for _, e := range entries {
		if _, ok := registry.Match(e.Domain); ok {
			set.Marketplace = append(set.Marketplace, e)
		}
	}
	return set
}
