// ABOUTME: Link extractor running independent strategies over provider result pages
// ABOUTME: Merges strategy output per page in fixed order without cross-strategy dedup

package extract

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"snapfind-api/core/domain"
	"snapfind-api/core/interfaces"
)

// Document is one result page prepared once and shared by every strategy
type Document struct {
	Page domain.RawPage

	// Unescaped is the page text with HTML entities decoded
	Unescaped string

	// DOM is nil when the markup could not be parsed
	DOM *goquery.Document
}

// NewDocument parses a raw page for extraction
func NewDocument(page domain.RawPage) *Document {
	doc := &Document{
		Page:      page,
		Unescaped: html.UnescapeString(page.Markup),
	}
	if node, err := xhtml.Parse(strings.NewReader(page.Markup)); err == nil {
		doc.DOM = goquery.NewDocumentFromNode(node)
	}
	return doc
}

// Strategy pulls candidate URLs out of a page. It returns nothing rather
// than failing when the page does not have the shape it expects.
type Strategy interface {
	Name() string
	Extract(doc *Document) []string
}

// DefaultStrategies returns the three strategies in merge order
func DefaultStrategies() []Strategy {
	return []Strategy{
		NewStateStrategy(),
		NewPatternStrategy(),
		NewDOMStrategy(),
	}
}

// Extractor runs its strategies over every page
type Extractor struct {
	deps       interfaces.Dependencies
	strategies []Strategy
}

// NewExtractor creates an extractor; with no strategies the defaults are used
func NewExtractor(deps interfaces.Dependencies, strategies ...Strategy) *Extractor {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Extractor{
		deps:       deps,
		strategies: strategies,
	}
}

// Strategies returns the strategy names in merge order
func (e *Extractor) Strategies() []string {
	names := make([]string, 0, len(e.strategies))
	for _, s := range e.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Extract runs all strategies over all pages, pages in fetch order
func (e *Extractor) Extract(pages []domain.RawPage) []domain.Candidate {
	var candidates []domain.Candidate
	for _, page := range pages {
		candidates = append(candidates, e.ExtractPage(page)...)
	}
	return candidates
}

// ExtractPage concatenates the output of each strategy for one page
func (e *Extractor) ExtractPage(page domain.RawPage) []domain.Candidate {
	doc := NewDocument(page)

	var candidates []domain.Candidate
	for _, strategy := range e.strategies {
		urls := e.run(strategy, doc)
		for _, u := range urls {
			candidates = append(candidates, domain.Candidate{
				URL:       u,
				PageIndex: page.Index,
				Strategy:  strategy.Name(),
			})
		}
		if e.deps.Metrics != nil {
			e.deps.Metrics.CandidatesExtracted(strategy.Name(), len(urls))
		}
		if e.deps.Logger != nil {
			e.deps.Logger.Debug("Strategy finished", map[string]interface{}{
				"strategy": strategy.Name(),
				"page":     page.Index,
				"urls":     len(urls),
			})
		}
	}
	return candidates
}

// run isolates one strategy so a panic inside it only drops its own output
func (e *Extractor) run(strategy Strategy, doc *Document) (urls []string) {
	defer func() {
		if r := recover(); r != nil {
			urls = nil
			if e.deps.Logger != nil {
				e.deps.Logger.Error("Strategy panicked", map[string]interface{}{
					"strategy": strategy.Name(),
					"page":     doc.Page.Index,
					"error":    fmt.Sprint(r),
				})
			}
		}
	}()
	return strategy.Extract(doc)
}

// appendUnique appends u unless seen already holds it
func appendUnique(urls []string, seen map[string]struct{}, u string) []string {
	u = strings.TrimSpace(u)
	if u == "" {
		return urls
	}
	if _, ok := seen[u]; ok {
		return urls
	}
	seen[u] = struct{}{}
	return append(urls, u)
}
