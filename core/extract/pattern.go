// ABOUTME: Pattern strategy scanning the page text for absolute URLs
// ABOUTME: Returns matches in document order, duplicates included

package extract

import "regexp"

// StrategyPattern is the name of the pattern-scan strategy
const StrategyPattern = "pattern"

// absoluteURL matches http(s) URLs up to a quote, angle bracket or whitespace
var absoluteURL = regexp.MustCompile(`https?://[^"'<>\s]+`)

// PatternStrategy scans the unescaped page text for anything shaped like a URL.
// Matches are returned in document order, duplicates included.
type PatternStrategy struct {
	pattern *regexp.Regexp
}

// NewPatternStrategy returns the strategy with the absolute URL pattern
func NewPatternStrategy() *PatternStrategy {
	return &PatternStrategy{pattern: absoluteURL}
}

// Name implements Strategy
func (s *PatternStrategy) Name() string { return StrategyPattern }

// Extract implements Strategy
func (s *PatternStrategy) Extract(doc *Document) []string {
	return s.pattern.FindAllString(doc.Unescaped, -1)
}
