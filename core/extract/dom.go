// ABOUTME: DOM strategy reading links from the provider's result cards
// ABOUTME: Fallback for pages that carry no embedded state blob

package extract

import (
	"github.com/PuerkitoBio/goquery"
)

// StrategyDOM is the name of the DOM-fallback strategy
const StrategyDOM = "dom"

// DOMStrategy reads links from rendered result cards. Each card contributes
// its domain link, or its title link when the domain link is missing.
type DOMStrategy struct {
	CardSelector   string
	DomainSelector string
	TitleSelector  string
}

// NewDOMStrategy returns the strategy configured for the provider's card markup
func NewDOMStrategy() *DOMStrategy {
	return &DOMStrategy{
		CardSelector:   ".CbirSites-ItemInfo",
		DomainSelector: ".CbirSites-ItemDomain a",
		TitleSelector:  ".CbirSites-ItemTitle a",
	}
}

// Name implements Strategy
func (s *DOMStrategy) Name() string { return StrategyDOM }

// Extract implements Strategy
func (s *DOMStrategy) Extract(doc *Document) []string {
	if doc.DOM == nil {
		return nil
	}

	var urls []string
	seen := make(map[string]struct{})
	doc.DOM.Find(s.CardSelector).Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Find(s.DomainSelector).First().Attr("href")
		if !ok || href == "" {
			href, ok = card.Find(s.TitleSelector).First().Attr("href")
		}
		if ok {
			urls = appendUnique(urls, seen, href)
		}
	})
	return urls
}
