// ABOUTME: Static domain rule sets used to filter and categorize results
// ABOUTME: Skip list, blocked exact URLs and the ordered marketplace registry

package domain

import "strings"

// MarketplaceRule maps a domain suffix to a display label.
type MarketplaceRule struct {
	Suffix string `yaml:"suffix" toml:"suffix" json:"suffix"`
	Label  string `yaml:"label" toml:"label" json:"label"`
}

// MarketplaceRegistry is ordered; the first matching suffix wins the label.
type MarketplaceRegistry []MarketplaceRule

// Match returns the label of the first rule whose suffix ends domain.
func (r MarketplaceRegistry) Match(domain string) (string, bool) {
	domain = strings.ToLower(domain)
	for _, rule := range r {
		if rule.Suffix != "" && strings.HasSuffix(domain, strings.ToLower(rule.Suffix)) {
			return rule.Label, true
		}
	}
	return "", false
}

// Label returns the registry label for domain, falling back to the domain itself.
func (r MarketplaceRegistry) Label(domain string) string {
	if label, ok := r.Match(domain); ok {
		return label
	}
	return domain
}

// DomainRules groups the rule sets loaded once at startup.
type DomainRules struct {
	// SkipDomains disqualify any host containing one of them
	SkipDomains []string

	// BlockedExactURLs are discarded regardless of domain
	BlockedExactURLs []string

	// Marketplaces is the ordered marketplace registry
	Marketplaces MarketplaceRegistry
}

// DefaultDomainRules returns the rule sets the bot shipped with.
func DefaultDomainRules() DomainRules {
	return DomainRules{
		SkipDomains: []string{
			"avatars.mds.yandex.net",
			"yastatic.net",
			"info-people.com",
			"yandex.ru/support/images",
			"passport.yandex.ru",
		},
		Marketplaces: MarketplaceRegistry{
			{Suffix: "ozon.ru", Label: "Ozon"},
			{Suffix: "megamarket.ru", Label: "Megamarket"},
			{Suffix: "wildberries.ru", Label: "Wb"},
			{Suffix: "wb.ru", Label: "Wb"},
			{Suffix: "market.yandex.ru", Label: "Yandex Market"},
			{Suffix: "market.ya.ru", Label: "Yandex Market"},
		},
	}
}
