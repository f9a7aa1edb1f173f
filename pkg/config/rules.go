// ABOUTME: Domain rule file loading in YAML or TOML
// ABOUTME: Registry order follows the file so the first matching suffix keeps its label

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"snapfind-api/core/domain"
)

// RulesDocument is the on-disk shape of the domain rules
type RulesDocument struct {
	SkipDomains      []string                 `yaml:"skip_domains" toml:"skip_domains"`
	BlockedExactURLs []string                 `yaml:"blocked_urls" toml:"blocked_urls"`
	Marketplaces     []domain.MarketplaceRule `yaml:"marketplaces" toml:"marketplaces"`
}

// LoadRules reads a rules file. Sections missing from the file keep the built-in defaults.
func LoadRules(path string) (domain.DomainRules, error) {
	rules := domain.DefaultDomainRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules: %w", err)
	}

	var file RulesDocument
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return rules, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return rules, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return rules, fmt.Errorf("unsupported rules file extension %q", ext)
	}

	if file.SkipDomains != nil {
		rules.SkipDomains = file.SkipDomains
	}
	if file.BlockedExactURLs != nil {
		rules.BlockedExactURLs = file.BlockedExactURLs
	}
	if file.Marketplaces != nil {
		for i, rule := range file.Marketplaces {
			if strings.TrimSpace(rule.Suffix) == "" {
				return rules, fmt.Errorf("marketplace rule %d has no suffix", i)
			}
		}
		rules.Marketplaces = file.Marketplaces
	}
	return rules, nil
}
