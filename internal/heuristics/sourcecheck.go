package heuristics

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// SourceChecker classifies a source URL against fixed suspicious and
// reliable domain tables. It never fails: unparsable input degrades to
// the Unknown status.
type SourceChecker struct {
	suspicious map[string]bool
	reliable   map[string]bool
}

// NewSourceChecker creates a checker from the configured domain tables
func NewSourceChecker(cfg *model.HeuristicsConfig) *SourceChecker {
	if cfg == nil {
		cfg = &model.DefaultConfig().Heuristics
	}

	checker := &SourceChecker{
		suspicious: make(map[string]bool, len(cfg.SuspiciousDomains)),
		reliable:   make(map[string]bool, len(cfg.ReliableDomains)),
	}
	for _, d := range cfg.SuspiciousDomains {
		checker.suspicious[d] = true
	}
	for _, d := range cfg.ReliableDomains {
		checker.reliable[d] = true
	}
	return checker
}

// Check classifies the URL's registrable domain. Suspicious domains score
// 0, reliable domains 100, everything else (including empty or unparsable
// URLs) 50.
func (c *SourceChecker) Check(rawURL string) model.HeuristicScore {
	if rawURL == "" {
		return model.HeuristicScore{
			Kind:      model.HeuristicSourceReliability,
			Score:     50,
			Status:    model.SourceUnknown,
			Reasoning: "No source URL provided.",
		}
	}

	domain := RegistrableDomain(rawURL)
	if domain == "" {
		return model.HeuristicScore{
			Kind:      model.HeuristicSourceReliability,
			Score:     50,
			Status:    model.SourceUnknown,
			Reasoning: "Could not parse source URL.",
		}
	}

	switch {
	case c.suspicious[domain]:
		return model.HeuristicScore{
			Kind:      model.HeuristicSourceReliability,
			Score:     0,
			Status:    model.SourceSuspicious,
			Reasoning: fmt.Sprintf("Source '%s' is in our list of known suspicious sites.", domain),
		}
	case c.reliable[domain]:
		return model.HeuristicScore{
			Kind:      model.HeuristicSourceReliability,
			Score:     100,
			Status:    model.SourceReliable,
			Reasoning: fmt.Sprintf("Source '%s' is a known reliable news outlet.", domain),
		}
	default:
		return model.HeuristicScore{
			Kind:      model.HeuristicSourceReliability,
			Score:     50,
			Status:    model.SourceUnknown,
			Reasoning: fmt.Sprintf("Source '%s' is not in our verified database.", domain),
		}
	}
}

// RegistrableDomain extracts the normalized registrable domain from a URL,
// falling back to a lowercased host with any leading "www." stripped when
// the public suffix list cannot resolve it. Returns "" for unparsable input.
func RegistrableDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}
	return strings.TrimPrefix(host, "www.")
}
