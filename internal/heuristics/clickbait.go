package heuristics

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// ClickbaitDetector scores a headline for clickbait patterns using fixed
// keyword and phrase tables. Pure and stateless once constructed.
type ClickbaitDetector struct {
	keywords []string
	triggers []string
}

// NewClickbaitDetector creates a detector from the configured tables
func NewClickbaitDetector(cfg *model.HeuristicsConfig) *ClickbaitDetector {
	if cfg == nil {
		cfg = &model.DefaultConfig().Heuristics
	}
	return &ClickbaitDetector{
		keywords: cfg.ClickbaitKeywords,
		triggers: cfg.TriggerPhrases,
	}
}

// Detect scores the headline. The score is additive and capped at 1.0:
// +0.3 per matched keyword, +0.4 for a leading trigger phrase, +0.3 for
// majority-uppercase text, +0.2 for doubled terminal punctuation.
func (d *ClickbaitDetector) Detect(headline string) model.HeuristicScore {
	if headline == "" {
		return model.HeuristicScore{
			Kind:      model.HeuristicClickbait,
			Score:     0.0,
			Reasoning: "No headline provided.",
		}
	}

	lower := strings.ToLower(headline)
	score := 0.0
	var reasons []string

	var detected []string
	for _, kw := range d.keywords {
		if strings.Contains(lower, kw) {
			score += 0.3
			detected = append(detected, kw)
		}
	}
	if len(detected) > 0 {
		reasons = append(reasons, fmt.Sprintf("Contains clickbait keywords: %s.", strings.Join(detected, ", ")))
	}

	for _, trigger := range d.triggers {
		if strings.HasPrefix(lower, trigger) {
			score += 0.4
			reasons = append(reasons, "Uses common clickbait phrasing.")
			break
		}
	}

	upper := 0
	for _, r := range headline {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if total := len([]rune(headline)); total > 0 && float64(upper)/float64(total) > 0.5 {
		score += 0.3
		reasons = append(reasons, "Excessive use of capital letters.")
	}

	if strings.Contains(headline, "!!") || strings.Contains(headline, "??") {
		score += 0.2
		reasons = append(reasons, "Excessive punctuation detected.")
	}

	if score > 1.0 {
		score = 1.0
	}

	reasoning := "No clickbait patterns detected."
	if len(reasons) > 0 {
		reasoning = strings.Join(reasons, " ")
	}

	return model.HeuristicScore{
		Kind:      model.HeuristicClickbait,
		Score:     score,
		Reasoning: reasoning,
	}
}
