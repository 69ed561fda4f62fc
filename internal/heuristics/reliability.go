package heuristics

import (
	"fmt"
	"strings"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// AttributionChecker looks for hedge words and vague attribution that
// suggest gossip or unverified content ("according to rumors", "sources
// claim", ...).
type AttributionChecker struct {
	phrases []string
}

// NewAttributionChecker creates a checker from the configured phrase table
func NewAttributionChecker(cfg *model.HeuristicsConfig) *AttributionChecker {
	if cfg == nil {
		cfg = &model.DefaultConfig().Heuristics
	}
	return &AttributionChecker{phrases: cfg.HedgePhrases}
}

// Check scores the text for unreliable attribution. A high score means
// heavy hedging: min(1.0, 0.3 * matched phrases). The matched phrases are
// returned so the caller can surface them as red flags.
func (c *AttributionChecker) Check(text string) (model.HeuristicScore, []string) {
	lower := strings.ToLower(text)

	var found []string
	for _, phrase := range c.phrases {
		if strings.Contains(lower, phrase) {
			found = append(found, phrase)
		}
	}

	if len(found) == 0 {
		return model.HeuristicScore{
			Kind:      model.HeuristicAttribution,
			Score:     0.0,
			Reasoning: "Attribution seems standard.",
		}, nil
	}

	score := float64(len(found)) * 0.3
	if score > 1.0 {
		score = 1.0
	}

	return model.HeuristicScore{
		Kind:      model.HeuristicAttribution,
		Score:     score,
		Reasoning: fmt.Sprintf("Contains vague/unverifiable attribution: %s", strings.Join(found, ", ")),
	}, found
}
