package engine

import (
	"fmt"
	"strings"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// FallbackVerdict derives a verdict purely from the fused score when no
// oracle judgement is available.
func FallbackVerdict(score int, cfg model.ScoringConfig) model.Verdict {
	switch {
	case score < cfg.SuspiciousFloor:
		return model.VerdictLikelyFake
	case score < cfg.MixedThreshold:
		return model.VerdictMixed
	case score < cfg.ReliableThreshold:
		return model.VerdictReliableBiased
	default:
		return model.VerdictReliable
	}
}

// categoryKeywords maps each topical category to its keyword family.
// Order matters: the first family with a hit wins.
var categoryKeywords = []struct {
	category model.Category
	words    []string
}{
	{model.CategoryPolitics, []string{"election", "vote", "senate", "congress", "president", "policy", "law"}},
	{model.CategoryEntertainment, []string{"movie", "film", "actor", "celebrity", "song", "album", "star"}},
	{model.CategoryTechnology, []string{"iphone", "google", "microsoft", "ai", "software", "app", "cyber"}},
	{model.CategoryHealth, []string{"virus", "doctor", "hospital", "cancer", "study", "vaccine"}},
	{model.CategoryBusiness, []string{"stock", "market", "economy", "bank", "trade", "ceo"}},
}

// InferCategory classifies the claim text by keyword families. Anything
// outside the known families lands in Others.
func InferCategory(text string) model.Category {
	lower := strings.ToLower(text)
	for _, family := range categoryKeywords {
		for _, w := range family.words {
			if strings.Contains(lower, w) {
				return family.category
			}
		}
	}
	return model.CategoryOthers
}

// FallbackExplanation produces the templated explanation used when the
// oracle is unavailable.
func FallbackExplanation(score int, redFlags []string) string {
	if len(redFlags) == 0 {
		if score <= 60 {
			return "Content is neutral but lacks verifiable sources/context."
		}
		return "Content appears neutral and follows standard writing patterns."
	}
	return fmt.Sprintf("Analysis based on heuristics: %d red flags detected.", len(redFlags))
}
