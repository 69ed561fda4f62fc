package engine

import (
	"math"
	"strings"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// ConsistencyScore cross-checks the two external signals against each
// other. A fact-check match is the strongest consistency signal; trusted
// coverage the next. A claim written like breaking news that no outlet
// reported at all is suspicious silence.
func ConsistencyScore(factCheck *model.FactCheckMatch, coverage *model.NewsCoverage, text string, markers []string) int {
	if factCheck != nil {
		return 100
	}
	if coverage != nil && coverage.HasTrustedCoverage {
		return 80
	}
	if coverage != nil && coverage.TotalArticles == 0 && containsMarker(text, markers) {
		return 20
	}
	return 50
}

func containsMarker(text string, markers []string) bool {
	lower := strings.ToLower(text)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// FinalScore fuses the component triple into a single credibility score.
// Rounding is half-up: 50.5 becomes 51, never 50. The result is clamped
// to [0,100] so no weight drift can push it out of range.
func FinalScore(c model.ScoreComponents, w model.ScoringConfig) int {
	raw := w.FactCheckWeight*float64(c.FactCheck) +
		w.NewsWeight*float64(c.NewsPresence) +
		w.ConsistencyWeight*float64(c.Consistency)
	return clamp(roundHalfUp(raw), 0, 100)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
