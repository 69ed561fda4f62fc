package heuristics

import (
	"fmt"
	"math"
	"strings"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// AnalyzeSensationalism scores the text for sensationalism from its
// sentiment: high subjectivity and extreme polarity both indicate
// opinionated or emotionally loaded writing.
//
//	score = 0.7*subjectivity + 0.3*|polarity|
//
// Returns the heuristic score plus the underlying sentiment so callers
// can surface tone analysis without re-deriving it.
func AnalyzeSensationalism(text string) (model.HeuristicScore, model.Sentiment) {
	sentiment := AnalyzeSentiment(text)

	intensity := math.Abs(sentiment.Polarity)
	score := sentiment.Subjectivity*0.7 + intensity*0.3

	var reasons []string
	if sentiment.Subjectivity > 0.5 {
		reasons = append(reasons, fmt.Sprintf("High subjectivity (%.2f) detects opinionated language.", sentiment.Subjectivity))
	}
	if intensity > 0.6 {
		reasons = append(reasons, fmt.Sprintf("Extreme sentiment (%.2f) indicates potential bias.", sentiment.Polarity))
	}

	reasoning := "Language appears neutral and objective."
	if len(reasons) > 0 {
		reasoning = strings.Join(reasons, " ")
	}

	return model.HeuristicScore{
		Kind:      model.HeuristicSensationalism,
		Score:     score,
		Reasoning: reasoning,
	}, sentiment
}
