package engine

import (
	"testing"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

func defaultScoring() model.ScoringConfig {
	return model.DefaultConfig().Scoring
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name       string
		components model.ScoreComponents
		want       int
	}{
		// 0.45*0 + 0.35*100 + 0.20*80 = 51.0
		{"false claim with coverage", model.ScoreComponents{FactCheck: 0, NewsPresence: 100, Consistency: 80}, 51},
		// All neutral defaults: 22.5 + 7 + 10 = 39.5, rounds half up to 40
		{"all signals absent", model.NeutralComponents(), 40},
		{"everything perfect", model.ScoreComponents{FactCheck: 100, NewsPresence: 100, Consistency: 100}, 100},
		{"everything zero", model.ScoreComponents{}, 0},
		// 0.45*40 + 0.35*70 + 0.20*50 = 18 + 24.5 + 10 = 52.5 -> 53
		{"half up not half even", model.ScoreComponents{FactCheck: 40, NewsPresence: 70, Consistency: 50}, 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalScore(tt.components, defaultScoring())
			if got != tt.want {
				t.Errorf("FinalScore(%+v) = %d, want %d", tt.components, got, tt.want)
			}
		})
	}
}

func TestFinalScoreIdempotent(t *testing.T) {
	c := model.ScoreComponents{FactCheck: 40, NewsPresence: 70, Consistency: 80}
	first := FinalScore(c, defaultScoring())
	for i := 0; i < 10; i++ {
		if got := FinalScore(c, defaultScoring()); got != first {
			t.Fatalf("FinalScore not stable: %d then %d", first, got)
		}
	}
}

func TestFinalScoreClamped(t *testing.T) {
	// Weights that sum above 1.0 must still land inside the bounds
	heavy := model.ScoringConfig{FactCheckWeight: 1.0, NewsWeight: 1.0, ConsistencyWeight: 1.0}

	if got := FinalScore(model.ScoreComponents{FactCheck: 100, NewsPresence: 100, Consistency: 100}, heavy); got != 100 {
		t.Errorf("FinalScore() = %d, want clamped to 100", got)
	}

	negative := model.ScoringConfig{FactCheckWeight: -1.0}
	if got := FinalScore(model.ScoreComponents{FactCheck: 100}, negative); got != 0 {
		t.Errorf("FinalScore() = %d, want clamped to 0", got)
	}
}

func TestConsistencyScore(t *testing.T) {
	markers := defaultScoring().BreakingNewsMarker
	match := &model.FactCheckMatch{Publisher: "Snopes", Rating: "False"}
	trusted := &model.NewsCoverage{TotalArticles: 5, HasTrustedCoverage: true, Score: 100}
	silence := &model.NewsCoverage{TotalArticles: 0, Score: 0}
	untrusted := &model.NewsCoverage{TotalArticles: 4, Score: 40}

	tests := []struct {
		name      string
		factCheck *model.FactCheckMatch
		coverage  *model.NewsCoverage
		text      string
		want      int
	}{
		{"fact-check match dominates", match, silence, "BREAKING: something happened", 100},
		{"trusted coverage", nil, trusted, "some claim", 80},
		{"suspicious silence", nil, silence, "BREAKING: president sworn in today", 20},
		{"silence without marker", nil, silence, "the sky is blue", 50},
		{"marker but coverage exists", nil, untrusted, "breaking update on the storm", 50},
		{"no evidence at all", nil, nil, "breaking news everyone", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConsistencyScore(tt.factCheck, tt.coverage, tt.text, markers)
			if got != tt.want {
				t.Errorf("ConsistencyScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
