package model

import "time"

// Verdict is the final reliability judgement. The set is fixed: nothing
// outside these values ever leaves the engine.
type Verdict string

const (
	VerdictReal           Verdict = "Real"
	VerdictLikelyFake     Verdict = "Likely Fake"
	VerdictPartiallyTrue  Verdict = "Partially True"
	VerdictMixed          Verdict = "Mixed/Suspicious"
	VerdictReliable       Verdict = "Reliable"
	VerdictReliableBiased Verdict = "Reliable but Biased"
)

// Valid reports whether v is one of the fixed verdicts
func (v Verdict) Valid() bool {
	switch v {
	case VerdictReal, VerdictLikelyFake, VerdictPartiallyTrue,
		VerdictMixed, VerdictReliable, VerdictReliableBiased:
		return true
	}
	return false
}

// Category is the topical classification of the claim
type Category string

const (
	CategoryPolitics      Category = "Politics"
	CategoryEntertainment Category = "Entertainment"
	CategoryTechnology    Category = "Technology"
	CategoryHealth        Category = "Health"
	CategoryBusiness      Category = "Business"
	CategoryOthers        Category = "Others"
)

// Valid reports whether c is one of the fixed categories
func (c Category) Valid() bool {
	switch c {
	case CategoryPolitics, CategoryEntertainment, CategoryTechnology,
		CategoryHealth, CategoryBusiness, CategoryOthers:
		return true
	}
	return false
}

// NormalizeCategory maps an untrusted category string onto the fixed set,
// defaulting to Others.
func NormalizeCategory(s string) Category {
	c := Category(s)
	if c.Valid() {
		return c
	}
	return CategoryOthers
}

// ScoreComponents is the deterministic input triple to weighted fusion.
// Each component defaults to its documented neutral value when the
// corresponding evidence signal is absent.
type ScoreComponents struct {
	FactCheck    int `json:"fact_check_score"`    // 0-100, neutral 50
	NewsPresence int `json:"news_presence_score"` // 0-100, neutral 20
	Consistency  int `json:"consistency_score"`   // 0-100, neutral 50
}

// NeutralComponents returns the defaults used before any evidence lands
func NeutralComponents() ScoreComponents {
	return ScoreComponents{
		FactCheck:    50,
		NewsPresence: 20,
		Consistency:  50,
	}
}

// AnalysisResult is the engine's complete output for one claim.
// It is built once per run and never mutated after return.
type AnalysisResult struct {
	CredibilityScore int      `json:"credibility_score"` // Always clamped to 0-100
	Verdict          Verdict  `json:"verdict"`
	Category         Category `json:"category"`
	Explanation      string   `json:"explanation"`
	RedFlags         []string `json:"red_flags"`

	Sentiment  Sentiment       `json:"sentiment_analysis"`
	Components ScoreComponents `json:"score_components"`

	FactCheck    *FactCheckMatch  `json:"source_verification,omitempty"`
	NewsCoverage *NewsCoverage    `json:"news_coverage,omitempty"`
	Heuristics   []HeuristicScore `json:"heuristics,omitempty"`

	Adjudicated bool      `json:"adjudicated"` // Whether the oracle produced the final verdict
	AnalyzedAt  time.Time `json:"analyzed_at"`
}
