package model

// FactCheckMatch is a validated hit from an external claim-review registry.
// A nil *FactCheckMatch means no sufficiently similar review exists.
type FactCheckMatch struct {
	Publisher    string  `json:"publisher"`               // Reviewing organization (e.g., "Factly")
	Rating       string  `json:"rating"`                  // Textual rating as published
	ReviewURL    string  `json:"review_url,omitempty"`    // Link to the review
	MatchedClaim string  `json:"matched_claim,omitempty"` // Claim text the registry matched
	Similarity   float64 `json:"similarity"`              // Jaccard similarity to the query
	Score        int     `json:"score"`                   // Rating mapped to 0-100
}

// TrustedArticle is one corroborating article from the mainstream allowlist
type TrustedArticle struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at,omitempty"`
}

// NewsCoverage summarizes how the news index reported on a claim.
// A nil *NewsCoverage means the lookup was unavailable, which is distinct
// from a successful lookup that found zero articles.
type NewsCoverage struct {
	TotalArticles      int              `json:"total_articles"`
	TrustedArticles    []TrustedArticle `json:"trusted_articles,omitempty"`
	HasTrustedCoverage bool             `json:"has_trusted_coverage"`
	Score              int              `json:"score"` // Coverage mapped to 0-100
}

// HeuristicKind identifies a pure text/URL heuristic
type HeuristicKind string

const (
	HeuristicClickbait         HeuristicKind = "clickbait"
	HeuristicSensationalism    HeuristicKind = "sensationalism"
	HeuristicSourceReliability HeuristicKind = "source_reliability"
	HeuristicAttribution       HeuristicKind = "attribution"
)

// SourceStatus classifies a source domain against the known-domain tables
type SourceStatus string

const (
	SourceReliable   SourceStatus = "Reliable"
	SourceSuspicious SourceStatus = "Suspicious"
	SourceUnknown    SourceStatus = "Unknown"
)

// HeuristicScore is the output of one heuristic scorer
type HeuristicScore struct {
	Kind      HeuristicKind `json:"kind"`
	Score     float64       `json:"score"`            // 0.0-1.0 for text heuristics, 0-100/100 for source
	Status    SourceStatus  `json:"status,omitempty"` // Only set by the source-reliability scorer
	Reasoning string        `json:"reasoning"`
}

// Sentiment holds the tone analysis derived from the claim text
type Sentiment struct {
	Polarity     float64 `json:"polarity"`     // -1.0 (negative) to 1.0 (positive)
	Subjectivity float64 `json:"subjectivity"` // 0.0 (objective) to 1.0 (opinionated)
}
