package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// Provider defines the interface for adjudication oracles
type Provider interface {
	// Name returns the provider name
	Name() string

	// Adjudicate submits the provisional result and evidence summary and
	// returns the oracle's structured judgement
	Adjudicate(ctx context.Context, req Request) (*Adjudication, error)
}

// Request carries everything the oracle needs to reach a verdict
type Request struct {
	// ClaimText is the text under evaluation (callers pass a bounded prefix)
	ClaimText string

	// ProvisionalScore is the engine's weighted fusion result
	ProvisionalScore int

	// FactCheck is the validated registry match, if any
	FactCheck *model.FactCheckMatch

	// NewsCoverage is the corroboration summary, if any
	NewsCoverage *model.NewsCoverage

	// RedFlags are the heuristic warnings raised before adjudication
	RedFlags []string
}

// Adjudication is the oracle's structured response. The oracle is
// permitted to override the provisional score and verdict; the engine
// treats these values as authoritative when present.
type Adjudication struct {
	ReasoningSummary string
	Verdict          model.Verdict
	Category         model.Category
	ConfidenceScore  *int // nil when the oracle declined to override the score
	Warnings         []string
	Tone             model.Sentiment
}

// adjudicationWire is the strict JSON shape required from the oracle
type adjudicationWire struct {
	ReasoningSummary string   `json:"reasoning_summary"`
	Verdict          string   `json:"verdict"`
	Category         string   `json:"category"`
	ConfidenceScore  *int     `json:"confidence_score"`
	Warnings         []string `json:"warnings"`
	ToneAnalysis     struct {
		Subjectivity float64 `json:"subjectivity"`
		Polarity     float64 `json:"polarity"`
	} `json:"tone_analysis"`
}

// ParseAdjudication decodes and validates an oracle response. Non-JSON
// payloads, a missing reasoning summary, or a verdict outside the fixed
// set are all parse failures; an invalid category degrades to Others.
func ParseAdjudication(raw []byte) (*Adjudication, error) {
	var wire adjudicationWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("adjudication response is not valid JSON: %w", err)
	}

	if wire.ReasoningSummary == "" {
		return nil, fmt.Errorf("adjudication response missing reasoning_summary")
	}

	verdict := model.Verdict(wire.Verdict)
	if !verdict.Valid() {
		return nil, fmt.Errorf("adjudication response has invalid verdict %q", wire.Verdict)
	}

	return &Adjudication{
		ReasoningSummary: wire.ReasoningSummary,
		Verdict:          verdict,
		Category:         model.NormalizeCategory(wire.Category),
		ConfidenceScore:  wire.ConfidenceScore,
		Warnings:         wire.Warnings,
		Tone: model.Sentiment{
			Subjectivity: wire.ToneAnalysis.Subjectivity,
			Polarity:     wire.ToneAnalysis.Polarity,
		},
	}, nil
}
