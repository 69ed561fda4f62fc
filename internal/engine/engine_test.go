package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/llm"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// mockFactCheck implements FactCheckSource for testing
type mockFactCheck struct {
	match *model.FactCheckMatch
	err   error
}

func (m *mockFactCheck) VerifyClaim(ctx context.Context, query string) (*model.FactCheckMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.match, m.err
}

// mockNews implements NewsSource for testing
type mockNews struct {
	coverage *model.NewsCoverage
	err      error
}

func (m *mockNews) VerifyPresence(ctx context.Context, query string) (*model.NewsCoverage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.coverage, m.err
}

// mockOracle implements llm.Provider for testing
type mockOracle struct {
	adjudication *llm.Adjudication
	err          error
	lastRequest  llm.Request
}

func (m *mockOracle) Name() string { return "mock" }

func (m *mockOracle) Adjudicate(ctx context.Context, req llm.Request) (*llm.Adjudication, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.adjudication, nil
}

func TestAnalyzeEmptyInput(t *testing.T) {
	e := New(model.DefaultConfig(), nil, nil, nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := e.Analyze(context.Background(), text, ""); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Analyze(%q) error = %v, want ErrEmptyInput", text, err)
		}
	}
}

func TestAnalyzeAllSourcesAbsent(t *testing.T) {
	e := New(model.DefaultConfig(), nil, nil, nil)

	result, err := e.Analyze(context.Background(), "The sky was blue over the city today according to officials at the weather service downtown", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	want := model.ScoreComponents{FactCheck: 50, NewsPresence: 20, Consistency: 50}
	if result.Components != want {
		t.Errorf("Components = %+v, want %+v", result.Components, want)
	}
	if result.CredibilityScore != 40 {
		t.Errorf("CredibilityScore = %d, want 40 for all-neutral components", result.CredibilityScore)
	}
	if result.Verdict != model.VerdictMixed {
		t.Errorf("Verdict = %q, want %q", result.Verdict, model.VerdictMixed)
	}
	if result.Adjudicated {
		t.Error("Adjudicated = true without an oracle")
	}
}

func TestAnalyzeDegradedSourcesUseNeutralDefaults(t *testing.T) {
	e := New(model.DefaultConfig(),
		&mockFactCheck{err: errors.New("registry unreachable")},
		&mockNews{err: errors.New("index unreachable")},
		nil)

	result, err := e.Analyze(context.Background(), "Some ordinary statement about everyday matters that nobody would dispute at length here", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v, source failures must not propagate", err)
	}

	if result.FactCheck != nil || result.NewsCoverage != nil {
		t.Error("degraded sources must surface as absent evidence")
	}
	if result.Components.FactCheck != 50 || result.Components.NewsPresence != 20 {
		t.Errorf("Components = %+v, want neutral defaults", result.Components)
	}
}

func TestAnalyzeFalseClaimWithCoverage(t *testing.T) {
	coverage := &model.NewsCoverage{
		TotalArticles:      8,
		TrustedArticles:    []model.TrustedArticle{{Source: "Reuters", URL: "https://reuters.com/a"}},
		HasTrustedCoverage: true,
		Score:              70,
	}
	e := New(model.DefaultConfig(),
		&mockFactCheck{match: &model.FactCheckMatch{Publisher: "Factly", Rating: "False", Similarity: 0.5, Score: 0}},
		&mockNews{coverage: coverage},
		nil)

	result, err := e.Analyze(context.Background(), "A claim that checkers reviewed and outlets covered widely across several days of reporting", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	// 0.45*0 + 0.35*70 + 0.20*100 = 44.5 -> 45
	if result.Components.Consistency != 100 {
		t.Errorf("Consistency = %d, want 100 with fact-check match", result.Components.Consistency)
	}
	if result.CredibilityScore != 45 {
		t.Errorf("CredibilityScore = %d, want 45", result.CredibilityScore)
	}
	if result.FactCheck == nil || result.FactCheck.Publisher != "Factly" {
		t.Errorf("FactCheck = %+v, want the registry match attached", result.FactCheck)
	}
}

func TestAnalyzeSuspiciousSilenceFlag(t *testing.T) {
	e := New(model.DefaultConfig(), nil,
		&mockNews{coverage: &model.NewsCoverage{TotalArticles: 0, Score: 0}},
		nil)

	result, err := e.Analyze(context.Background(),
		"BREAKING: the president was sworn in for a third term this morning, sources say, with no cameras allowed anywhere near the ceremony", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if result.Components.Consistency != 20 {
		t.Errorf("Consistency = %d, want 20 for suspicious silence", result.Components.Consistency)
	}

	found := false
	for _, flag := range result.RedFlags {
		if strings.Contains(flag, "No mainstream media coverage") {
			found = true
		}
	}
	if !found {
		t.Errorf("RedFlags = %v, want suspicious-silence flag", result.RedFlags)
	}
}

func TestAnalyzeShortClaimFlag(t *testing.T) {
	e := New(model.DefaultConfig(), nil, nil, nil)

	result, err := e.Analyze(context.Background(), "Aliens landed.", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	found := false
	for _, flag := range result.RedFlags {
		if strings.Contains(flag, "too short to verify") {
			found = true
		}
	}
	if !found {
		t.Errorf("RedFlags = %v, want short-content flag", result.RedFlags)
	}

	// Same text with a source URL is not flagged as short
	withURL, err := e.Analyze(context.Background(), "Aliens landed.", "https://example.org/story")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	for _, flag := range withURL.RedFlags {
		if strings.Contains(flag, "too short to verify") {
			t.Errorf("RedFlags = %v, short-content flag should need a missing URL", withURL.RedFlags)
		}
	}
}

func TestAnalyzeSuspiciousSourceFlag(t *testing.T) {
	e := New(model.DefaultConfig(), nil, nil, nil)

	result, err := e.Analyze(context.Background(),
		"A lengthy article about current events that goes on and on without saying anything of verifiable substance at any point",
		"https://real-raw-news.com/article")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	found := false
	for _, flag := range result.RedFlags {
		if strings.Contains(flag, "Suspicious Source") {
			found = true
		}
	}
	if !found {
		t.Errorf("RedFlags = %v, want suspicious-source flag", result.RedFlags)
	}
}

func TestAnalyzeAdjudicationAuthoritative(t *testing.T) {
	score := 15
	oracle := &mockOracle{
		adjudication: &llm.Adjudication{
			ReasoningSummary: "Fact-checkers rated this false and no trusted outlet corroborates it.",
			Verdict:          model.VerdictLikelyFake,
			Category:         model.CategoryHealth,
			ConfidenceScore:  &score,
			Warnings:         []string{"Contradicted by medical consensus"},
			Tone:             model.Sentiment{Polarity: -0.5, Subjectivity: 0.7},
		},
	}

	e := New(model.DefaultConfig(),
		&mockFactCheck{match: &model.FactCheckMatch{Publisher: "Snopes", Rating: "False", Score: 0}},
		nil, nil)
	e.SetAdjudicator(llm.NewAdjudicatorWithProvider(oracle, time.Second))

	result, err := e.Analyze(context.Background(),
		"Doctors confirm a miracle vaccine side effect that the hospital system refuses to acknowledge publicly", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if !result.Adjudicated {
		t.Error("Adjudicated = false, want true")
	}
	if result.CredibilityScore != 15 {
		t.Errorf("CredibilityScore = %d, want oracle override 15", result.CredibilityScore)
	}
	if result.Verdict != model.VerdictLikelyFake {
		t.Errorf("Verdict = %q, want oracle verdict", result.Verdict)
	}
	if result.Category != model.CategoryHealth {
		t.Errorf("Category = %q, want oracle category", result.Category)
	}
	if result.Explanation != oracle.adjudication.ReasoningSummary {
		t.Errorf("Explanation = %q, want oracle reasoning", result.Explanation)
	}

	foundWarning := false
	for _, flag := range result.RedFlags {
		if flag == "Contradicted by medical consensus" {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Errorf("RedFlags = %v, want oracle warning appended", result.RedFlags)
	}

	if oracle.lastRequest.ProvisionalScore == 0 && oracle.lastRequest.ClaimText == "" {
		t.Error("oracle did not receive the evidence bundle")
	}
}

func TestAnalyzeOracleFailureFallsBack(t *testing.T) {
	oracle := &mockOracle{err: errors.New("oracle unreachable")}

	e := New(model.DefaultConfig(), nil, nil, nil)
	e.SetAdjudicator(llm.NewAdjudicatorWithProvider(oracle, time.Second))

	result, err := e.Analyze(context.Background(),
		"The election commission announced new polling locations for the senate race across the state next month", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v, oracle failure must not propagate", err)
	}

	if result.Adjudicated {
		t.Error("Adjudicated = true after oracle failure")
	}
	if result.Verdict != model.VerdictMixed {
		t.Errorf("Verdict = %q, want fallback verdict for score 40", result.Verdict)
	}
	if result.Category != model.CategoryPolitics {
		t.Errorf("Category = %q, want keyword fallback Politics", result.Category)
	}
}

func TestAnalyzeCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(model.DefaultConfig(), &mockFactCheck{}, &mockNews{}, nil)

	if _, err := e.Analyze(ctx, "Some claim that will never be analyzed because the caller already gave up", ""); err == nil {
		t.Fatal("Analyze() with cancelled context expected error")
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	e := New(model.DefaultConfig(),
		&mockFactCheck{match: &model.FactCheckMatch{Rating: "True", Score: 100}},
		&mockNews{coverage: &model.NewsCoverage{TotalArticles: 10, HasTrustedCoverage: true, Score: 100,
			TrustedArticles: []model.TrustedArticle{{Source: "BBC"}, {Source: "CNN"}, {Source: "Reuters"}}}},
		nil)

	texts := []string{
		"YOU WON'T BELIEVE THIS SHOCKING SECRET THE GOVERNMENT BANNED!!",
		"The quarterly report was filed on time.",
		"breaking news sources say the market crashed",
	}

	for _, text := range texts {
		result, err := e.Analyze(context.Background(), text, "")
		if err != nil {
			t.Fatalf("Analyze(%q) error = %v", text, err)
		}
		if result.CredibilityScore < 0 || result.CredibilityScore > 100 {
			t.Errorf("CredibilityScore = %d out of bounds", result.CredibilityScore)
		}
		if !result.Verdict.Valid() {
			t.Errorf("Verdict = %q not in fixed set", result.Verdict)
		}
		if !result.Category.Valid() {
			t.Errorf("Category = %q not in fixed set", result.Category)
		}
		if result.AnalyzedAt.IsZero() {
			t.Error("AnalyzedAt not set")
		}
	}
}
