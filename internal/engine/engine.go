package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/heuristics"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/llm"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// ErrEmptyInput is returned when the claim text is empty after trimming.
// Callers are responsible for scraping and cleanup before analysis.
var ErrEmptyInput = errors.New("claim text is empty")

// shortClaimLimit marks claims too short to verify without a source URL
const shortClaimLimit = 150

// FactCheckSource looks a claim up in an external claim-review registry
type FactCheckSource interface {
	VerifyClaim(ctx context.Context, query string) (*model.FactCheckMatch, error)
}

// NewsSource measures mainstream coverage of a claim
type NewsSource interface {
	VerifyPresence(ctx context.Context, query string) (*model.NewsCoverage, error)
}

// Engine runs the full analysis pipeline for one claim: concurrent
// evidence collection, weighted fusion, red-flag assembly, and oracle
// adjudication with a deterministic fallback.
type Engine struct {
	cfg *model.Config

	factCheck FactCheckSource
	news      NewsSource

	clickbait   *heuristics.ClickbaitDetector
	sources     *heuristics.SourceChecker
	attribution *heuristics.AttributionChecker

	adjudicator *llm.Adjudicator
}

// New creates an engine. Either evidence source may be nil, in which case
// that signal is permanently absent and its neutral default applies.
func New(cfg *model.Config, factCheck FactCheckSource, news NewsSource, adjudicator *llm.Adjudicator) *Engine {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	return &Engine{
		cfg:         cfg,
		factCheck:   factCheck,
		news:        news,
		clickbait:   heuristics.NewClickbaitDetector(&cfg.Heuristics),
		sources:     heuristics.NewSourceChecker(&cfg.Heuristics),
		attribution: heuristics.NewAttributionChecker(&cfg.Heuristics),
		adjudicator: adjudicator,
	}
}

// SetAdjudicator wires the generative oracle; a nil or disabled
// adjudicator leaves the deterministic fallback in charge.
func (e *Engine) SetAdjudicator(a *llm.Adjudicator) {
	e.adjudicator = a
}

// evidenceBundle collects what the concurrent source lookups produced
type evidenceBundle struct {
	factCheck *model.FactCheckMatch
	coverage  *model.NewsCoverage

	clickbait     model.HeuristicScore
	sensational   model.HeuristicScore
	sentiment     model.Sentiment
	sourceCheck   model.HeuristicScore
	attribution   model.HeuristicScore
	hedgesMatched []string
}

// Analyze runs the pipeline for one claim. It never fails on degraded
// evidence sources; the only error paths are empty input and caller
// cancellation.
func (e *Engine) Analyze(ctx context.Context, text, sourceURL string) (*model.AnalysisResult, error) {
	claim := model.NewClaim(text, sourceURL)
	if claim.IsEmpty() {
		return nil, ErrEmptyInput
	}

	bundle := e.collectEvidence(ctx, claim)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	components := e.fuseComponents(claim, bundle)
	finalScore := FinalScore(components, e.cfg.Scoring)
	redFlags := e.assembleRedFlags(claim, bundle, components)

	result := &model.AnalysisResult{
		CredibilityScore: finalScore,
		RedFlags:         redFlags,
		Sentiment:        bundle.sentiment,
		Components:       components,
		FactCheck:        bundle.factCheck,
		NewsCoverage:     bundle.coverage,
		Heuristics: []model.HeuristicScore{
			bundle.clickbait,
			bundle.sensational,
			bundle.sourceCheck,
			bundle.attribution,
		},
		AnalyzedAt: time.Now().UTC(),
	}

	e.adjudicate(ctx, claim, result)
	return result, nil
}

// collectEvidence fans the three independent lookups out as goroutines
// and joins them. Each external call gets its own timeout derived from
// the caller's context, so cancellation propagates and one slow source
// cannot hold the run past its budget.
func (e *Engine) collectEvidence(ctx context.Context, claim model.Claim) evidenceBundle {
	var bundle evidenceBundle
	var wg sync.WaitGroup

	if e.factCheck != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lookupCtx, cancel := context.WithTimeout(ctx, e.sourceTimeout(e.cfg.FactCheck.Timeout))
			defer cancel()

			match, err := e.factCheck.VerifyClaim(lookupCtx, claim.QueryPrefix(e.cfg.FactCheck.QueryLimit))
			if err != nil {
				warnDegraded("fact-check", err)
				return
			}
			bundle.factCheck = match
		}()
	}

	if e.news != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lookupCtx, cancel := context.WithTimeout(ctx, e.sourceTimeout(e.cfg.News.Timeout))
			defer cancel()

			coverage, err := e.news.VerifyPresence(lookupCtx, claim.QueryPrefix(e.cfg.News.QueryLimit))
			if err != nil {
				warnDegraded("news", err)
				return
			}
			bundle.coverage = coverage
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		bundle.clickbait = e.clickbait.Detect(claim.Headline())
		bundle.sensational, bundle.sentiment = heuristics.AnalyzeSensationalism(claim.Text)
		bundle.sourceCheck = e.sources.Check(claim.SourceURL)
		bundle.attribution, bundle.hedgesMatched = e.attribution.Check(claim.Text)
	}()

	wg.Wait()
	return bundle
}

func (e *Engine) sourceTimeout(configured time.Duration) time.Duration {
	if configured > 0 {
		return configured
	}
	return 8 * time.Second
}

// fuseComponents maps the evidence bundle onto the component triple,
// applying the neutral defaults for absent signals.
func (e *Engine) fuseComponents(claim model.Claim, bundle evidenceBundle) model.ScoreComponents {
	components := model.NeutralComponents()

	if bundle.factCheck != nil {
		components.FactCheck = bundle.factCheck.Score
	}
	if bundle.coverage != nil {
		components.NewsPresence = bundle.coverage.Score
	}
	components.Consistency = ConsistencyScore(
		bundle.factCheck, bundle.coverage, claim.Text, e.cfg.Scoring.BreakingNewsMarker)

	return components
}

// assembleRedFlags builds the ordered warning list shown to the reader.
// Order is stable: coverage silence, then content shape, then the text
// heuristics, then source reputation.
func (e *Engine) assembleRedFlags(claim model.Claim, bundle evidenceBundle, components model.ScoreComponents) []string {
	flags := []string{}

	if components.Consistency == 20 {
		flags = append(flags, "No mainstream media coverage found for this major claim.")
	}
	if len(claim.Text) < shortClaimLimit && claim.SourceURL == "" {
		flags = append(flags, "Content is too short to verify accurately.")
	}
	if bundle.clickbait.Score > 0.6 {
		flags = append(flags, "Clickbait detected: "+bundle.clickbait.Reasoning)
	}
	if bundle.sensational.Score > 0.6 {
		flags = append(flags, "High Sensationalism: "+bundle.sensational.Reasoning)
	}
	if bundle.attribution.Score > 0.5 {
		flags = append(flags, "Unreliable attribution: "+bundle.attribution.Reasoning)
	}
	if bundle.sourceCheck.Status == model.SourceSuspicious {
		flags = append(flags, "Suspicious Source: "+bundle.sourceCheck.Reasoning)
	}

	return flags
}

// adjudicate asks the oracle for the final judgement and falls back to
// the deterministic ladder when the oracle is disabled or fails.
func (e *Engine) adjudicate(ctx context.Context, claim model.Claim, result *model.AnalysisResult) {
	if e.adjudicator.IsEnabled() {
		adjudication, err := e.adjudicator.Adjudicate(ctx, llm.Request{
			ClaimText:        claim.Text,
			ProvisionalScore: result.CredibilityScore,
			FactCheck:        result.FactCheck,
			NewsCoverage:     result.NewsCoverage,
			RedFlags:         result.RedFlags,
		})
		if err != nil {
			warnDegraded("adjudication", err)
		} else {
			e.applyAdjudication(result, adjudication)
			return
		}
	}

	result.Verdict = FallbackVerdict(result.CredibilityScore, e.cfg.Scoring)
	result.Category = InferCategory(claim.Text)
	result.Explanation = FallbackExplanation(result.CredibilityScore, result.RedFlags)
}

// applyAdjudication folds the oracle's judgement into the result. The
// oracle's verdict and score are authoritative when present.
func (e *Engine) applyAdjudication(result *model.AnalysisResult, adj *llm.Adjudication) {
	result.Verdict = adj.Verdict
	result.Category = adj.Category
	result.Explanation = adj.ReasoningSummary
	result.Adjudicated = true

	if adj.ConfidenceScore != nil {
		result.CredibilityScore = clamp(*adj.ConfidenceScore, 0, 100)
	}
	if adj.Tone != (model.Sentiment{}) {
		result.Sentiment = adj.Tone
	}
	result.RedFlags = append(result.RedFlags, adj.Warnings...)
}

func warnDegraded(source string, err error) {
	fmt.Fprintf(os.Stderr, "Warning: %s source degraded: %v\n", source, err)
}
