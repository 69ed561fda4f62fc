package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// Analyzer runs the full credibility analysis for one claim
type Analyzer interface {
	Analyze(ctx context.Context, text, sourceURL string) (*model.AnalysisResult, error)
}

// AnalyzeJob is one claim queued for batch analysis
type AnalyzeJob struct {
	Text     string
	Analyzer Analyzer
}

// Execute runs the analysis for the job's claim
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.Analyze(ctx, j.Text, "")
	return &AnalyzeResult{
		Text:   j.Text,
		Result: result,
		Error:  err,
	}
}

// AnalyzeResult pairs a claim with its analysis outcome
type AnalyzeResult struct {
	Text   string
	Result *model.AnalysisResult
	Error  error
}

// GetError returns the error from the analysis
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many claims concurrently through a worker pool
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessClaims analyzes the given claims concurrently
func (b *BatchProcessor) ProcessClaims(ctx context.Context, claims []string) []*AnalyzeResult {
	if len(claims) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPoolContext(ctx, b.concurrency)
	pool.Start()

	for _, text := range claims {
		pool.Submit(&AnalyzeJob{
			Text:     text,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads claims from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	claims, err := ReadClaimsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read claims: %w", err)
	}

	return b.ProcessClaims(ctx, claims), nil
}

// ReadClaimsFromFile reads claims from a file, one per line. Blank lines
// and lines starting with '#' are skipped; duplicates are dropped.
func ReadClaimsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var claims []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		claims = append(claims, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return claims, nil
}
