package worker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// MockAnalyzer implements Analyzer
type MockAnalyzer struct {
	ShouldError bool
}

func (m *MockAnalyzer) Analyze(ctx context.Context, text, sourceURL string) (*model.AnalysisResult, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("analysis error")
	}
	return &model.AnalysisResult{
		CredibilityScore: 40,
		Verdict:          model.VerdictMixed,
		Category:         model.CategoryOthers,
	}, nil
}

func TestBatchProcessor_ProcessClaims(t *testing.T) {
	processor := NewBatchProcessor(&MockAnalyzer{}, 2)

	claims := []string{
		"The moon landing was staged",
		"A new vaccine was approved yesterday",
		"The market closed higher on Friday",
	}

	results := processor.ProcessClaims(context.Background(), claims)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for _, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %q: %v", res.Text, res.Error)
			continue
		}
		if res.Result == nil {
			t.Errorf("expected result for %q", res.Text)
		}
	}
}

func TestBatchProcessor_ProcessClaims_Error(t *testing.T) {
	processor := NewBatchProcessor(&MockAnalyzer{ShouldError: true}, 2)

	results := processor.ProcessClaims(context.Background(), []string{"some claim"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Result != nil {
		t.Error("expected nil result on error")
	}
}

func TestBatchProcessor_ProcessClaims_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockAnalyzer{}, 2)

	results := processor.ProcessClaims(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadClaimsFromFile(t *testing.T) {
	content := `The moon landing was staged
# comment
A new vaccine was approved yesterday

The moon landing was staged
The market closed higher on Friday   `

	tmpfile, err := os.CreateTemp("", "claims")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	claims, err := ReadClaimsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadClaimsFromFile failed: %v", err)
	}

	expected := []string{
		"The moon landing was staged",
		"A new vaccine was approved yesterday",
		"The market closed higher on Friday",
	}

	if len(claims) != len(expected) {
		t.Fatalf("expected %d claims, got %d: %v", len(expected), len(claims), claims)
	}
	for i, want := range expected {
		if claims[i] != want {
			t.Errorf("claim %d = %q, want %q", i, claims[i], want)
		}
	}
}

func TestReadClaimsFromFile_Missing(t *testing.T) {
	if _, err := ReadClaimsFromFile("/nonexistent/claims.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
