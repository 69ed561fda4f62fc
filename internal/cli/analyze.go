package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

var (
	sourceURL   string
	outJSON     string
	timeout     time.Duration
	noCache     bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <claim text>",
	Short: "Score the credibility of a single news claim",
	Long: `Analyze runs the full evidence pipeline for one claim:
- Query fact-check registries for existing reviews
- Measure mainstream news corroboration
- Run clickbait, sensationalism, attribution, and source heuristics
- Fuse the signals into a 0-100 credibility score with verdict,
  category, explanation, and red flags
- Optionally submit the evidence to an LLM adjudicator for review

Example:
  newsdetect analyze "BREAKING: President signs controversial new law"
  newsdetect analyze "Miracle cure discovered" --url https://example.com/story
  newsdetect analyze "Stock market hits record high" --llm groq`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&sourceURL, "url", "", "source URL of the claim (improves source heuristics)")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "write the full result as JSON to this path")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response caching (force fresh lookups)")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm", "", "LLM adjudicator provider (openai, groq, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	e, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", truncate(text, 80))
		fmt.Fprintf(os.Stderr, "Timeout: %v\n\n", timeout)
	}

	result, err := e.Analyze(ctx, text, sourceURL)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printResult(result)

	if outJSON != "" {
		if err := writeJSON(result, outJSON); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		fmt.Fprintf(os.Stderr, "\n✓ Result written to %s\n", outJSON)
	}

	return nil
}

// printResult renders a result for the terminal
func printResult(result *model.AnalysisResult) {
	fmt.Printf("\n")
	fmt.Printf("  Credibility:  %d/100\n", result.CredibilityScore)
	fmt.Printf("  Verdict:      %s\n", result.Verdict)
	fmt.Printf("  Category:     %s\n", result.Category)
	fmt.Printf("\n")
	fmt.Printf("  %s\n", result.Explanation)

	if result.FactCheck != nil {
		fmt.Printf("\n  Fact-check: %s rated it %q\n", result.FactCheck.Publisher, result.FactCheck.Rating)
		if result.FactCheck.ReviewURL != "" {
			fmt.Printf("    %s\n", result.FactCheck.ReviewURL)
		}
	}

	if result.NewsCoverage != nil {
		fmt.Printf("\n  Coverage: %d articles, %d from trusted outlets\n",
			result.NewsCoverage.TotalArticles, len(result.NewsCoverage.TrustedArticles))
	}

	if len(result.RedFlags) > 0 {
		fmt.Printf("\n  Red flags:\n")
		for _, flag := range result.RedFlags {
			fmt.Printf("    - %s\n", flag)
		}
	}

	if result.Adjudicated {
		fmt.Printf("\n  (verdict reviewed by LLM adjudicator)\n")
	}
	fmt.Printf("\n")
}

func writeJSON(result *model.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
