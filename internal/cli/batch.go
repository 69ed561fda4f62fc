package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/worker"
)

var (
	concurrency  int
	batchOut     string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple claims from a file in parallel",
	Long: `Batch analyzes many claims concurrently:
- Read claims from the input file (one per line, '#' comments skipped)
- Analyze claims in parallel with a configurable worker count
- Print a per-claim summary and optionally write all results as JSON

Example:
  newsdetect batch claims.txt
  newsdetect batch claims.txt --concurrency 8 --json results.json
  newsdetect batch claims.txt --llm groq --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: config batch_workers)")
	batchCmd.Flags().StringVar(&batchOut, "json", "", "write all results as a JSON array to this path")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response caching (force fresh lookups)")
	batchCmd.Flags().StringVar(&llmProvider, "llm", "", "LLM adjudicator provider (openai, groq, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

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

	workers := concurrency
	if workers <= 0 {
		workers = cfg.Concurrency.BatchWorkers
	}

	e, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Input file: %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers: %d\n\n", workers)

	processor := worker.NewBatchProcessor(e, workers)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", truncate(result.Text, 60), result.Error)
			continue
		}
		successCount++
		fmt.Printf("%3d/100  %-20s  %s\n",
			result.Result.CredibilityScore, result.Result.Verdict, truncate(result.Text, 70))
	}

	fmt.Fprintf(os.Stderr, "\nTotal: %d  Success: %d  Failures: %d\n",
		len(results), successCount, failureCount)

	if batchOut != "" {
		if err := writeBatchJSON(results, batchOut); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Results written to %s\n", batchOut)
	}

	return nil
}

// batchEntry is the JSON shape for one batch result
type batchEntry struct {
	Claim  string      `json:"claim"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func writeBatchJSON(results []*worker.AnalyzeResult, path string) error {
	entries := make([]batchEntry, 0, len(results))
	for _, r := range results {
		entry := batchEntry{Claim: r.Text}
		if r.Error != nil {
			entry.Error = r.Error.Error()
		} else {
			entry.Result = r.Result
		}
		entries = append(entries, entry)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
