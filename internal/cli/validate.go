package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rpatil/sowcheck/internal/llm"
	"github.com/rpatil/sowcheck/internal/model"
	"github.com/rpatil/sowcheck/internal/pipeline"
	"github.com/rpatil/sowcheck/internal/search"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	highOnly    bool
	timeout     time.Duration
	searchURL   string
	searchIndex string
	noCache     bool
	noFooter    bool
	llmProvider string
	llmModel    string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <document-id>",
	Short: "Validate a single SOW document and generate an issue report",
	Long: `Validate runs the full check on one indexed SOW document:
- Identify the SOW type (Time & Materials or Fixed-Fee)
- Resolve catalog sections against the index's section names
- Retrieve section content and validate it against type-specific questions
- Report issues by severity with suggested resolutions

Example:
  sowcheck validate sow-2024-0117
  sowcheck validate sow-2024-0117 --json report.json --md report.md
  sowcheck validate sow-2024-0117 --llm-provider ollama --llm-model llama3`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	// Output flags
	validateCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	validateCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	validateCmd.Flags().BoolVar(&highOnly, "high-only", false, "expand only high-severity sections in Markdown output")
	validateCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Search backend flags
	validateCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall validation timeout")
	validateCmd.Flags().StringVar(&searchURL, "search-url", "", "search service base URL (overrides config)")
	validateCmd.Flags().StringVar(&searchIndex, "index", "", "search index name (overrides config)")
	validateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable retrieval cache (force fresh searches)")

	// LLM flags
	validateCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	validateCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4.1", "LLM model name")
}

func runValidate(cmd *cobra.Command, args []string) error {
	documentID := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Validating: %s\n", documentID)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	backend := search.NewHTTPBackend(cfg.Search)
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return fmt.Errorf("create LLM provider: %w", err)
	}

	p := pipeline.NewPipeline(cfg, backend, provider)

	state := model.NewRunState()
	report, err := p.Run(ctx, state, documentID)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ SOW type: %s\n", report.Variant)
		fmt.Fprintf(os.Stderr, "✓ Validated %d sections\n", len(report.Sections))
		fmt.Fprintf(os.Stderr, "✓ Found %d issues\n", len(report.Issues))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, highOnly, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig merges defaults with flag and environment overrides.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if searchURL != "" {
		cfg.Search.BaseURL = searchURL
	}
	if searchIndex != "" {
		cfg.Search.Index = searchIndex
	}
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		if baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
