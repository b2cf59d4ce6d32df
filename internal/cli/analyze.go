package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
	"github.com/Obaid38/USDeathsByPolice/internal/pipeline"
	"github.com/Obaid38/USDeathsByPolice/internal/report"
	"github.com/spf13/cobra"
)

var (
	outDir   string
	noJSON   bool
	noMD     bool
	excel    bool
	noCharts bool
	noCache  bool
	noFooter bool
	extended bool
	timeout  time.Duration
	llmFlag  bool
	llmModel string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [csv-file]",
	Short: "Analyze a fatal police shootings CSV and generate reports",
	Long: `Analyze computes descriptive statistics from a CSV dataset:
- Temporal trends (yearly, monthly, day-of-week)
- Demographic breakdowns and racial disparity ratios
- Age distribution statistics
- Geographic distribution (states, cities, regions)
- Overall trend across the covered years

Reports are printed to the terminal and written as JSON, Markdown,
PNG charts, and optionally an Excel workbook.

Example:
  usdeaths analyze fatal-police-shootings-data.csv
  usdeaths analyze data.csv --out ./reports --excel
  usdeaths analyze data.csv --llm --llm-model gpt-4o-mini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outDir, "out", "", "output directory for report artifacts")
	analyzeCmd.Flags().BoolVar(&noJSON, "no-json", false, "skip the JSON report")
	analyzeCmd.Flags().BoolVar(&noMD, "no-md", false, "skip the Markdown report")
	analyzeCmd.Flags().BoolVar(&excel, "excel", false, "also export an Excel workbook")
	analyzeCmd.Flags().BoolVar(&noCharts, "no-charts", false, "skip PNG chart rendering")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the parsed-dataset cache")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().BoolVar(&extended, "extended", false, "list planned extended analyses")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmFlag, "llm", false, "enable LLM narrative generation")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	path := cfg.Dataset.Path
	if len(args) == 1 {
		path = args[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	result, err := p.AnalyzeFile(ctx, path)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d records (%d skipped)\n",
			result.Report.Overview.TotalRecords, result.Report.Overview.SkippedRows)
		fmt.Fprintf(os.Stderr, "✓ Covered %d years (%d-%d)\n",
			result.Report.Overview.YearsCovered,
			result.Report.Overview.DateMin.Year(), result.Report.Overview.DateMax.Year())
		if result.Report.Narrative != nil && result.Report.Narrative.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated narrative using %s/%s\n",
				result.Report.Narrative.Provider, result.Report.Narrative.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderOutputs(result, cfg.Output.Dir, reportBase(path), verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if extended {
		report.NewRenderer(cfg.Output.IncludeFooter).RenderExtended()
	}

	return nil
}

// buildConfig layers analyze flags over the defaults
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	cfg.Output.JSON = !noJSON
	cfg.Output.Markdown = !noMD
	cfg.Output.Excel = excel
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Charts.Enabled = !noCharts
	cfg.Cache.Enabled = !noCache

	if llmFlag {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}

// reportBase derives the artifact file stem from a dataset path
func reportBase(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "report"
	}
	return sanitizeFilename(base)
}

// sanitizeFilename sanitizes a string for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(s)

	if len(s) > 100 {
		s = s[:100]
	}

	return s
}
