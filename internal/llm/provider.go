// Package llm generates an optional narrative summary of a finished
// report. The narrative is produced after all statistics are computed and
// never affects them.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a narrative summary of the report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for narrative generation
type SummarizeRequest struct {
	// Report is the finished analysis report to narrate
	Report model.Report

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the narrative output
type SummarizeResponse struct {
	// Summary is the generated Markdown narrative
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for OpenAI-compatible endpoints
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// ConfigFromModel converts the app-level LLM config
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// BuildPrompt constructs the default narration prompt. The LLM is
// constrained to the numbers already computed; it must not introduce
// figures of its own or assert causes.
func BuildPrompt(report model.Report) string {
	var sb strings.Builder

	sb.WriteString(`You are narrating a descriptive-statistics report on fatal police shootings.

CRITICAL RULES:
1. Use ONLY the figures listed below. Do not introduce numbers from other sources.
2. Describe patterns; NEVER assert causes. Statistical patterns do not imply causation.
3. If a figure is absent below, say the data does not cover it.
4. Keep a neutral, factual register.

Report figures:
`)

	fmt.Fprintf(&sb, "- Total fatal shootings: %d\n", report.Overview.TotalRecords)
	fmt.Fprintf(&sb, "- Years covered: %d (%s to %s)\n", report.Overview.YearsCovered,
		report.Overview.DateMin.Format("2006-01-02"), report.Overview.DateMax.Format("2006-01-02"))
	fmt.Fprintf(&sb, "- Average per year: %.1f\n", report.Overview.AveragePerYear)
	fmt.Fprintf(&sb, "- Trend: %+.1f%% change from %d to %d\n",
		report.Trend.ChangePct, report.Trend.FirstYear, report.Trend.LastYear)
	fmt.Fprintf(&sb, "- Peak year: %d (%d); lowest year: %d (%d)\n",
		report.Trend.PeakYear, report.Trend.PeakCount, report.Trend.LowYear, report.Trend.LowCount)

	for _, rc := range report.Demographics.Races {
		fmt.Fprintf(&sb, "- Race %s: %d shootings (%.1f%% of all records)\n", rc.Race.Label(), rc.Count, rc.Percent)
	}
	for _, row := range report.Demographics.Disparity {
		fmt.Fprintf(&sb, "- Disparity %s: %.1f%% of shootings vs %.1f%% of population (ratio %.2f)\n",
			row.Race.Label(), row.ShootingPct, row.PopulationPct, row.Ratio)
	}
	if ageStats := report.Demographics.AgeStats; ageStats != nil {
		fmt.Fprintf(&sb, "- Age: mean %.1f, median %.1f, range %.0f-%.0f\n",
			ageStats.Mean, ageStats.Median, ageStats.Min, ageStats.Max)
	}
	for i, sc := range report.Geography.TopStates {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&sb, "- State %s: %d (%.1f%%)\n", sc.Name, sc.Count, sc.Percent)
	}
	for _, rc := range report.Geography.Regions {
		fmt.Fprintf(&sb, "- Region %s: %d (%.1f%%)\n", rc.Region, rc.Count, rc.Percent)
	}

	sb.WriteString("\nProvide a 4-6 sentence Markdown narrative of the patterns above, with the causation caveat stated once.")

	return sb.String()
}
