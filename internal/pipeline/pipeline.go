// Package pipeline orchestrates the analysis pass: load, aggregate,
// render.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Obaid38/USDeathsByPolice/internal/cache"
	"github.com/Obaid38/USDeathsByPolice/internal/charts"
	"github.com/Obaid38/USDeathsByPolice/internal/dataset"
	"github.com/Obaid38/USDeathsByPolice/internal/exporter"
	"github.com/Obaid38/USDeathsByPolice/internal/llm"
	"github.com/Obaid38/USDeathsByPolice/internal/model"
	"github.com/Obaid38/USDeathsByPolice/internal/report"
	"github.com/Obaid38/USDeathsByPolice/internal/stats"
)

// Pipeline orchestrates the complete analysis process
type Pipeline struct {
	loader     *dataset.CachingLoader
	builder    *report.Builder
	renderer   *report.Renderer
	charts     *charts.Renderer
	exporter   *exporter.ExcelExporter
	summarizer *llm.Summarizer // Optional narrative generator (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var datasetCache cache.Cache
	if cfg.Cache.Enabled {
		datasetCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, resolveCacheDir(cfg), cfg.Cache.DiskTTL)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		loader:     dataset.NewCachingLoader(dataset.NewLoader(cfg.Dataset.DateLayout), datasetCache, cfg.Cache.DiskTTL),
		builder:    report.NewBuilder(),
		renderer:   report.NewRenderer(cfg.Output.IncludeFooter),
		charts:     charts.NewRenderer(cfg.Charts),
		exporter:   exporter.NewExcelExporter(),
		summarizer: summarizer,
		config:     cfg,
	}
}

// AnalysisResult contains the complete analysis of one dataset snapshot
type AnalysisResult struct {
	Source string        // Dataset path
	Report *model.Report // Computed statistics
	Ages   []float64     // Raw age sample, for the histogram panel
}

// AnalyzeFile loads a dataset snapshot and computes its report. The
// narrative, when enabled, is generated after every statistic is final.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*AnalysisResult, error) {
	lr, err := p.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	rep := p.builder.Build(path, lr)

	if p.summarizer != nil && p.summarizer.IsEnabled() {
		narrative, err := p.summarizer.GenerateNarrative(ctx, *rep)
		if err != nil {
			// A failed narrative never fails the analysis
			fmt.Fprintf(os.Stderr, "Warning: narrative generation failed: %v\n", err)
		} else if narrative != nil {
			rep.Narrative = narrative
		}
	}

	return &AnalysisResult{
		Source: path,
		Report: rep,
		Ages:   stats.Ages(lr.Incidents),
	}, nil
}

// RenderOutputs writes every configured artifact for a result into outDir,
// using base as the artifact file stem, then prints the terminal report.
func (p *Pipeline) RenderOutputs(result *AnalysisResult, outDir, base string, verbose bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rep := result.Report

	if p.config.Output.JSON {
		path := filepath.Join(outDir, base+".json")
		if err := p.renderer.RenderJSON(rep, path); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", path)
		}
	}

	if p.config.Output.Markdown {
		path := filepath.Join(outDir, base+".md")
		if err := p.renderer.RenderMarkdown(rep, path); err != nil {
			return fmt.Errorf("render Markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", path)
		}
	}

	if p.config.Charts.Enabled {
		chartDir := filepath.Join(outDir, base+"-charts")
		written, err := p.charts.RenderAll(rep, result.Ages, chartDir)
		if err != nil {
			return fmt.Errorf("render charts: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote %d charts: %s\n", len(written), chartDir)
		}
	}

	if p.config.Output.Excel {
		path := filepath.Join(outDir, base+".xlsx")
		if err := p.exporter.Export(rep, path); err != nil {
			return fmt.Errorf("export Excel: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Excel: %s\n", path)
		}
	}

	if rep.Narrative != nil && rep.Narrative.Enabled {
		path := filepath.Join(outDir, base+".llm.md")
		if err := p.renderer.RenderNarrative(rep.Narrative, path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write narrative: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote narrative: %s\n", path)
		}
	}

	// Terminal report last, so artifact status lines stay together
	p.renderer.RenderStats(rep)
	p.renderer.RenderSummary(rep)

	return nil
}

// resolveCacheDir returns the configured cache directory, defaulting to
// ~/.usdeaths/cache
func resolveCacheDir(cfg *model.Config) string {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".usdeaths-cache"
	}
	return filepath.Join(home, ".usdeaths", "cache")
}
