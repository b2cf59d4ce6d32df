package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
	"github.com/Obaid38/USDeathsByPolice/internal/stats"
)

// Renderer writes reports to the terminal and to artifact files
type Renderer struct {
	out           io.Writer
	includeFooter bool
}

// NewRenderer creates a renderer writing terminal output to stdout
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{
		out:           os.Stdout,
		includeFooter: includeFooter,
	}
}

// NewRendererTo creates a renderer writing terminal output to w
func NewRendererTo(w io.Writer, includeFooter bool) *Renderer {
	return &Renderer{
		out:           w,
		includeFooter: includeFooter,
	}
}

// RenderStats prints the formatted statistics sections: overview, yearly
// trends, demographics, age, and top states
func (r *Renderer) RenderStats(rep *model.Report) {
	r.section("BASIC DATASET OVERVIEW")
	fmt.Fprintf(r.out, "Records:     %s (%d rows skipped)\n", comma(rep.Overview.TotalRecords), rep.Overview.SkippedRows)
	fmt.Fprintf(r.out, "Date range:  %s to %s\n",
		rep.Overview.DateMin.Format("2006-01-02"), rep.Overview.DateMax.Format("2006-01-02"))
	fmt.Fprintf(r.out, "Columns:     %s\n", strings.Join(rep.Overview.Columns, ", "))

	r.section("YEARLY TRENDS")
	table := r.newTable([]string{"Year", "Shootings"})
	for _, yc := range rep.Temporal.Yearly {
		table.Append([]string{strconv.Itoa(yc.Year), comma(yc.Count)})
	}
	table.Render()

	r.section("RACE/ETHNICITY BREAKDOWN")
	table = r.newTable([]string{"Race", "Count", "% of Total"})
	for _, rc := range rep.Demographics.Races {
		table.Append([]string{rc.Race.Label(), comma(rc.Count), fmt.Sprintf("%.2f%%", rc.Percent)})
	}
	table.Render()

	if len(rep.Demographics.Disparity) > 0 {
		r.section("SHOOTING RATE VS POPULATION RATE")
		table = r.newTable([]string{"Race", "% of Shootings", "% of Population", "Ratio"})
		for _, row := range rep.Demographics.Disparity {
			table.Append([]string{
				row.Race.Label(),
				fmt.Sprintf("%.1f%%", row.ShootingPct),
				fmt.Sprintf("%.1f%%", row.PopulationPct),
				fmt.Sprintf("%.2f", row.Ratio),
			})
		}
		table.Render()
	}

	if ageStats := rep.Demographics.AgeStats; ageStats != nil {
		r.section("AGE STATISTICS")
		fmt.Fprintf(r.out, "count  %d\n", ageStats.Count)
		fmt.Fprintf(r.out, "mean   %.1f\n", ageStats.Mean)
		fmt.Fprintf(r.out, "std    %.1f\n", ageStats.StdDev)
		fmt.Fprintf(r.out, "min    %.0f\n", ageStats.Min)
		fmt.Fprintf(r.out, "25%%    %.1f\n", ageStats.Q1)
		fmt.Fprintf(r.out, "50%%    %.1f\n", ageStats.Median)
		fmt.Fprintf(r.out, "75%%    %.1f\n", ageStats.Q3)
		fmt.Fprintf(r.out, "max    %.0f\n", ageStats.Max)
	}

	r.section("GEOGRAPHIC DISTRIBUTION (TOP 10 STATES)")
	table = r.newTable([]string{"State", "Shootings", "% of Total"})
	states := rep.Geography.TopStates
	if len(states) > 10 {
		states = states[:10]
	}
	for _, sc := range states {
		table.Append([]string{sc.Name, comma(sc.Count), fmt.Sprintf("%.1f%%", sc.Percent)})
	}
	table.Render()
}

// RenderSummary prints the final comprehensive text summary
func (r *Renderer) RenderSummary(rep *model.Report) {
	bar := strings.Repeat("=", 60)
	fmt.Fprintln(r.out, bar)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "COMPREHENSIVE ANALYSIS SUMMARY")
	fmt.Fprintln(r.out, bar)

	fmt.Fprintln(r.out)
	r.heading("OVERALL STATISTICS:")
	fmt.Fprintf(r.out, "   - Total fatal shootings: %s\n", comma(rep.Overview.TotalRecords))
	fmt.Fprintf(r.out, "   - Years covered: %d\n", rep.Overview.YearsCovered)
	fmt.Fprintf(r.out, "   - Average per year: %.1f\n", rep.Overview.AveragePerYear)
	fmt.Fprintf(r.out, "   - Date range: %s to %s\n",
		rep.Overview.DateMin.Format("2006-01-02"), rep.Overview.DateMax.Format("2006-01-02"))

	if len(rep.Demographics.Races) > 0 {
		fmt.Fprintln(r.out)
		r.heading("DEMOGRAPHIC BREAKDOWN:")
		races := rep.Demographics.Races
		if len(races) > 5 {
			races = races[:5]
		}
		for _, rc := range races {
			fmt.Fprintf(r.out, "   - %s: %s (%.1f%%)\n", rc.Race.Label(), comma(rc.Count), rc.Percent)
		}
	}

	if ageStats := rep.Demographics.AgeStats; ageStats != nil {
		fmt.Fprintln(r.out)
		r.heading("AGE STATISTICS:")
		fmt.Fprintf(r.out, "   - Average age: %.1f years\n", ageStats.Mean)
		fmt.Fprintf(r.out, "   - Median age: %.1f years\n", ageStats.Median)
		fmt.Fprintf(r.out, "   - Age range: %.0f - %.0f years\n", ageStats.Min, ageStats.Max)
	}

	if len(rep.Geography.TopStates) > 0 {
		fmt.Fprintln(r.out)
		r.heading("TOP 5 STATES:")
		states := rep.Geography.TopStates
		if len(states) > 5 {
			states = states[:5]
		}
		for _, sc := range states {
			fmt.Fprintf(r.out, "   - %s: %s (%.1f%%)\n", sc.Name, comma(sc.Count), sc.Percent)
		}
	}

	fmt.Fprintln(r.out)
	r.heading("TEMPORAL PATTERNS:")
	fmt.Fprintf(r.out, "   - Highest year: %d (%s shootings)\n", rep.Trend.PeakYear, comma(rep.Trend.PeakCount))
	fmt.Fprintf(r.out, "   - Lowest year: %d (%s shootings)\n", rep.Trend.LowYear, comma(rep.Trend.LowCount))
	fmt.Fprintf(r.out, "   - Overall trend: %+.1f%% change from first to last year\n", rep.Trend.ChangePct)

	if len(rep.Notes) > 0 {
		fmt.Fprintln(r.out)
		r.heading("IMPORTANT NOTES:")
		for _, note := range rep.Notes {
			fmt.Fprintf(r.out, "   - %s\n", note)
		}
	}

	fmt.Fprintln(r.out, bar)
}

// RenderExtended lists the declared-but-unimplemented analyses
func (r *Renderer) RenderExtended() {
	r.section("EXTENDED ANALYSES (NOT IMPLEMENTED)")
	for _, ea := range stats.ExtendedAnalyses() {
		fmt.Fprintf(r.out, "%s would require:\n", ea.Name)
		for i, req := range ea.Requires {
			fmt.Fprintf(r.out, "  %d. %s\n", i+1, req)
		}
		fmt.Fprintln(r.out)
	}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(rep *model.Report, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON report: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as a Markdown document
func (r *Renderer) RenderMarkdown(rep *model.Report, path string) error {
	var sb strings.Builder

	sb.WriteString("# Fatal Police Shootings Analysis\n\n")
	fmt.Fprintf(&sb, "Dataset: `%s`  \n", rep.Dataset)
	fmt.Fprintf(&sb, "Generated: %s\n\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))

	sb.WriteString("## Overview\n\n")
	fmt.Fprintf(&sb, "- Total fatal shootings: %s\n", comma(rep.Overview.TotalRecords))
	fmt.Fprintf(&sb, "- Years covered: %d (%s to %s)\n", rep.Overview.YearsCovered,
		rep.Overview.DateMin.Format("2006-01-02"), rep.Overview.DateMax.Format("2006-01-02"))
	fmt.Fprintf(&sb, "- Average per year: %.1f\n", rep.Overview.AveragePerYear)
	fmt.Fprintf(&sb, "- Rows skipped at load: %d\n\n", rep.Overview.SkippedRows)

	sb.WriteString("## Yearly Trend\n\n")
	sb.WriteString("| Year | Shootings |\n|------|-----------|\n")
	for _, yc := range rep.Temporal.Yearly {
		fmt.Fprintf(&sb, "| %d | %d |\n", yc.Year, yc.Count)
	}
	fmt.Fprintf(&sb, "\nChange from %d to %d: %+.1f%%\n\n",
		rep.Trend.FirstYear, rep.Trend.LastYear, rep.Trend.ChangePct)

	sb.WriteString("## Demographics\n\n")
	sb.WriteString("| Race | Count | % of Total |\n|------|-------|------------|\n")
	for _, rc := range rep.Demographics.Races {
		fmt.Fprintf(&sb, "| %s | %d | %.2f%% |\n", rc.Race.Label(), rc.Count, rc.Percent)
	}
	sb.WriteString("\n")

	if len(rep.Demographics.Disparity) > 0 {
		sb.WriteString("### Shooting Rate vs Population Rate\n\n")
		sb.WriteString("| Race | % of Shootings | % of Population | Ratio |\n|------|----------------|-----------------|-------|\n")
		for _, row := range rep.Demographics.Disparity {
			fmt.Fprintf(&sb, "| %s | %.1f%% | %.1f%% | %.2f |\n",
				row.Race.Label(), row.ShootingPct, row.PopulationPct, row.Ratio)
		}
		sb.WriteString("\n")
	}

	if len(rep.Demographics.Armed) > 0 {
		sb.WriteString("### Armed Status\n\n")
		sb.WriteString("| Status | Count |\n|--------|-------|\n")
		for _, ac := range rep.Demographics.Armed {
			fmt.Fprintf(&sb, "| %s | %d |\n", ac.Label, ac.Count)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Geography\n\n")
	sb.WriteString("### Top States\n\n| State | Count | % |\n|-------|-------|---|\n")
	for _, sc := range rep.Geography.TopStates {
		fmt.Fprintf(&sb, "| %s | %d | %.1f%% |\n", sc.Name, sc.Count, sc.Percent)
	}
	sb.WriteString("\n### Regions\n\n| Region | Count | % |\n|--------|-------|---|\n")
	for _, rc := range rep.Geography.Regions {
		fmt.Fprintf(&sb, "| %s | %d | %.1f%% |\n", rc.Region, rc.Count, rc.Percent)
	}
	sb.WriteString("\n")

	if len(rep.Notes) > 0 {
		sb.WriteString("## Notes\n\n")
		for _, note := range rep.Notes {
			fmt.Fprintf(&sb, "- %s\n", note)
		}
		sb.WriteString("\n")
	}

	if r.includeFooter {
		sb.WriteString("---\n\nGenerated by usdeaths. Statistical patterns do not imply causation.\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write Markdown report: %w", err)
	}

	return nil
}

// RenderNarrative writes the optional LLM narrative to its own file,
// keeping it clearly separated from the computed statistics
func (r *Renderer) RenderNarrative(n *model.Narrative, path string) error {
	if n == nil || n.SummaryMD == "" {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("# Narrative Summary (LLM-generated)\n\n")
	fmt.Fprintf(&sb, "Provider: %s/%s\n\n", n.Provider, n.Model)
	sb.WriteString("> This narrative was generated after all statistics were computed and does not affect them.\n\n")
	sb.WriteString(n.SummaryMD)
	sb.WriteString("\n")

	for _, warning := range n.Warnings {
		fmt.Fprintf(&sb, "\n**Warning:** %s\n", warning)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write narrative: %w", err)
	}

	return nil
}

// section prints a colored section header in the original report style
func (r *Renderer) section(title string) {
	fmt.Fprintln(r.out)
	color.New(color.FgYellow, color.Bold).Fprintf(r.out, "=== %s ===\n", title)
}

// heading prints a bold inline heading
func (r *Renderer) heading(text string) {
	color.New(color.Bold).Fprintln(r.out, text)
}

func (r *Renderer) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetBorder(false)
	return table
}

// comma formats an integer with thousands separators
func comma(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
