// Package charts renders the fixed set of analysis charts as PNG files,
// grouped by analysis dimension: temporal, demographic, geographic.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

// Renderer renders report aggregates as PNG charts
type Renderer struct {
	width  vg.Length
	height vg.Length
}

// NewRenderer creates a chart renderer with the configured panel size
func NewRenderer(cfg model.ChartsConfig) *Renderer {
	width := cfg.WidthInches
	if width <= 0 {
		width = 8
	}
	height := cfg.HeightInches
	if height <= 0 {
		height = 5
	}
	return &Renderer{
		width:  vg.Length(width) * vg.Inch,
		height: vg.Length(height) * vg.Inch,
	}
}

// RenderAll writes every chart panel into dir and returns the paths
// written. Ages is the raw age sample for the histogram panel; it may be
// empty.
func (r *Renderer) RenderAll(rep *model.Report, ages []float64, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create charts dir: %w", err)
	}

	type panel struct {
		name   string
		render func(path string) error
	}

	panels := []panel{
		{"temporal_yearly.png", func(p string) error { return r.yearlyTrend(rep, p) }},
		{"temporal_monthly.png", func(p string) error { return r.monthly(rep, p) }},
		{"temporal_weekday.png", func(p string) error { return r.weekday(rep, p) }},
		{"demographic_race_share.png", func(p string) error { return r.raceShare(rep, p) }},
		{"demographic_disparity.png", func(p string) error { return r.disparity(rep, p) }},
		{"demographic_gender.png", func(p string) error { return r.gender(rep, p) }},
		{"demographic_armed.png", func(p string) error { return r.armed(rep, p) }},
		{"geographic_states.png", func(p string) error { return r.topStates(rep, p) }},
		{"geographic_cities.png", func(p string) error { return r.topCities(rep, p) }},
		{"geographic_regions.png", func(p string) error { return r.regions(rep, p) }},
	}

	if len(ages) > 0 {
		panels = append(panels, panel{"temporal_age_histogram.png", func(p string) error {
			return r.ageHistogram(rep, ages, p)
		}})
	}

	var written []string
	for _, pn := range panels {
		path := filepath.Join(dir, pn.name)
		if err := pn.render(path); err != nil {
			return written, fmt.Errorf("render %s: %w", pn.name, err)
		}
		written = append(written, path)
	}

	return written, nil
}

func (r *Renderer) yearlyTrend(rep *model.Report, path string) error {
	p := plot.New()
	p.Title.Text = "Fatal Police Shootings by Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Fatal Shootings"

	pts := make(plotter.XYs, len(rep.Temporal.Yearly))
	for i, yc := range rep.Temporal.Yearly {
		pts[i].X = float64(yc.Year)
		pts[i].Y = float64(yc.Count)
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(2)

	p.Add(plotter.NewGrid(), line, points)
	return p.Save(r.width, r.height, path)
}

func (r *Renderer) monthly(rep *model.Report, path string) error {
	values := make(plotter.Values, len(rep.Temporal.Monthly))
	labels := make([]string, len(rep.Temporal.Monthly))
	for i, mc := range rep.Temporal.Monthly {
		values[i] = float64(mc.Count)
		labels[i] = mc.Month.String()[:3]
	}
	return r.barChart("Fatal Shootings by Month", "Month", "Number of Shootings", labels, values, false, path)
}

func (r *Renderer) weekday(rep *model.Report, path string) error {
	values := make(plotter.Values, len(rep.Temporal.DayOfWeek))
	labels := make([]string, len(rep.Temporal.DayOfWeek))
	for i, wc := range rep.Temporal.DayOfWeek {
		values[i] = float64(wc.Count)
		labels[i] = wc.Day.String()[:3]
	}
	return r.barChart("Fatal Shootings by Day of Week", "Day of Week", "Total Number of Shootings", labels, values, false, path)
}

func (r *Renderer) ageHistogram(rep *model.Report, ages []float64, path string) error {
	p := plot.New()
	title := "Age Distribution of Victims"
	if ageStats := rep.Demographics.AgeStats; ageStats != nil {
		title = fmt.Sprintf("Age Distribution of Victims (mean %.1f, median %.1f)", ageStats.Mean, ageStats.Median)
	}
	p.Title.Text = title
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(ages), 30)
	if err != nil {
		return err
	}

	p.Add(hist)
	return p.Save(r.width, r.height, path)
}

func (r *Renderer) raceShare(rep *model.Report, path string) error {
	values := make(plotter.Values, len(rep.Demographics.Races))
	labels := make([]string, len(rep.Demographics.Races))
	for i, rc := range rep.Demographics.Races {
		values[i] = rc.Percent
		labels[i] = string(rc.Race)
	}
	return r.barChart("Fatal Shootings by Race/Ethnicity", "Race/Ethnicity", "% of Shootings", labels, values, false, path)
}

// disparity renders the grouped shooting-share vs population-share bars
func (r *Renderer) disparity(rep *model.Report, path string) error {
	p := plot.New()
	p.Title.Text = "Shootings vs Population Distribution"
	p.X.Label.Text = "Race/Ethnicity"
	p.Y.Label.Text = "Percentage"

	rows := rep.Demographics.Disparity
	shooting := make(plotter.Values, len(rows))
	population := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, row := range rows {
		shooting[i] = row.ShootingPct
		population[i] = row.PopulationPct
		labels[i] = string(row.Race)
	}

	barWidth := vg.Points(16)

	shootingBars, err := plotter.NewBarChart(shooting, barWidth)
	if err != nil {
		return err
	}
	shootingBars.Offset = -barWidth / 2
	shootingBars.Color = plotutil.Color(0)

	populationBars, err := plotter.NewBarChart(population, barWidth)
	if err != nil {
		return err
	}
	populationBars.Offset = barWidth / 2
	populationBars.Color = plotutil.Color(1)

	p.Add(shootingBars, populationBars)
	p.Legend.Add("% of Shootings", shootingBars)
	p.Legend.Add("% of US Population", populationBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	return p.Save(r.width, r.height, path)
}

func (r *Renderer) gender(rep *model.Report, path string) error {
	values := make(plotter.Values, len(rep.Demographics.Genders))
	labels := make([]string, len(rep.Demographics.Genders))
	for i, gc := range rep.Demographics.Genders {
		values[i] = float64(gc.Count)
		labels[i] = gc.Gender
	}
	return r.barChart("Fatal Shootings by Gender", "Gender", "Number of Shootings", labels, values, false, path)
}

func (r *Renderer) armed(rep *model.Report, path string) error {
	values := make(plotter.Values, len(rep.Demographics.Armed))
	labels := make([]string, len(rep.Demographics.Armed))
	for i, ac := range rep.Demographics.Armed {
		values[i] = float64(ac.Count)
		labels[i] = ac.Label
	}
	return r.barChart("Fatal Shootings by Armed Status", "Number of Shootings", "", labels, values, true, path)
}

func (r *Renderer) topStates(rep *model.Report, path string) error {
	values := make(plotter.Values, len(rep.Geography.TopStates))
	labels := make([]string, len(rep.Geography.TopStates))
	for i, sc := range rep.Geography.TopStates {
		values[i] = float64(sc.Count)
		labels[i] = sc.Name
	}
	return r.barChart("Top 15 States by Fatal Shootings", "Number of Shootings", "", labels, values, true, path)
}

func (r *Renderer) topCities(rep *model.Report, path string) error {
	values := make(plotter.Values, len(rep.Geography.TopCities))
	labels := make([]string, len(rep.Geography.TopCities))
	for i, cc := range rep.Geography.TopCities {
		values[i] = float64(cc.Count)
		labels[i] = cc.Name
	}
	return r.barChart("Top 15 Cities by Fatal Shootings", "Number of Shootings", "", labels, values, true, path)
}

func (r *Renderer) regions(rep *model.Report, path string) error {
	values := make(plotter.Values, len(rep.Geography.Regions))
	labels := make([]string, len(rep.Geography.Regions))
	for i, rc := range rep.Geography.Regions {
		values[i] = rc.Percent
		labels[i] = rc.Region
	}
	return r.barChart("Fatal Shootings by US Region", "Region", "% of Shootings", labels, values, false, path)
}

// barChart renders a single bar panel. Horizontal panels put the category
// labels on the Y axis.
func (r *Renderer) barChart(title, xLabel, yLabel string, labels []string, values plotter.Values, horizontal bool, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)

	if horizontal {
		bars.Horizontal = true
		p.Add(bars)
		p.NominalY(labels...)
	} else {
		p.Add(bars)
		p.NominalX(labels...)
	}

	return p.Save(r.width, r.height, path)
}
