// Package report assembles and renders analysis reports.
package report

import (
	"time"

	"github.com/Obaid38/USDeathsByPolice/internal/dataset"
	"github.com/Obaid38/USDeathsByPolice/internal/model"
	"github.com/Obaid38/USDeathsByPolice/internal/stats"
)

// Chart selections are wider than the terminal ones, matching the fixed
// panel set
const (
	topStatesN = 15
	topCitiesN = 15
)

// Builder assembles a model.Report from a parsed dataset
type Builder struct {
	now func() time.Time // Injectable clock for tests
}

// NewBuilder creates a new report builder
func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

// Build computes every aggregate the report carries. This is the single
// pass over the in-memory table: load -> group/aggregate -> render.
func (b *Builder) Build(datasetPath string, lr *dataset.LoadResult) *model.Report {
	incidents := lr.Incidents
	yearly := stats.CountByYear(incidents)

	report := &model.Report{
		Dataset:     datasetPath,
		GeneratedAt: b.now().UTC(),
		Overview:    buildOverview(lr, yearly),
		Temporal: model.Temporal{
			Yearly:    yearly,
			Monthly:   stats.CountByMonth(incidents),
			DayOfWeek: stats.CountByWeekday(incidents),
		},
		Demographics: model.Demographics{
			Races:     stats.RaceBreakdown(incidents),
			Disparity: stats.Disparity(incidents),
			Genders:   stats.GenderCounts(incidents),
			Armed:     stats.ArmedCounts(incidents),
			AgeStats:  stats.DescribeAges(incidents),
		},
		Geography: model.Geography{
			TopStates: stats.TopStates(incidents, topStatesN),
			TopCities: stats.TopCities(incidents, topCitiesN),
			Regions:   stats.RegionCounts(incidents),
		},
		Trend: stats.ComputeTrend(yearly),
		Notes: model.DefaultNotes(),
	}

	return report
}

func buildOverview(lr *dataset.LoadResult, yearly []model.YearCount) model.Overview {
	ov := model.Overview{
		TotalRecords: len(lr.Incidents),
		SkippedRows:  lr.Skipped,
		Columns:      lr.Columns,
		YearsCovered: len(yearly),
	}

	for i, inc := range lr.Incidents {
		if i == 0 || inc.Date.Before(ov.DateMin) {
			ov.DateMin = inc.Date
		}
		if i == 0 || inc.Date.After(ov.DateMax) {
			ov.DateMax = inc.Date
		}
	}

	if ov.YearsCovered > 0 {
		ov.AveragePerYear = float64(ov.TotalRecords) / float64(ov.YearsCovered)
	}

	return ov
}
