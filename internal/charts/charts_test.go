package charts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Obaid38/USDeathsByPolice/internal/dataset"
	"github.com/Obaid38/USDeathsByPolice/internal/model"
	"github.com/Obaid38/USDeathsByPolice/internal/report"
)

func fixtureReport(t *testing.T) (*model.Report, []float64) {
	t.Helper()

	mk := func(year int, month time.Month, day int, race model.Race, age float64, state, city string) model.Incident {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return model.Incident{
			Date:      date,
			Year:      date.Year(),
			Month:     date.Month(),
			DayOfWeek: date.Weekday(),
			Race:      race,
			Gender:    "M",
			Age:       age,
			HasAge:    age > 0,
			Armed:     "firearm",
			State:     state,
			City:      city,
		}
	}

	lr := &dataset.LoadResult{
		Columns: []string{"id", "date", "race", "age", "state", "city"},
		Incidents: []model.Incident{
			mk(2015, time.February, 1, model.RaceWhite, 34, "TX", "Houston"),
			mk(2015, time.July, 4, model.RaceBlack, 22, "CA", "Fresno"),
			mk(2016, time.March, 15, model.RaceBlack, 41, "CA", "Oakland"),
			mk(2017, time.November, 30, model.RaceWhite, 55, "NY", "Albany"),
		},
	}

	rep := report.NewBuilder().Build("data.csv", lr)
	return rep, []float64{34, 22, 41, 55}
}

func TestRenderer_RenderAll(t *testing.T) {
	rep, ages := fixtureReport(t)
	dir := filepath.Join(t.TempDir(), "charts")

	r := NewRenderer(model.ChartsConfig{Enabled: true, WidthInches: 8, HeightInches: 5})

	written, err := r.RenderAll(rep, ages, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(written) != 11 {
		t.Errorf("Expected 11 chart files, got %d", len(written))
	}

	for _, path := range written {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("Expected chart file %s, got %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("Expected non-empty chart file %s", path)
		}
	}
}

func TestRenderer_RenderAll_NoAges(t *testing.T) {
	rep, _ := fixtureReport(t)
	rep.Demographics.AgeStats = nil
	dir := filepath.Join(t.TempDir(), "charts")

	r := NewRenderer(model.ChartsConfig{Enabled: true, WidthInches: 8, HeightInches: 5})

	written, err := r.RenderAll(rep, nil, dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The age histogram panel is skipped without an age sample
	if len(written) != 10 {
		t.Errorf("Expected 10 chart files without ages, got %d", len(written))
	}

	for _, path := range written {
		if filepath.Base(path) == "temporal_age_histogram.png" {
			t.Error("Expected no age histogram without an age sample")
		}
	}
}
