package stats

import (
	"math"
	"testing"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

func TestComputeTrend(t *testing.T) {
	yearly := []model.YearCount{
		{Year: 2015, Count: 990},
		{Year: 2016, Count: 960},
		{Year: 2017, Count: 985},
		{Year: 2018, Count: 1100},
	}

	trend := ComputeTrend(yearly)

	if trend.FirstYear != 2015 || trend.LastYear != 2018 {
		t.Errorf("Expected 2015..2018, got %d..%d", trend.FirstYear, trend.LastYear)
	}

	want := float64(1100-990) / 990 * 100
	if math.Abs(trend.ChangePct-want) > 1e-9 {
		t.Errorf("Expected change %.4f%%, got %.4f%%", want, trend.ChangePct)
	}

	if trend.PeakYear != 2018 || trend.PeakCount != 1100 {
		t.Errorf("Expected peak 2018 (1100), got %d (%d)", trend.PeakYear, trend.PeakCount)
	}
	if trend.LowYear != 2016 || trend.LowCount != 960 {
		t.Errorf("Expected low 2016 (960), got %d (%d)", trend.LowYear, trend.LowCount)
	}
}

func TestComputeTrend_Declining(t *testing.T) {
	yearly := []model.YearCount{
		{Year: 2019, Count: 1000},
		{Year: 2020, Count: 800},
	}

	trend := ComputeTrend(yearly)
	if math.Abs(trend.ChangePct - -20) > 1e-9 {
		t.Errorf("Expected -20%% change, got %f", trend.ChangePct)
	}
}

func TestComputeTrend_Empty(t *testing.T) {
	trend := ComputeTrend(nil)
	if trend != (model.Trend{}) {
		t.Errorf("Expected zero trend for empty series, got %+v", trend)
	}
}

func TestComputeTrend_ZeroFirstYear(t *testing.T) {
	yearly := []model.YearCount{
		{Year: 2019, Count: 0},
		{Year: 2020, Count: 50},
	}

	trend := ComputeTrend(yearly)
	if trend.ChangePct != 0 {
		t.Errorf("Expected 0 change for zero first-year count, got %f", trend.ChangePct)
	}
	if trend.PeakYear != 2020 {
		t.Errorf("Expected peak 2020, got %d", trend.PeakYear)
	}
}
