package stats

import "github.com/Obaid38/USDeathsByPolice/internal/model"

// ComputeTrend derives the year-over-year trajectory from yearly counts.
// ChangePct is (last - first) / first * 100. Returns a zero Trend for an
// empty series.
func ComputeTrend(yearly []model.YearCount) model.Trend {
	if len(yearly) == 0 {
		return model.Trend{}
	}

	first := yearly[0]
	last := yearly[len(yearly)-1]

	trend := model.Trend{
		FirstYear:      first.Year,
		FirstYearCount: first.Count,
		LastYear:       last.Year,
		LastYearCount:  last.Count,
		PeakYear:       first.Year,
		PeakCount:      first.Count,
		LowYear:        first.Year,
		LowCount:       first.Count,
	}

	if first.Count > 0 {
		trend.ChangePct = float64(last.Count-first.Count) / float64(first.Count) * 100
	}

	for _, yc := range yearly {
		if yc.Count > trend.PeakCount {
			trend.PeakYear = yc.Year
			trend.PeakCount = yc.Count
		}
		if yc.Count < trend.LowCount {
			trend.LowYear = yc.Year
			trend.LowCount = yc.Count
		}
	}

	return trend
}
