// Package stats computes the grouped counts, percentages, and derived
// metrics that make up an analysis report.
package stats

import (
	"sort"
	"time"

	"github.com/Obaid38/USDeathsByPolice/internal/census"
	"github.com/Obaid38/USDeathsByPolice/internal/geo"
	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

// armedTopCategories is how many armed-status labels are kept before the
// remainder collapses into "other"
const armedTopCategories = 8

// CountByYear returns incident counts per calendar year, ascending
func CountByYear(incidents []model.Incident) []model.YearCount {
	counts := make(map[int]int)
	for _, inc := range incidents {
		counts[inc.Year]++
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	result := make([]model.YearCount, len(years))
	for i, year := range years {
		result[i] = model.YearCount{Year: year, Count: counts[year]}
	}
	return result
}

// CountByMonth returns incident counts for each calendar month, Jan..Dec,
// totaled across all years
func CountByMonth(incidents []model.Incident) []model.MonthCount {
	counts := make(map[time.Month]int)
	for _, inc := range incidents {
		counts[inc.Month]++
	}

	result := make([]model.MonthCount, 0, 12)
	for m := time.January; m <= time.December; m++ {
		result = append(result, model.MonthCount{Month: m, Count: counts[m]})
	}
	return result
}

// CountByWeekday returns incident counts for each day of the week, ordered
// Monday..Sunday
func CountByWeekday(incidents []model.Incident) []model.WeekdayCount {
	counts := make(map[time.Weekday]int)
	for _, inc := range incidents {
		counts[inc.DayOfWeek]++
	}

	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}

	result := make([]model.WeekdayCount, len(order))
	for i, day := range order {
		result[i] = model.WeekdayCount{Day: day, Count: counts[day]}
	}
	return result
}

// RaceBreakdown returns counts per race code, descending, with percentages
// taken over all records (including those without a race value)
func RaceBreakdown(incidents []model.Incident) []model.RaceCount {
	total := len(incidents)
	counts := make(map[model.Race]int)
	for _, inc := range incidents {
		if inc.Race == "" {
			continue
		}
		counts[inc.Race]++
	}

	result := make([]model.RaceCount, 0, len(counts))
	for race, count := range counts {
		result = append(result, model.RaceCount{
			Race:    race,
			Count:   count,
			Percent: pct(count, total),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Race < result[j].Race
	})
	return result
}

// Disparity builds the shooting-rate versus population-rate comparison.
// Shares are taken over race-identified records only, and race codes absent
// from the census reference table are excluded entirely.
func Disparity(incidents []model.Incident) []model.DisparityRow {
	counts := make(map[model.Race]int)
	identified := 0
	for _, inc := range incidents {
		if inc.Race == "" {
			continue
		}
		counts[inc.Race]++
		identified++
	}
	if identified == 0 {
		return nil
	}

	result := make([]model.DisparityRow, 0, len(counts))
	for race, count := range counts {
		popShare, ok := census.PopulationShare(race)
		if !ok {
			continue
		}
		share := pct(count, identified)
		result = append(result, model.DisparityRow{
			Race:          race,
			ShootingPct:   share,
			PopulationPct: popShare,
			Ratio:         share / popShare,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ShootingPct != result[j].ShootingPct {
			return result[i].ShootingPct > result[j].ShootingPct
		}
		return result[i].Race < result[j].Race
	})
	return result
}

// GenderCounts returns counts per gender value, descending
func GenderCounts(incidents []model.Incident) []model.GenderCount {
	counts := make(map[string]int)
	total := 0
	for _, inc := range incidents {
		if inc.Gender == "" {
			continue
		}
		counts[inc.Gender]++
		total++
	}

	result := make([]model.GenderCount, 0, len(counts))
	for gender, count := range counts {
		result = append(result, model.GenderCount{
			Gender:  gender,
			Count:   count,
			Percent: pct(count, total),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Gender < result[j].Gender
	})
	return result
}

// ArmedCounts returns counts per normalized armed-status label, descending,
// with everything past the top 8 collapsed into "other"
func ArmedCounts(incidents []model.Incident) []model.ArmedCount {
	counts := make(map[string]int)
	for _, inc := range incidents {
		if inc.Armed == "" {
			continue
		}
		counts[inc.Armed]++
	}

	all := make([]model.ArmedCount, 0, len(counts))
	for label, count := range counts {
		all = append(all, model.ArmedCount{Label: label, Count: count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Label < all[j].Label
	})

	if len(all) <= armedTopCategories {
		return all
	}

	top := all[:armedTopCategories:armedTopCategories]
	other := 0
	for _, ac := range all[armedTopCategories:] {
		other += ac.Count
	}
	if other > 0 {
		top = append(top, model.ArmedCount{Label: "other", Count: other})
	}
	return top
}

// TopStates returns the n states with the most incidents, descending, with
// percentages over all records
func TopStates(incidents []model.Incident, n int) []model.PlaceCount {
	return topPlaces(incidents, n, func(inc model.Incident) string { return inc.State })
}

// TopCities returns the n cities with the most incidents, descending, with
// percentages over all records
func TopCities(incidents []model.Incident, n int) []model.PlaceCount {
	return topPlaces(incidents, n, func(inc model.Incident) string { return inc.City })
}

// RegionCounts maps each incident's state onto a US region and returns
// counts per region, descending. Incidents in unmapped states are excluded.
func RegionCounts(incidents []model.Incident) []model.RegionCount {
	counts := make(map[string]int)
	mapped := 0
	for _, inc := range incidents {
		region, ok := geo.RegionFor(inc.State)
		if !ok {
			continue
		}
		counts[region]++
		mapped++
	}

	result := make([]model.RegionCount, 0, len(counts))
	for region, count := range counts {
		result = append(result, model.RegionCount{
			Region:  region,
			Count:   count,
			Percent: pct(count, mapped),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Region < result[j].Region
	})
	return result
}

func topPlaces(incidents []model.Incident, n int, key func(model.Incident) string) []model.PlaceCount {
	total := len(incidents)
	counts := make(map[string]int)
	for _, inc := range incidents {
		name := key(inc)
		if name == "" {
			continue
		}
		counts[name]++
	}

	all := make([]model.PlaceCount, 0, len(counts))
	for name, count := range counts {
		all = append(all, model.PlaceCount{
			Name:    name,
			Count:   count,
			Percent: pct(count, total),
		})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Name < all[j].Name
	})

	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

// pct returns part as a percentage of total, 0 when total is 0
func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
