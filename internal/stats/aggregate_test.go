package stats

import (
	"math"
	"testing"
	"time"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

func incident(year int, month time.Month, day int, race model.Race, gender, armed, state, city string) model.Incident {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return model.Incident{
		Date:      date,
		Year:      date.Year(),
		Month:     date.Month(),
		DayOfWeek: date.Weekday(),
		Race:      race,
		Gender:    gender,
		Armed:     armed,
		State:     state,
		City:      city,
	}
}

func testIncidents() []model.Incident {
	return []model.Incident{
		incident(2015, time.January, 5, model.RaceWhite, "M", "firearm", "TX", "Houston"),
		incident(2015, time.March, 10, model.RaceBlack, "M", "firearm", "TX", "Dallas"),
		incident(2016, time.January, 2, model.RaceBlack, "F", "knife/blade", "CA", "Oakland"),
		incident(2016, time.June, 18, model.RaceHispanic, "M", "unarmed", "CA", "Fresno"),
		incident(2016, time.June, 19, "", "M", "firearm", "NY", "Albany"),
		incident(2017, time.December, 25, model.RaceWhite, "M", "unknown", "PR", "San Juan"),
	}
}

func TestCountByYear(t *testing.T) {
	yearly := CountByYear(testIncidents())

	if len(yearly) != 3 {
		t.Fatalf("Expected 3 years, got %d", len(yearly))
	}

	// Ascending order
	for i := 1; i < len(yearly); i++ {
		if yearly[i].Year <= yearly[i-1].Year {
			t.Errorf("Expected ascending years, got %v", yearly)
		}
	}

	// Counts sum to total records
	sum := 0
	for _, yc := range yearly {
		sum += yc.Count
	}
	if sum != 6 {
		t.Errorf("Expected yearly counts to sum to 6, got %d", sum)
	}

	if yearly[1].Year != 2016 || yearly[1].Count != 3 {
		t.Errorf("Expected 2016 count 3, got %+v", yearly[1])
	}
}

func TestCountByMonth_CoversAllMonths(t *testing.T) {
	monthly := CountByMonth(testIncidents())

	if len(monthly) != 12 {
		t.Fatalf("Expected 12 months, got %d", len(monthly))
	}
	if monthly[0].Month != time.January || monthly[11].Month != time.December {
		t.Errorf("Expected Jan..Dec order, got %v..%v", monthly[0].Month, monthly[11].Month)
	}

	if monthly[0].Count != 2 {
		t.Errorf("Expected 2 January incidents, got %d", monthly[0].Count)
	}
	if monthly[1].Count != 0 {
		t.Errorf("Expected 0 February incidents, got %d", monthly[1].Count)
	}
}

func TestCountByWeekday_Order(t *testing.T) {
	weekdays := CountByWeekday(testIncidents())

	if len(weekdays) != 7 {
		t.Fatalf("Expected 7 weekdays, got %d", len(weekdays))
	}
	if weekdays[0].Day != time.Monday || weekdays[6].Day != time.Sunday {
		t.Errorf("Expected Monday..Sunday order, got %v..%v", weekdays[0].Day, weekdays[6].Day)
	}

	sum := 0
	for _, wc := range weekdays {
		sum += wc.Count
	}
	if sum != 6 {
		t.Errorf("Expected weekday counts to sum to 6, got %d", sum)
	}
}

func TestRaceBreakdown_PercentOverAllRecords(t *testing.T) {
	races := RaceBreakdown(testIncidents())

	// Race-less record excluded from rows but included in the denominator
	if len(races) != 3 {
		t.Fatalf("Expected 3 race rows, got %d", len(races))
	}

	for _, rc := range races {
		if rc.Race == model.RaceBlack {
			want := 2.0 / 6.0 * 100
			if math.Abs(rc.Percent-want) > 1e-9 {
				t.Errorf("Expected Black percent %.4f over all records, got %.4f", want, rc.Percent)
			}
		}
	}

	// Descending by count
	for i := 1; i < len(races); i++ {
		if races[i].Count > races[i-1].Count {
			t.Errorf("Expected descending counts, got %v", races)
		}
	}
}

func TestDisparity_SharesOverIdentifiedOnly(t *testing.T) {
	rows := Disparity(testIncidents())

	// 5 race-identified records, 3 distinct mapped codes
	if len(rows) != 3 {
		t.Fatalf("Expected 3 disparity rows, got %d", len(rows))
	}

	sum := 0.0
	for _, row := range rows {
		sum += row.ShootingPct
		if row.PopulationPct <= 0 {
			t.Errorf("Expected positive population share for %s", row.Race)
		}
		want := row.ShootingPct / row.PopulationPct
		if math.Abs(row.Ratio-want) > 1e-9 {
			t.Errorf("Expected ratio %f for %s, got %f", want, row.Race, row.Ratio)
		}
	}

	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("Expected identified shares to sum to 100, got %f", sum)
	}
}

func TestDisparity_ExcludesUnmappedRaces(t *testing.T) {
	incidents := []model.Incident{
		incident(2016, time.May, 1, model.RaceWhite, "M", "firearm", "TX", "Austin"),
		incident(2016, time.May, 2, model.Race("X"), "M", "firearm", "TX", "Austin"),
	}

	rows := Disparity(incidents)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Race != model.RaceWhite {
		t.Errorf("Expected White row, got %s", rows[0].Race)
	}

	// The unmapped code still counts toward the identified denominator
	if math.Abs(rows[0].ShootingPct-50) > 1e-9 {
		t.Errorf("Expected 50%% share, got %f", rows[0].ShootingPct)
	}
}

func TestDisparity_NoIdentifiedRecords(t *testing.T) {
	incidents := []model.Incident{
		incident(2016, time.May, 1, "", "M", "firearm", "TX", "Austin"),
	}
	if rows := Disparity(incidents); rows != nil {
		t.Errorf("Expected nil for race-less dataset, got %v", rows)
	}
}

func TestGenderCounts(t *testing.T) {
	genders := GenderCounts(testIncidents())

	if len(genders) != 2 {
		t.Fatalf("Expected 2 gender rows, got %d", len(genders))
	}
	if genders[0].Gender != "M" || genders[0].Count != 5 {
		t.Errorf("Expected M first with count 5, got %+v", genders[0])
	}
	if math.Abs(genders[1].Percent-100.0/6.0) > 1e-9 {
		t.Errorf("Expected F share over gendered records, got %f", genders[1].Percent)
	}
}

func TestArmedCounts_CollapsesTail(t *testing.T) {
	var incidents []model.Incident
	labels := []string{"firearm", "knife/blade", "unarmed", "vehicle", "toy weapon",
		"hammer", "ax", "sword", "machete", "crossbow", "rock"}
	for i, label := range labels {
		// Descending frequencies so the sort order is deterministic
		for j := 0; j <= len(labels)-i; j++ {
			inc := incident(2016, time.May, 1, model.RaceWhite, "M", label, "TX", "Austin")
			incidents = append(incidents, inc)
		}
	}

	armed := ArmedCounts(incidents)
	if len(armed) != 9 {
		t.Fatalf("Expected 8 labels plus 'other', got %d rows", len(armed))
	}
	if armed[0].Label != "firearm" {
		t.Errorf("Expected 'firearm' first, got %q", armed[0].Label)
	}

	last := armed[len(armed)-1]
	if last.Label != "other" {
		t.Fatalf("Expected trailing 'other' bucket, got %q", last.Label)
	}

	// "other" carries the combined tail counts
	tail := 0
	for i := range labels {
		if i >= 8 {
			tail += len(labels) - i + 1
		}
	}
	if last.Count != tail {
		t.Errorf("Expected other count %d, got %d", tail, last.Count)
	}
}

func TestArmedCounts_NoCollapseUnderLimit(t *testing.T) {
	incidents := []model.Incident{
		incident(2016, time.May, 1, model.RaceWhite, "M", "firearm", "TX", "Austin"),
		incident(2016, time.May, 2, model.RaceWhite, "M", "unarmed", "TX", "Austin"),
	}

	armed := ArmedCounts(incidents)
	if len(armed) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(armed))
	}
	for _, ac := range armed {
		if ac.Label == "other" {
			t.Error("Expected no 'other' bucket under the category limit")
		}
	}
}

func TestTopStates_Limit(t *testing.T) {
	states := TopStates(testIncidents(), 2)

	if len(states) != 2 {
		t.Fatalf("Expected 2 states, got %d", len(states))
	}
	if states[0].Count < states[1].Count {
		t.Errorf("Expected descending counts, got %v", states)
	}
	if math.Abs(states[0].Percent-2.0/6.0*100) > 1e-9 {
		t.Errorf("Expected percent over all records, got %f", states[0].Percent)
	}
}

func TestTopCities(t *testing.T) {
	cities := TopCities(testIncidents(), 15)

	if len(cities) != 6 {
		t.Fatalf("Expected 6 cities, got %d", len(cities))
	}
}

func TestRegionCounts_ExcludesUnmappedStates(t *testing.T) {
	regions := RegionCounts(testIncidents())

	// PR is unmapped; 5 incidents fall into Southwest, West, Northeast
	sum := 0
	pctSum := 0.0
	for _, rc := range regions {
		sum += rc.Count
		pctSum += rc.Percent
		if rc.Region == "Other" {
			t.Errorf("Expected no Other region in this fixture, got %+v", rc)
		}
	}
	if sum != 5 {
		t.Errorf("Expected 5 mapped incidents, got %d", sum)
	}
	if math.Abs(pctSum-100) > 1e-9 {
		t.Errorf("Expected region percentages over mapped incidents to sum to 100, got %f", pctSum)
	}
}
