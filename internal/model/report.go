package model

import "time"

// Report represents the complete analysis report for one dataset snapshot
type Report struct {
	Dataset     string    `json:"dataset"`      // Path of the analyzed CSV
	GeneratedAt time.Time `json:"generated_at"` // When the analysis ran

	Overview     Overview     `json:"overview"`
	Temporal     Temporal     `json:"temporal"`
	Demographics Demographics `json:"demographics"`
	Geography    Geography    `json:"geography"`
	Trend        Trend        `json:"trend"`

	Notes []string `json:"notes,omitempty"` // Interpretation caveats

	Narrative *Narrative `json:"narrative,omitempty"` // Optional LLM narrative (never affects statistics)
}

// Overview contains dataset-level statistics
type Overview struct {
	TotalRecords   int       `json:"total_records"`
	SkippedRows    int       `json:"skipped_rows"` // Rows dropped for unparseable dates
	Columns        []string  `json:"columns"`
	DateMin        time.Time `json:"date_min"`
	DateMax        time.Time `json:"date_max"`
	YearsCovered   int       `json:"years_covered"`
	AveragePerYear float64   `json:"average_per_year"`
}

// Temporal contains calendar-based groupings
type Temporal struct {
	Yearly    []YearCount    `json:"yearly"`      // Ascending by year
	Monthly   []MonthCount   `json:"monthly"`     // Jan..Dec
	DayOfWeek []WeekdayCount `json:"day_of_week"` // Mon..Sun
}

// YearCount is the incident count for one calendar year
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// MonthCount is the incident count for one calendar month across all years
type MonthCount struct {
	Month time.Month `json:"month"`
	Count int        `json:"count"`
}

// WeekdayCount is the incident count for one day of the week
type WeekdayCount struct {
	Day   time.Weekday `json:"day"`
	Count int          `json:"count"`
}

// Demographics contains race, gender, age, and armed-status breakdowns
type Demographics struct {
	Races     []RaceCount    `json:"races"`     // Descending by count
	Disparity []DisparityRow `json:"disparity"` // Census-mapped races only
	Genders   []GenderCount  `json:"genders"`
	Armed     []ArmedCount   `json:"armed"` // Top 8 categories plus "other"
	AgeStats  *AgeStats      `json:"age_stats,omitempty"`
}

// RaceCount is the incident count and share for one race code.
// Percent is taken over all records, including those without a race value,
// matching the dataset-overview convention.
type RaceCount struct {
	Race    Race    `json:"race"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// DisparityRow compares the shooting share of a race against its share of
// the national population. ShootingPct is taken over race-identified records
// only, so rows for all identified races sum to 100.
type DisparityRow struct {
	Race          Race    `json:"race"`
	ShootingPct   float64 `json:"shooting_pct"`
	PopulationPct float64 `json:"population_pct"`
	Ratio         float64 `json:"ratio"` // ShootingPct / PopulationPct
}

// GenderCount is the incident count and share for one gender value
type GenderCount struct {
	Gender  string  `json:"gender"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// ArmedCount is the incident count for one normalized armed-status label
type ArmedCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AgeStats contains descriptive statistics for victim age
type AgeStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Geography contains state, city, and region groupings
type Geography struct {
	TopStates []PlaceCount  `json:"top_states"` // Descending by count
	TopCities []PlaceCount  `json:"top_cities"`
	Regions   []RegionCount `json:"regions"` // Mapped states only
}

// PlaceCount is the incident count and share for one state or city
type PlaceCount struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// RegionCount is the incident count and share for one US region
type RegionCount struct {
	Region  string  `json:"region"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Trend summarizes the year-over-year trajectory
type Trend struct {
	FirstYear      int     `json:"first_year"`
	FirstYearCount int     `json:"first_year_count"`
	LastYear       int     `json:"last_year"`
	LastYearCount  int     `json:"last_year_count"`
	ChangePct      float64 `json:"change_pct"` // (last - first) / first * 100
	PeakYear       int     `json:"peak_year"`
	PeakCount      int     `json:"peak_count"`
	LowYear        int     `json:"low_year"`
	LowCount       int     `json:"low_count"`
}

// Narrative contains an optional LLM-generated narrative summary.
// It is produced after all statistics are computed and never feeds back
// into them.
type Narrative struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// DefaultNotes returns the standing interpretation caveats attached to
// every report
func DefaultNotes() []string {
	return []string{
		"This analysis is based on reported data and may not capture all incidents",
		"Statistical patterns do not imply causation",
		"Further analysis with socioeconomic data would provide deeper insights",
		"Data quality and reporting consistency may vary across jurisdictions",
	}
}
