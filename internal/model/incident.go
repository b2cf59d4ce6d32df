package model

import "time"

// Incident represents a single fatal police shooting record
type Incident struct {
	ID   string    `json:"id,omitempty"`   // Dataset row identifier
	Name string    `json:"name,omitempty"` // Victim name (may be blank)
	Date time.Time `json:"date"`           // Incident date

	// Calendar fields derived from Date at load time
	Year      int          `json:"year"`
	Month     time.Month   `json:"month"`
	DayOfWeek time.Weekday `json:"day_of_week"`

	Age    float64 `json:"age,omitempty"`    // Victim age; 0 when missing
	HasAge bool    `json:"has_age"`          // Whether the age column held a value
	Race   Race    `json:"race,omitempty"`   // Race code; empty when missing
	Gender string  `json:"gender,omitempty"` // "M", "F", or empty

	Armed string `json:"armed,omitempty"` // Normalized armed-status label
	State string `json:"state,omitempty"` // Two-letter state code
	City  string `json:"city,omitempty"`
}

// Race is the single-letter race/ethnicity code used by the dataset
type Race string

const (
	RaceWhite    Race = "W"
	RaceBlack    Race = "B"
	RaceHispanic Race = "H"
	RaceAsian    Race = "A"
	RaceNative   Race = "N"
	RaceOther    Race = "O"
)

// Label returns the human-readable name for a race code
func (r Race) Label() string {
	switch r {
	case RaceWhite:
		return "White"
	case RaceBlack:
		return "Black"
	case RaceHispanic:
		return "Hispanic"
	case RaceAsian:
		return "Asian"
	case RaceNative:
		return "Native American"
	case RaceOther:
		return "Other"
	default:
		return string(r)
	}
}
