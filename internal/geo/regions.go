// Package geo maps US state codes onto census-style regions.
package geo

// Region names, in the order used by reports
const (
	Northeast = "Northeast"
	Southeast = "Southeast"
	Midwest   = "Midwest"
	Southwest = "Southwest"
	West      = "West"
	Other     = "Other" // DC and the small mid-Atlantic states
)

// regionStates lists the state codes composing each region
var regionStates = map[string][]string{
	Northeast: {"CT", "ME", "MA", "NH", "NJ", "NY", "PA", "RI", "VT"},
	Southeast: {"AL", "AR", "FL", "GA", "KY", "LA", "MS", "NC", "SC", "TN", "VA", "WV"},
	Midwest:   {"IL", "IN", "IA", "KS", "MI", "MN", "MO", "NE", "ND", "OH", "SD", "WI"},
	Southwest: {"AZ", "NM", "OK", "TX"},
	West:      {"AK", "CA", "CO", "HI", "ID", "MT", "NV", "OR", "UT", "WA", "WY"},
	Other:     {"DC", "DE", "MD"},
}

// stateToRegion is the inverted lookup built once at init
var stateToRegion = func() map[string]string {
	m := make(map[string]string)
	for region, states := range regionStates {
		for _, state := range states {
			m[state] = region
		}
	}
	return m
}()

// Regions returns the region names in report order
func Regions() []string {
	return []string{Northeast, Southeast, Midwest, Southwest, West, Other}
}

// RegionFor returns the region for a state code. The second return value is
// false for unmapped codes; such incidents are excluded from regional
// counts.
func RegionFor(state string) (string, bool) {
	region, ok := stateToRegion[state]
	return region, ok
}

// MappedStates returns the number of state codes covered by the lookup
func MappedStates() int {
	return len(stateToRegion)
}
