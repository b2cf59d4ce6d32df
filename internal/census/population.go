// Package census holds the static national population reference table used
// for demographic rate comparisons.
package census

import "github.com/Obaid38/USDeathsByPolice/internal/model"

// populationShare maps race codes to their share of the US population, in
// percent. Figures follow the US Census national estimates used by the
// Washington Post dataset documentation.
var populationShare = map[model.Race]float64{
	model.RaceWhite:    72.4,
	model.RaceBlack:    12.6,
	model.RaceHispanic: 16.3,
	model.RaceAsian:    4.8,
	model.RaceNative:   0.9,
	model.RaceOther:    2.9,
}

// PopulationShare returns the national population percentage for a race
// code. The second return value is false for codes outside the reference
// table; such codes are excluded from disparity ratios.
func PopulationShare(race model.Race) (float64, bool) {
	share, ok := populationShare[race]
	return share, ok
}

// Mapped reports whether a race code appears in the reference table
func Mapped(race model.Race) bool {
	_, ok := populationShare[race]
	return ok
}
