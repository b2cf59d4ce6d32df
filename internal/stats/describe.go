package stats

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

// DescribeAges computes descriptive statistics over the ages present in the
// dataset. Records without an age are dropped. Returns nil when no record
// carries an age.
func DescribeAges(incidents []model.Incident) *model.AgeStats {
	var sample stats.Sample
	for _, inc := range incidents {
		if inc.HasAge {
			sample.Xs = append(sample.Xs, inc.Age)
		}
	}

	if len(sample.Xs) == 0 {
		return nil
	}

	min, max := sample.Bounds()

	return &model.AgeStats{
		Count:  len(sample.Xs),
		Mean:   sample.Mean(),
		StdDev: sample.StdDev(),
		Min:    min,
		Q1:     sample.Quantile(0.25),
		Median: sample.Quantile(0.5),
		Q3:     sample.Quantile(0.75),
		Max:    max,
	}
}

// Ages returns the raw age sample, for histogram rendering
func Ages(incidents []model.Incident) []float64 {
	var ages []float64
	for _, inc := range incidents {
		if inc.HasAge {
			ages = append(ages, inc.Age)
		}
	}
	return ages
}
