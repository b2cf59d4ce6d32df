package stats

import "errors"

// ErrUnimplemented marks analyses that are declared but intentionally not
// built. Statistical inference and modeling are out of scope for this tool.
var ErrUnimplemented = errors.New("analysis not implemented")

// ExtendedAnalysis describes a declared-but-unimplemented analysis and what
// it would require
type ExtendedAnalysis struct {
	Name     string
	Requires []string
}

// ExtendedAnalyses lists the analyses that a fuller study would add. They
// are surfaced by `analyze --extended` and exist only as documentation of
// scope.
func ExtendedAnalyses() []ExtendedAnalysis {
	return []ExtendedAnalysis{
		{
			Name: "Correlation analysis",
			Requires: []string{
				"Socioeconomic data joined to incident records",
			},
		},
		{
			Name: "Predictive modeling",
			Requires: []string{
				"Feature engineering from available data",
				"Time series analysis for trend prediction",
				"Geographic clustering analysis",
				"Risk factor identification",
			},
		},
		{
			Name: "Policy impact analysis",
			Requires: []string{
				"Before/after comparisons for policy implementations",
				"Difference-in-differences analysis across jurisdictions",
				"Interrupted time series analysis",
			},
		},
	}
}

// CorrelationAnalysis is not implemented; it would need socioeconomic data
// joined to the incident table
func CorrelationAnalysis() error {
	return errors.Join(ErrUnimplemented, errors.New("socioeconomic data needed for correlation analysis"))
}

// PredictiveModeling is not implemented; trend prediction and clustering
// are out of scope
func PredictiveModeling() error {
	return errors.Join(ErrUnimplemented, errors.New("predictive modeling requires feature engineering and time series analysis"))
}

// PolicyImpactAnalysis is not implemented; it would need policy
// implementation dates per jurisdiction
func PolicyImpactAnalysis() error {
	return errors.Join(ErrUnimplemented, errors.New("policy impact analysis requires policy dates per jurisdiction"))
}
