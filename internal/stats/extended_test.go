package stats

import (
	"errors"
	"testing"
)

func TestExtendedAnalyses_Declared(t *testing.T) {
	analyses := ExtendedAnalyses()
	if len(analyses) != 3 {
		t.Fatalf("Expected 3 declared analyses, got %d", len(analyses))
	}

	for _, ea := range analyses {
		if ea.Name == "" {
			t.Error("Expected every analysis to carry a name")
		}
		if len(ea.Requires) == 0 {
			t.Errorf("Expected %s to list requirements", ea.Name)
		}
	}
}

func TestExtendedAnalyses_Unimplemented(t *testing.T) {
	for name, fn := range map[string]func() error{
		"correlation": CorrelationAnalysis,
		"predictive":  PredictiveModeling,
		"policy":      PolicyImpactAnalysis,
	} {
		err := fn()
		if err == nil {
			t.Errorf("Expected %s to return an error", name)
			continue
		}
		if !errors.Is(err, ErrUnimplemented) {
			t.Errorf("Expected %s error to wrap ErrUnimplemented, got %v", name, err)
		}
	}
}
