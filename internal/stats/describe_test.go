package stats

import (
	"math"
	"testing"
	"time"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

func agedIncident(age float64) model.Incident {
	inc := incident(2016, time.May, 1, model.RaceWhite, "M", "firearm", "TX", "Austin")
	inc.Age = age
	inc.HasAge = true
	return inc
}

func TestDescribeAges(t *testing.T) {
	incidents := []model.Incident{
		agedIncident(20),
		agedIncident(30),
		agedIncident(40),
		agedIncident(50),
		// A record without age must be dropped, not counted as zero
		incident(2016, time.May, 2, model.RaceBlack, "M", "firearm", "TX", "Austin"),
	}

	ageStats := DescribeAges(incidents)
	if ageStats == nil {
		t.Fatal("Expected age stats, got nil")
	}

	if ageStats.Count != 4 {
		t.Errorf("Expected count 4, got %d", ageStats.Count)
	}
	if math.Abs(ageStats.Mean-35) > 1e-9 {
		t.Errorf("Expected mean 35, got %f", ageStats.Mean)
	}
	if math.Abs(ageStats.Median-35) > 1e-9 {
		t.Errorf("Expected median 35, got %f", ageStats.Median)
	}
	if ageStats.Min != 20 || ageStats.Max != 50 {
		t.Errorf("Expected range 20-50, got %f-%f", ageStats.Min, ageStats.Max)
	}
	if ageStats.Q1 >= ageStats.Median || ageStats.Q3 <= ageStats.Median {
		t.Errorf("Expected Q1 < median < Q3, got %f / %f / %f",
			ageStats.Q1, ageStats.Median, ageStats.Q3)
	}
	if ageStats.StdDev <= 0 {
		t.Errorf("Expected positive std dev, got %f", ageStats.StdDev)
	}
}

func TestDescribeAges_NoAges(t *testing.T) {
	incidents := []model.Incident{
		incident(2016, time.May, 1, model.RaceWhite, "M", "firearm", "TX", "Austin"),
	}

	if got := DescribeAges(incidents); got != nil {
		t.Errorf("Expected nil when no record carries an age, got %+v", got)
	}
}

func TestAges(t *testing.T) {
	incidents := []model.Incident{
		agedIncident(25),
		incident(2016, time.May, 2, model.RaceBlack, "M", "firearm", "TX", "Austin"),
		agedIncident(31),
	}

	ages := Ages(incidents)
	if len(ages) != 2 {
		t.Fatalf("Expected 2 ages, got %d", len(ages))
	}
	if ages[0] != 25 || ages[1] != 31 {
		t.Errorf("Expected [25 31], got %v", ages)
	}
}
