package model

import (
	"strings"
	"testing"
)

func TestRace_Label(t *testing.T) {
	tests := []struct {
		race Race
		want string
	}{
		{RaceWhite, "White"},
		{RaceBlack, "Black"},
		{RaceHispanic, "Hispanic"},
		{RaceAsian, "Asian"},
		{RaceNative, "Native American"},
		{RaceOther, "Other"},
		{Race("Z"), "Z"}, // Unknown codes pass through
	}

	for _, tt := range tests {
		if got := tt.race.Label(); got != tt.want {
			t.Errorf("Label(%s) = %q, want %q", tt.race, got, tt.want)
		}
	}
}

func TestDefaultNotes(t *testing.T) {
	notes := DefaultNotes()
	if len(notes) != 4 {
		t.Fatalf("Expected 4 notes, got %d", len(notes))
	}

	found := false
	for _, note := range notes {
		if strings.Contains(note, "do not imply causation") {
			found = true
		}
	}
	if !found {
		t.Error("Expected causation caveat among notes")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dataset.DateLayout != "2006-01-02" {
		t.Errorf("Expected ISO date layout, got %q", cfg.Dataset.DateLayout)
	}
	if !cfg.Output.JSON || !cfg.Output.Markdown {
		t.Error("Expected JSON and Markdown enabled by default")
	}
	if cfg.Output.Excel {
		t.Error("Expected Excel disabled by default")
	}
	if !cfg.Cache.Enabled {
		t.Error("Expected cache enabled by default")
	}
	if cfg.Concurrency.Workers <= 0 {
		t.Error("Expected positive default worker count")
	}
	if cfg.LLM.Provider != "" {
		t.Error("Expected LLM disabled by default")
	}
}
