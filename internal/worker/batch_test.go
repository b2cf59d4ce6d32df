package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
	"github.com/Obaid38/USDeathsByPolice/internal/pipeline"
)

// mockAnalyzer counts calls and fails for paths containing "bad"
type mockAnalyzer struct {
	calls int32
}

func (m *mockAnalyzer) AnalyzeFile(ctx context.Context, path string) (*pipeline.AnalysisResult, error) {
	atomic.AddInt32(&m.calls, 1)
	if filepath.Base(path) == "bad.csv" {
		return nil, fmt.Errorf("no parseable records in %s", path)
	}
	return &pipeline.AnalysisResult{
		Source: path,
		Report: &model.Report{Dataset: path},
	}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	analyzer := &mockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 3)

	paths := []string{"a.csv", "b.csv", "bad.csv", "c.csv"}
	results := processor.ProcessPaths(context.Background(), paths)

	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}
	if atomic.LoadInt32(&analyzer.calls) != 4 {
		t.Errorf("Expected 4 analyzer calls, got %d", analyzer.calls)
	}

	errCount := 0
	for _, r := range results {
		if r.GetError() != nil {
			errCount++
			if filepath.Base(r.Path) != "bad.csv" {
				t.Errorf("Expected only bad.csv to fail, got error for %s", r.Path)
			}
		} else if r.Analysis == nil {
			t.Errorf("Expected analysis for %s", r.Path)
		}
	}
	if errCount != 1 {
		t.Errorf("Expected 1 failure, got %d", errCount)
	}
}

func TestBatchProcessor_ProcessPaths_Empty(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)

	results := processor.ProcessPaths(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results for empty input, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	listPath := filepath.Join(t.TempDir(), "datasets.txt")
	content := `# snapshots to analyze
a.csv

b.csv
a.csv
`
	if err := os.WriteFile(listPath, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Comments, blank lines, and duplicates are dropped
	if len(paths) != 2 {
		t.Fatalf("Expected 2 paths, got %v", paths)
	}
	if paths[0] != "a.csv" || paths[1] != "b.csv" {
		t.Errorf("Expected [a.csv b.csv], got %v", paths)
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing list file")
	}
}

func TestFindCSVFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.csv"), 0755); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}

	paths, err := FindCSVFiles(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("Expected 2 CSV files, got %v", paths)
	}
	if filepath.Base(paths[0]) != "a.CSV" || filepath.Base(paths[1]) != "b.csv" {
		t.Errorf("Expected sorted [a.CSV b.csv], got %v", paths)
	}
}

func TestBatchProcessor_ProcessDir_Empty(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)

	if _, err := processor.ProcessDir(context.Background(), t.TempDir()); err == nil {
		t.Error("Expected error for directory without CSV files")
	}
}
