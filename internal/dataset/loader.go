// Package dataset loads fatal police shooting records from the Washington
// Post CSV snapshot format.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

// LoadResult contains the parsed incidents and load diagnostics
type LoadResult struct {
	Incidents []model.Incident `json:"incidents"`
	Columns   []string         `json:"columns"` // Header names found in the file
	Skipped   int              `json:"skipped"` // Rows dropped for missing/unparseable dates
}

// Loader parses the incident CSV into typed records
type Loader struct {
	dateLayout string
}

// NewLoader creates a new Loader. An empty layout falls back to ISO dates.
func NewLoader(dateLayout string) *Loader {
	if dateLayout == "" {
		dateLayout = "2006-01-02"
	}
	return &Loader{dateLayout: dateLayout}
}

// Load reads and parses the CSV at path. Any failure to open or read the
// file aborts the load; there is no retry and no partial recovery. Optional
// columns absent from the header are skipped.
func (l *Loader) Load(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // Snapshots vary in trailing columns

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := newColumnIndex(header)
	if !cols.has("date") {
		return nil, fmt.Errorf("dataset has no date column (columns: %s)", strings.Join(header, ", "))
	}

	result := &LoadResult{Columns: header}

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		date, err := time.Parse(l.dateLayout, cols.get(row, "date"))
		if err != nil {
			result.Skipped++
			continue
		}

		inc := model.Incident{
			ID:        cols.get(row, "id"),
			Name:      cols.get(row, "name"),
			Date:      date,
			Year:      date.Year(),
			Month:     date.Month(),
			DayOfWeek: date.Weekday(),
			Race:      model.Race(strings.ToUpper(cols.get(row, "race"))),
			Gender:    strings.ToUpper(cols.get(row, "gender")),
			Armed:     NormalizeArmed(cols.get(row, "armed")),
			State:     strings.ToUpper(cols.get(row, "state")),
			City:      cols.get(row, "city"),
		}

		if raw := cols.get(row, "age"); raw != "" {
			if age, err := strconv.ParseFloat(raw, 64); err == nil {
				inc.Age = age
				inc.HasAge = true
			}
		}

		result.Incidents = append(result.Incidents, inc)
	}

	if len(result.Incidents) == 0 {
		return nil, fmt.Errorf("no parseable records in %s (%d rows skipped)", path, result.Skipped)
	}

	return result, nil
}

// NormalizeArmed collapses raw armed-status strings into the labels used by
// the armed-status breakdown. Blank and unknown values both map to
// "unknown".
func NormalizeArmed(raw string) string {
	armed := strings.ToLower(strings.TrimSpace(raw))
	switch armed {
	case "":
		return "unknown"
	case "gun":
		return "firearm"
	case "knife":
		return "knife/blade"
	case "unknown weapon":
		return "unknown"
	default:
		return armed
	}
}

// columnIndex resolves header names to field positions
type columnIndex map[string]int

func newColumnIndex(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func (c columnIndex) has(name string) bool {
	_, ok := c[name]
	return ok
}

// get returns the trimmed field value for a named column, or "" when the
// column is absent or the row is short
func (c columnIndex) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
