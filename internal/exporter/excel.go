// Package exporter writes report aggregates to an Excel workbook, one
// sheet per table.
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

// ExcelExporter writes a report as an .xlsx workbook
type ExcelExporter struct{}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export writes every aggregate table to its own sheet and saves the
// workbook at path
func (e *ExcelExporter) Export(rep *model.Report, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	f.SetSheetName("Sheet1", "Yearly")
	if err := e.writeYearly(f, rep); err != nil {
		return err
	}
	if err := e.writeRaces(f, rep); err != nil {
		return err
	}
	if err := e.writeDisparity(f, rep); err != nil {
		return err
	}
	if err := e.writeArmed(f, rep); err != nil {
		return err
	}
	if err := e.writePlaces(f, "States", rep.Geography.TopStates); err != nil {
		return err
	}
	if err := e.writePlaces(f, "Cities", rep.Geography.TopCities); err != nil {
		return err
	}
	if err := e.writeRegions(f, rep); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	return nil
}

func (e *ExcelExporter) writeYearly(f *excelize.File, rep *model.Report) error {
	if err := e.writeHeader(f, "Yearly", []string{"Year", "Shootings"}); err != nil {
		return err
	}
	for i, yc := range rep.Temporal.Yearly {
		row := i + 2
		if err := setRowValues(f, "Yearly", row, yc.Year, yc.Count); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeRaces(f *excelize.File, rep *model.Report) error {
	if err := e.writeHeader(f, "Races", []string{"Race", "Count", "PercentOfTotal"}); err != nil {
		return err
	}
	for i, rc := range rep.Demographics.Races {
		if err := setRowValues(f, "Races", i+2, rc.Race.Label(), rc.Count, rc.Percent); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeDisparity(f *excelize.File, rep *model.Report) error {
	if err := e.writeHeader(f, "Disparity", []string{"Race", "ShootingPct", "PopulationPct", "Ratio"}); err != nil {
		return err
	}
	for i, row := range rep.Demographics.Disparity {
		if err := setRowValues(f, "Disparity", i+2, row.Race.Label(), row.ShootingPct, row.PopulationPct, row.Ratio); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeArmed(f *excelize.File, rep *model.Report) error {
	if err := e.writeHeader(f, "Armed", []string{"Status", "Count"}); err != nil {
		return err
	}
	for i, ac := range rep.Demographics.Armed {
		if err := setRowValues(f, "Armed", i+2, ac.Label, ac.Count); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writePlaces(f *excelize.File, sheet string, places []model.PlaceCount) error {
	if err := e.writeHeader(f, sheet, []string{"Name", "Count", "PercentOfTotal"}); err != nil {
		return err
	}
	for i, pc := range places {
		if err := setRowValues(f, sheet, i+2, pc.Name, pc.Count, pc.Percent); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeRegions(f *excelize.File, rep *model.Report) error {
	if err := e.writeHeader(f, "Regions", []string{"Region", "Count", "PercentOfMapped"}); err != nil {
		return err
	}
	for i, rc := range rep.Geography.Regions {
		if err := setRowValues(f, "Regions", i+2, rc.Region, rc.Count, rc.Percent); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader ensures the sheet exists and writes its header row
func (e *ExcelExporter) writeHeader(f *excelize.File, sheet string, header []string) error {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
	}
	return setRowValues(f, sheet, 1, toAny(header)...)
}

func setRowValues(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
