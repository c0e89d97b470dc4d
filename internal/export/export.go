// Copyright Geoffrey Challen, 2026. All rights reserved.

// Package export reads and writes the intermediate dataset artifacts: the
// primary JSON dataset exchanged between pipeline stages, and the secondary
// flat renderings (CSV, XLSX, YAML) for spreadsheet analysis.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

// WriteJSON writes the dataset as indented JSON.
func WriteJSON(path string, ds types.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dataset %s: %w", path, err)
	}
	return nil
}

// LoadDataset reads a dataset written by WriteJSON.
func LoadDataset(path string) (types.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	var ds types.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return types.Dataset{}, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return ds, nil
}

// WriteYAML writes the dataset as YAML.
func WriteYAML(path string, ds types.Dataset) error {
	data, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dataset %s: %w", path, err)
	}
	return nil
}

// flatHeader is the column set of the one-row-per-person renderings.
var flatHeader = []string{
	"Name", "Faculty Type", "Rank", "Full Time", "Joint Appt",
	"Present Salary", "Proposed Salary", "FTE", "Primary Title",
}

// flatRow projects a record onto the flat column set. Only primary-position
// and total fields survive; per-position detail stays in the JSON dataset.
func flatRow(rec types.Record) []string {
	return []string{
		rec.Name,
		rec.FacultyType,
		rec.Rank,
		strconv.FormatBool(rec.IsFullTimeHere),
		strconv.FormatBool(rec.IsJointAppointment),
		strconv.FormatFloat(rec.TotalPresentSalary, 'f', 2, 64),
		strconv.FormatFloat(rec.TotalProposedSalary, 'f', 2, 64),
		strconv.FormatFloat(rec.TotalPresentFTE, 'f', -1, 64),
		rec.PrimaryPosition().Title,
	}
}

// WriteCSV writes the flat table as CSV.
func WriteCSV(path string, ds types.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(flatHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range ds.Faculty {
		if err := w.Write(flatRow(rec)); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV %s: %w", path, err)
	}
	return f.Close()
}

// WriteXLSX writes the flat table as an XLSX workbook with one sheet.
func WriteXLSX(path string, ds types.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Faculty"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	for col, h := range flatHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header cell: %w", err)
		}
	}

	for i, rec := range ds.Faculty {
		row := i + 2
		values := []any{
			rec.Name, rec.FacultyType, rec.Rank,
			rec.IsFullTimeHere, rec.IsJointAppointment,
			rec.TotalPresentSalary, rec.TotalProposedSalary,
			rec.TotalPresentFTE, rec.PrimaryPosition().Title,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}
