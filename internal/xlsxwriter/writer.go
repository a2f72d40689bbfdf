// =============================================================================
// PDF Bill Extraction - XLSX Workbook Writer
// =============================================================================
//
// Optional export of both output tables into a single workbook. Unlike the
// CSV files, a workbook needs no byte-order mark and no apostrophe hack:
// every cell is written as an explicit string value, so spreadsheet tools
// cannot mangle the numeric identifiers.
//
// Sheet names match the CSV file stems: 账单 for the flat table, 透视表 for
// the pivot table.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	BillsSheet = "账单"
	PivotSheet = "透视表"
)

// WriteWorkbook writes the flat and pivot tables as two sheets of a new
// workbook at path.
func WriteWorkbook(path string, flat, pivot [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", BillsSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", BillsSheet, err)
	}
	if _, err := f.NewSheet(PivotSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", PivotSheet, err)
	}

	if err := writeSheet(f, BillsSheet, flat); err != nil {
		return err
	}
	if err := writeSheet(f, PivotSheet, pivot); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeSheet fills one sheet row by row. Values go in as strings, minus the
// leading apostrophe the identifier columns carry in the CSV tables: that
// prefix exists only to keep spreadsheet CSV import from mangling numeric
// identifiers, and an explicit string cell needs no such hint.
func writeSheet(f *excelize.File, sheet string, table [][]string) error {
	for rowIndex, row := range table {
		for colIndex, value := range row {
			value = strings.TrimPrefix(value, "'")
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if err != nil {
				return fmt.Errorf("failed to address cell (%d,%d): %w", colIndex+1, rowIndex+1, err)
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
