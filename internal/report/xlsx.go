package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the spreadsheet report is written to.
const SheetName = "FTI"

// WriteXLSX writes the same table as WriteDelimited to a spreadsheet.
// Numeric values are stored as numbers.
func WriteXLSX(path string, fields []Field, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, 0, len(fields)+1)
	for _, h := range Header(fields) {
		header = append(header, h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, 0, len(row.Values)+1)
		values = append(values, row.Seq)
		for _, v := range row.Values {
			values = append(values, cellValue(v))
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.Seq, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func cellValue(s string) interface{} {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
