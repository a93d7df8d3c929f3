// Package platemap writes and reads plate-map workbooks: one sheet per
// plate, column numbers across the top, row letters down the left, and one
// body cell per well.
package platemap

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/platekit/platekit-go/pkg/platekit/plate"
)

// SheetName is the sheet plate maps are written to and read from.
const SheetName = "Plate"

// Write saves a plate-map workbook at path. values maps well labels to the
// cell contents for those wells; wells absent from values are left blank.
// Labels are validated against the addressing before anything is written.
func Write(path string, a plate.Addressing, values map[string]string) error {
	canon := make(map[string]string, len(values))
	for label, value := range values {
		rc, err := a.LabelToRC(label)
		if err != nil {
			return err
		}
		c, err := a.RCToLabel(rc.Row, rc.Column)
		if err != nil {
			return err
		}
		canon[c] = value
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := writeHeaders(f, a); err != nil {
		return err
	}
	for r0 := 0; r0 < a.NRows(); r0++ {
		for c0 := 0; c0 < a.NColumns(); c0++ {
			label, err := a.RCToLabel(r0+a.Base(), c0+a.Base())
			if err != nil {
				return err
			}
			value, ok := canon[label]
			if !ok {
				continue
			}
			cell, err := wellCell(r0, c0)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

// Read loads the plate map at path and returns the contents of every
// non-empty well cell, keyed by well label.
func Read(path string, a plate.Addressing) (map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values := make(map[string]string)
	for r0 := 0; r0 < a.NRows(); r0++ {
		for c0 := 0; c0 < a.NColumns(); c0++ {
			cell, err := wellCell(r0, c0)
			if err != nil {
				return nil, err
			}
			value, err := f.GetCellValue(SheetName, cell)
			if err != nil {
				return nil, err
			}
			if value == "" {
				continue
			}
			label, err := a.RCToLabel(r0+a.Base(), c0+a.Base())
			if err != nil {
				return nil, err
			}
			values[label] = value
		}
	}
	return values, nil
}

// writeHeaders writes the column numbers along row 1 and the row letters
// down column A, then sizes the grid cells.
func writeHeaders(f *excelize.File, a plate.Addressing) error {
	for c0 := 0; c0 < a.NColumns(); c0++ {
		cell, err := excelize.CoordinatesToCellName(c0+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, c0+1); err != nil {
			return err
		}
	}
	for r0 := 0; r0 < a.NRows(); r0++ {
		cell, err := excelize.CoordinatesToCellName(1, r0+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, fmt.Sprintf("%c", 'A'+byte(r0))); err != nil {
			return err
		}
	}
	last, err := excelize.ColumnNumberToName(a.NColumns() + 1)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", "A", headerColumnWidth); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", last, wellColumnWidth); err != nil {
		return err
	}
	for r0 := 0; r0 < a.NRows(); r0++ {
		if err := f.SetRowHeight(SheetName, r0+2, wellRowHeight); err != nil {
			return err
		}
	}
	return nil
}

// wellCell returns the workbook cell holding the 0-based (row, column)
// well: the body starts at B2, below and right of the headers.
func wellCell(r0, c0 int) (string, error) {
	return excelize.CoordinatesToCellName(c0+2, r0+2)
}
