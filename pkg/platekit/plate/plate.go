// Package plate converts among the three equivalent representations of a
// multiwell-plate position: a linear index, a (row, column) pair, and a
// label such as "A01". It also parses textual well-range expressions.
package plate

import (
	"fmt"
)

// MaxRows is the largest row count a single-letter row label can represent.
const MaxRows = 26

// MaxColumns is the largest column count a two-digit column label can represent.
const MaxColumns = 99

// RC is a (row, column) position on a plate, counted in the base of the
// Addressing that produced it.
type RC struct {
	// Row is the row coordinate.
	Row int
	// Column is the column coordinate.
	Column int
}

// Addressing converts well positions for a plate of fixed dimensions.
// Indices, rows, and columns all count from Base (0 or 1). Labels always
// display a 1-based, zero-padded column and start at "A01" regardless of
// Base. The conversions form a bijection over the valid index range.
type Addressing struct {
	nRows    int
	nColumns int
	base     int
}

// New returns an Addressing for a plate with nRows rows and nColumns
// columns, counting from base (0 or 1). Plates are limited to MaxRows rows
// and MaxColumns columns so that every well has a well-formed label.
func New(nRows, nColumns, base int) (Addressing, error) {
	if base != 0 && base != 1 {
		return Addressing{}, fmt.Errorf("base must be 0 or 1, got %d", base)
	}
	if nRows < 1 || nRows > MaxRows {
		return Addressing{}, &OutOfRangeError{What: "row count", Value: nRows, Min: 1, Max: MaxRows}
	}
	if nColumns < 1 || nColumns > MaxColumns {
		return Addressing{}, &OutOfRangeError{What: "column count", Value: nColumns, Min: 1, Max: MaxColumns}
	}
	return Addressing{nRows: nRows, nColumns: nColumns, base: base}, nil
}

// NewBase0 returns a 0-based Addressing: index 0 is well "A01" at (0, 0).
func NewBase0(nRows, nColumns int) (Addressing, error) {
	return New(nRows, nColumns, 0)
}

// NewBase1 returns a 1-based Addressing: index 1 is well "A01" at (1, 1).
func NewBase1(nRows, nColumns int) (Addressing, error) {
	return New(nRows, nColumns, 1)
}

// NRows returns the number of rows.
func (a Addressing) NRows() int { return a.nRows }

// NColumns returns the number of columns.
func (a Addressing) NColumns() int { return a.nColumns }

// Base returns the index base (0 or 1).
func (a Addressing) Base() int { return a.base }

// NWells returns the total number of wells.
func (a Addressing) NWells() int { return a.nRows * a.nColumns }

func (a Addressing) String() string {
	return fmt.Sprintf("plate(%d×%d, base %d)", a.nRows, a.nColumns, a.base)
}

// LabelToIndex parses a label and returns its linear index.
func (a Addressing) LabelToIndex(label string) (int, error) {
	r0, c0, err := a.parseLabel(label)
	if err != nil {
		return 0, err
	}
	return r0*a.nColumns + c0 + a.base, nil
}

// LabelToRC parses a label and returns its (row, column) pair.
func (a Addressing) LabelToRC(label string) (RC, error) {
	r0, c0, err := a.parseLabel(label)
	if err != nil {
		return RC{}, err
	}
	return RC{Row: r0 + a.base, Column: c0 + a.base}, nil
}

// IndexToLabel returns the label of the well at linear index i.
func (a Addressing) IndexToLabel(i int) (string, error) {
	if err := a.checkIndex(i); err != nil {
		return "", err
	}
	i0 := i - a.base
	return formatLabel(i0/a.nColumns, i0%a.nColumns), nil
}

// IndexToRC returns the (row, column) pair of the well at linear index i.
func (a Addressing) IndexToRC(i int) (RC, error) {
	if err := a.checkIndex(i); err != nil {
		return RC{}, err
	}
	i0 := i - a.base
	return RC{Row: i0/a.nColumns + a.base, Column: i0%a.nColumns + a.base}, nil
}

// RCToLabel returns the label of the well at (row, column).
func (a Addressing) RCToLabel(row, column int) (string, error) {
	if err := a.checkRC(row, column); err != nil {
		return "", err
	}
	return formatLabel(row-a.base, column-a.base), nil
}

// RCToIndex returns the linear index of the well at (row, column).
func (a Addressing) RCToIndex(row, column int) (int, error) {
	if err := a.checkRC(row, column); err != nil {
		return 0, err
	}
	return (row-a.base)*a.nColumns + (column - a.base) + a.base, nil
}

// Labels returns every well label in row-major order.
func (a Addressing) Labels() []string {
	labels := make([]string, 0, a.NWells())
	for r0 := 0; r0 < a.nRows; r0++ {
		for c0 := 0; c0 < a.nColumns; c0++ {
			labels = append(labels, formatLabel(r0, c0))
		}
	}
	return labels
}

// RCs returns every (row, column) pair in row-major order.
func (a Addressing) RCs() []RC {
	rcs := make([]RC, 0, a.NWells())
	for r0 := 0; r0 < a.nRows; r0++ {
		for c0 := 0; c0 < a.nColumns; c0++ {
			rcs = append(rcs, RC{Row: r0 + a.base, Column: c0 + a.base})
		}
	}
	return rcs
}

// Indices returns every linear index in ascending order.
func (a Addressing) Indices() []int {
	indices := make([]int, a.NWells())
	for i := range indices {
		indices[i] = i + a.base
	}
	return indices
}

// parseLabel parses a label into 0-based (row, column) offsets, validating
// against the plate dimensions.
func (a Addressing) parseLabel(label string) (r0, c0 int, err error) {
	if len(label) < 2 || len(label) > 3 {
		return 0, 0, &MalformedLabelError{Label: label, Reason: "expected one row letter followed by 1-2 column digits"}
	}
	if label[0] < 'A' || label[0] > 'Z' {
		return 0, 0, &MalformedLabelError{Label: label, Reason: "row must be an uppercase letter A-Z"}
	}
	column := 0
	for _, ch := range label[1:] {
		if ch < '0' || ch > '9' {
			return 0, 0, &MalformedLabelError{Label: label, Reason: "column must be 1-2 digits"}
		}
		column = column*10 + int(ch-'0')
	}
	r0 = int(label[0] - 'A')
	if r0 >= a.nRows {
		return 0, 0, &MalformedLabelError{
			Label:  label,
			Reason: fmt.Sprintf("row %c is beyond the last row %c", label[0], 'A'+byte(a.nRows-1)),
		}
	}
	if column < 1 || column > a.nColumns {
		return 0, 0, &MalformedLabelError{
			Label:  label,
			Reason: fmt.Sprintf("column %d is outside 1-%d", column, a.nColumns),
		}
	}
	return r0, column - 1, nil
}

func (a Addressing) checkIndex(i int) error {
	if i < a.base || i > a.NWells()+a.base-1 {
		return &OutOfRangeError{What: "index", Value: i, Min: a.base, Max: a.NWells() + a.base - 1}
	}
	return nil
}

func (a Addressing) checkRC(row, column int) error {
	if row < a.base || row > a.nRows+a.base-1 {
		return &OutOfRangeError{What: "row", Value: row, Min: a.base, Max: a.nRows + a.base - 1}
	}
	if column < a.base || column > a.nColumns+a.base-1 {
		return &OutOfRangeError{What: "column", Value: column, Min: a.base, Max: a.nColumns + a.base - 1}
	}
	return nil
}

// formatLabel builds a label from 0-based (row, column) offsets. The column
// displays 1-based and zero-padded to two digits.
func formatLabel(r0, c0 int) string {
	return fmt.Sprintf("%c%02d", 'A'+byte(r0), c0+1)
}
