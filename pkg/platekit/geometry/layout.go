package geometry

import (
	"github.com/platekit/platekit-go/pkg/platekit/plate"
)

// WellROI is the pixel rectangle of one well, together with the 0-based
// (row, column) it belongs to. Created only by BuildLayout.
type WellROI struct {
	// Row is the 0-based row of the well.
	Row int
	// Column is the 0-based column of the well.
	Column int
	// Rect is the well's pixel rectangle.
	Rect Rect
}

// Layout maps every well of a plate to its pixel rectangle within a plate
// image. Immutable once built.
type Layout struct {
	nRows    int
	nColumns int
	image    Rect
	wells    map[plate.RC]WellROI
	order    []plate.RC
}

// BuildLayout tiles an nRows by nColumns grid of well rectangles inside
// image. Every well has anchor's width and height; anchor is the top-left
// well's rectangle, padX and padY the gaps between adjacent wells. The
// whole grid must fit inside image: each violated edge is reported as an
// *OutOfBoundsError, and no Layout is produced on failure.
func BuildLayout(nRows, nColumns int, image, anchor Rect, padX, padY float64) (*Layout, error) {
	if nRows < 1 || nRows > plate.MaxRows {
		return nil, &plate.OutOfRangeError{What: "row count", Value: nRows, Min: 1, Max: plate.MaxRows}
	}
	if nColumns < 1 || nColumns > plate.MaxColumns {
		return nil, &plate.OutOfRangeError{What: "column count", Value: nColumns, Min: 1, Max: plate.MaxColumns}
	}
	if padX < 0 || padY < 0 {
		return nil, ErrNegativePadding
	}
	width := anchor.Width()
	height := anchor.Height()
	if anchor.X0 < image.X0 {
		return nil, &OutOfBoundsError{Edge: EdgeLeft, Value: anchor.X0, Limit: image.X0}
	}
	rightmost := anchor.X0 + float64(nColumns)*width + float64(nColumns-1)*padX
	if rightmost > image.X1 {
		return nil, &OutOfBoundsError{Edge: EdgeRight, Value: rightmost, Limit: image.X1}
	}
	if anchor.Y0 < image.Y0 {
		return nil, &OutOfBoundsError{Edge: EdgeTop, Value: anchor.Y0, Limit: image.Y0}
	}
	bottommost := anchor.Y0 + float64(nRows)*height + float64(nRows-1)*padY
	if bottommost > image.Y1 {
		return nil, &OutOfBoundsError{Edge: EdgeBottom, Value: bottommost, Limit: image.Y1}
	}

	l := &Layout{
		nRows:    nRows,
		nColumns: nColumns,
		image:    image,
		wells:    make(map[plate.RC]WellROI, nRows*nColumns),
		order:    make([]plate.RC, 0, nRows*nColumns),
	}
	y := anchor.Y0
	for row := 0; row < nRows; row++ {
		x := anchor.X0
		for column := 0; column < nColumns; column++ {
			rc := plate.RC{Row: row, Column: column}
			l.wells[rc] = WellROI{
				Row:    row,
				Column: column,
				Rect:   Rect{X0: x, Y0: y, X1: x + width, Y1: y + height},
			}
			l.order = append(l.order, rc)
			x += width + padX
		}
		y += height + padY
	}
	return l, nil
}

// NRows returns the number of rows.
func (l *Layout) NRows() int { return l.nRows }

// NColumns returns the number of columns.
func (l *Layout) NColumns() int { return l.nColumns }

// Image returns the plate image rectangle the layout was built against.
func (l *Layout) Image() Rect { return l.image }

// Len returns the number of wells, always nRows * nColumns.
func (l *Layout) Len() int { return len(l.order) }

// Well returns the ROI of the well at the 0-based (row, column).
func (l *Layout) Well(row, column int) (WellROI, error) {
	roi, ok := l.wells[plate.RC{Row: row, Column: column}]
	if !ok {
		if row < 0 || row >= l.nRows {
			return WellROI{}, &plate.OutOfRangeError{What: "row", Value: row, Min: 0, Max: l.nRows - 1}
		}
		return WellROI{}, &plate.OutOfRangeError{What: "column", Value: column, Min: 0, Max: l.nColumns - 1}
	}
	return roi, nil
}

// RCs returns every (row, column) key in row-major order.
func (l *Layout) RCs() []plate.RC {
	rcs := make([]plate.RC, len(l.order))
	copy(rcs, l.order)
	return rcs
}

// Wells returns every WellROI in row-major order.
func (l *Layout) Wells() []WellROI {
	rois := make([]WellROI, 0, len(l.order))
	for _, rc := range l.order {
		rois = append(rois, l.wells[rc])
	}
	return rois
}
