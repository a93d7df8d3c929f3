package geometry

import (
	"errors"
	"fmt"
)

// ErrNegativePadding indicates a layout was requested with padX or padY
// below zero.
var ErrNegativePadding = errors.New("well padding must be non-negative")

// Edge identifies one side of a rectangle.
type Edge int

const (
	EdgeLeft Edge = iota + 1
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// Axis identifies the horizontal or vertical direction.
type Axis int

const (
	AxisHorizontal Axis = iota + 1
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// OutOfBoundsError reports geometry crossing one edge of a bounding
// rectangle: a negative rectangle origin, or a well grid extending past the
// plate image. The edge is fixed at construction.
type OutOfBoundsError struct {
	// Edge is the edge that was crossed.
	Edge Edge
	// Value is the offending coordinate.
	Value float64
	// Limit is the bound the coordinate crossed.
	Limit float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s edge out of bounds: %g crosses %g", e.Edge, e.Value, e.Limit)
}

// Axis returns the axis the crossed edge lies on: horizontal for left and
// right, vertical for top and bottom.
func (e *OutOfBoundsError) Axis() Axis {
	if e.Edge == EdgeLeft || e.Edge == EdgeRight {
		return AxisHorizontal
	}
	return AxisVertical
}

// FlippedRectError reports a degenerate rectangle whose corners are equal
// or reversed along one axis.
type FlippedRectError struct {
	// Axis is the axis along which the corners are flipped.
	Axis Axis
	// Low is the corner coordinate that should be smaller.
	Low float64
	// High is the corner coordinate that should be larger.
	High float64
}

func (e *FlippedRectError) Error() string {
	return fmt.Sprintf("%s corners flipped: %g is not below %g", e.Axis, e.Low, e.High)
}
