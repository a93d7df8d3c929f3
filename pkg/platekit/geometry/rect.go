// Package geometry models axis-aligned pixel rectangles and the tiling of a
// well grid inside a plate image.
package geometry

import "fmt"

// Rect is an axis-aligned rectangle in pixel coordinates. (X0, Y0) is the
// top-left corner and (X1, Y1) the bottom-right, exclusive of neither.
// Construct with NewRect; a Rect that exists is valid.
type Rect struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// NewRect validates the corners and returns the rectangle. The origin must
// be non-negative and each corner pair strictly ordered.
func NewRect(x0, y0, x1, y1 float64) (Rect, error) {
	if x0 < 0 {
		return Rect{}, &OutOfBoundsError{Edge: EdgeLeft, Value: x0, Limit: 0}
	}
	if y0 < 0 {
		return Rect{}, &OutOfBoundsError{Edge: EdgeTop, Value: y0, Limit: 0}
	}
	if x0 >= x1 {
		return Rect{}, &FlippedRectError{Axis: AxisHorizontal, Low: x0, High: x1}
	}
	if y0 >= y1 {
		return Rect{}, &FlippedRectError{Axis: AxisVertical, Low: y0, High: y1}
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}, nil
}

// Width returns x1 - x0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns y1 - y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.X0 >= r.X0 && other.X1 <= r.X1 && other.Y0 >= r.Y0 && other.Y1 <= r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)→(%g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}
