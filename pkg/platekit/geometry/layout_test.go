package geometry

import (
	"errors"
	"testing"

	"github.com/platekit/platekit-go/pkg/platekit/plate"
)

func mustRect(t *testing.T, x0, y0, x1, y1 float64) Rect {
	t.Helper()
	r, err := NewRect(x0, y0, x1, y1)
	if err != nil {
		t.Fatalf("NewRect(%g, %g, %g, %g) failed: %v", x0, y0, x1, y1, err)
	}
	return r
}

func TestBuildLayout(t *testing.T) {
	image := mustRect(t, 0, 0, 100, 100)
	anchor := mustRect(t, 0, 0, 40, 40)

	layout, err := BuildLayout(2, 2, image, anchor, 10, 10)
	if err != nil {
		t.Fatalf("BuildLayout failed: %v", err)
	}

	if layout.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", layout.Len())
	}
	if layout.NRows() != 2 || layout.NColumns() != 2 {
		t.Errorf("dimensions = %dx%d, expected 2x2", layout.NRows(), layout.NColumns())
	}
	if layout.Image() != image {
		t.Errorf("Image() = %v, expected %v", layout.Image(), image)
	}

	tests := []struct {
		row, column    int
		x0, y0, x1, y1 float64
	}{
		{0, 0, 0, 0, 40, 40},
		{0, 1, 50, 0, 90, 40},
		{1, 0, 0, 50, 40, 90},
		{1, 1, 50, 50, 90, 90},
	}
	for _, tt := range tests {
		roi, err := layout.Well(tt.row, tt.column)
		if err != nil {
			t.Errorf("Well(%d, %d) failed: %v", tt.row, tt.column, err)
			continue
		}
		want := Rect{X0: tt.x0, Y0: tt.y0, X1: tt.x1, Y1: tt.y1}
		if roi.Rect != want {
			t.Errorf("Well(%d, %d).Rect = %v, expected %v", tt.row, tt.column, roi.Rect, want)
		}
		if roi.Row != tt.row || roi.Column != tt.column {
			t.Errorf("Well(%d, %d) carries (%d, %d)", tt.row, tt.column, roi.Row, roi.Column)
		}
		if !image.Contains(roi.Rect) {
			t.Errorf("Well(%d, %d) extends past the image", tt.row, tt.column)
		}
	}
}

func TestBuildLayoutOrder(t *testing.T) {
	image := mustRect(t, 0, 0, 200, 200)
	anchor := mustRect(t, 0, 0, 30, 30)

	layout, err := BuildLayout(2, 3, image, anchor, 5, 5)
	if err != nil {
		t.Fatalf("BuildLayout failed: %v", err)
	}

	want := []plate.RC{
		{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2},
		{Row: 1, Column: 0}, {Row: 1, Column: 1}, {Row: 1, Column: 2},
	}
	got := layout.RCs()
	if len(got) != len(want) {
		t.Fatalf("RCs() returned %d keys, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RCs()[%d] = %+v, expected %+v", i, got[i], want[i])
		}
	}

	wells := layout.Wells()
	for i, roi := range wells {
		if (plate.RC{Row: roi.Row, Column: roi.Column}) != want[i] {
			t.Errorf("Wells()[%d] is (%d, %d), expected %+v", i, roi.Row, roi.Column, want[i])
		}
	}
}

func TestBuildLayoutOutOfBounds(t *testing.T) {
	tests := []struct {
		name          string
		image, anchor Rect
		padX, padY    float64
		wantEdge      Edge
	}{
		{
			name:     "right edge",
			image:    Rect{X0: 0, Y0: 0, X1: 100, Y1: 100},
			anchor:   Rect{X0: 0, Y0: 0, X1: 40, Y1: 40},
			padX:     25, // rightmost edge lands at 105
			padY:     10,
			wantEdge: EdgeRight,
		},
		{
			name:     "bottom edge",
			image:    Rect{X0: 0, Y0: 0, X1: 100, Y1: 100},
			anchor:   Rect{X0: 0, Y0: 0, X1: 40, Y1: 40},
			padX:     10,
			padY:     25,
			wantEdge: EdgeBottom,
		},
		{
			name:     "left edge",
			image:    Rect{X0: 10, Y0: 0, X1: 120, Y1: 100},
			anchor:   Rect{X0: 0, Y0: 0, X1: 40, Y1: 40},
			wantEdge: EdgeLeft,
		},
		{
			name:     "top edge",
			image:    Rect{X0: 0, Y0: 10, X1: 100, Y1: 120},
			anchor:   Rect{X0: 0, Y0: 0, X1: 40, Y1: 40},
			wantEdge: EdgeTop,
		},
	}

	for _, tt := range tests {
		layout, err := BuildLayout(2, 2, tt.image, tt.anchor, tt.padX, tt.padY)
		if layout != nil {
			t.Errorf("%s: a layout was produced despite the bounds violation", tt.name)
		}
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Errorf("%s: error = %v, expected *OutOfBoundsError", tt.name, err)
			continue
		}
		if oob.Edge != tt.wantEdge {
			t.Errorf("%s: edge = %v, expected %v", tt.name, oob.Edge, tt.wantEdge)
		}
	}
}

func TestBuildLayoutNegativePadding(t *testing.T) {
	image := mustRect(t, 0, 0, 100, 100)
	anchor := mustRect(t, 0, 0, 40, 40)

	if _, err := BuildLayout(2, 2, image, anchor, -1, 0); !errors.Is(err, ErrNegativePadding) {
		t.Errorf("padX < 0: error = %v, expected ErrNegativePadding", err)
	}
	if _, err := BuildLayout(2, 2, image, anchor, 0, -1); !errors.Is(err, ErrNegativePadding) {
		t.Errorf("padY < 0: error = %v, expected ErrNegativePadding", err)
	}
}

func TestLayoutWellLookupErrors(t *testing.T) {
	image := mustRect(t, 0, 0, 100, 100)
	anchor := mustRect(t, 0, 0, 40, 40)

	layout, err := BuildLayout(2, 2, image, anchor, 10, 10)
	if err != nil {
		t.Fatalf("BuildLayout failed: %v", err)
	}

	var oor *plate.OutOfRangeError
	_, err = layout.Well(2, 0)
	if !errors.As(err, &oor) {
		t.Fatalf("Well(2, 0) error = %v, expected *plate.OutOfRangeError", err)
	}
	if oor.What != "row" || oor.Value != 2 {
		t.Errorf("unexpected bounds error fields: %+v", oor)
	}

	_, err = layout.Well(0, -1)
	if !errors.As(err, &oor) {
		t.Fatalf("Well(0, -1) error = %v, expected *plate.OutOfRangeError", err)
	}
	if oor.What != "column" || oor.Value != -1 {
		t.Errorf("unexpected bounds error fields: %+v", oor)
	}
}
