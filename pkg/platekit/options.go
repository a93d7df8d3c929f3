// Package platekit assembles plate addressing, the well-range grammar, and
// ROI layout behind a small facade.
package platekit

import (
	"github.com/platekit/platekit-go/pkg/platekit/plate"
)

// Options selects the plate convention facade calls operate under.
type Options struct {
	// Rows is the number of plate rows.
	Rows int
	// Columns is the number of plate columns.
	Columns int
	// Base is the index base, 0 or 1.
	Base int
}

// DefaultOptions returns a standard 96-well plate addressed 1-based.
func DefaultOptions() Options {
	return Options{Rows: 8, Columns: 12, Base: 1}
}

// Addressing builds the conversion context for the options.
func (o Options) Addressing() (plate.Addressing, error) {
	return plate.New(o.Rows, o.Columns, o.Base)
}
