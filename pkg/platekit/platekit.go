package platekit

import (
	"github.com/platekit/platekit-go/pkg/platekit/plate"
)

// Well is one plate position in all three equivalent representations.
type Well struct {
	// Label is the alphanumeric form, e.g. "A01".
	Label string `json:"label"`
	// Index is the linear index in the addressing's base.
	Index int `json:"index"`
	// Row is the row coordinate in the addressing's base.
	Row int `json:"row"`
	// Column is the column coordinate in the addressing's base.
	Column int `json:"column"`
}

// Expand parses a well-range expression under the options' plate
// convention and returns the labels, inclusive and in order.
func Expand(expression string, opts Options) ([]string, error) {
	a, err := opts.Addressing()
	if err != nil {
		return nil, err
	}
	return plate.Parse(a, expression)
}

// Describe resolves a well label to all three representations.
func Describe(label string, opts Options) (Well, error) {
	a, err := opts.Addressing()
	if err != nil {
		return Well{}, err
	}
	rc, err := a.LabelToRC(label)
	if err != nil {
		return Well{}, err
	}
	return describeRC(a, rc)
}

// DescribeIndex resolves a linear index to all three representations.
func DescribeIndex(index int, opts Options) (Well, error) {
	a, err := opts.Addressing()
	if err != nil {
		return Well{}, err
	}
	rc, err := a.IndexToRC(index)
	if err != nil {
		return Well{}, err
	}
	return describeRC(a, rc)
}

func describeRC(a plate.Addressing, rc plate.RC) (Well, error) {
	label, err := a.RCToLabel(rc.Row, rc.Column)
	if err != nil {
		return Well{}, err
	}
	index, err := a.RCToIndex(rc.Row, rc.Column)
	if err != nil {
		return Well{}, err
	}
	return Well{Label: label, Index: index, Row: rc.Row, Column: rc.Column}, nil
}
