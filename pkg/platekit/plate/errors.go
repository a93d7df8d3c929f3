package plate

import "fmt"

// OutOfRangeError reports an index, row, or column outside the valid range
// for a plate's dimensions and base.
type OutOfRangeError struct {
	// What names the offending quantity: "index", "row", "column",
	// "row count", or "column count".
	What string
	// Value is the offending value.
	Value int
	// Min is the smallest valid value, inclusive.
	Min int
	// Max is the largest valid value, inclusive.
	Max int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d is out of range [%d, %d]", e.What, e.Value, e.Min, e.Max)
}

// MalformedLabelError reports a well label that does not match the
// letter-plus-digits pattern, or that names a position outside the plate.
type MalformedLabelError struct {
	// Label is the offending label as given.
	Label string
	// Reason describes what is wrong with it.
	Reason string
}

func (e *MalformedLabelError) Error() string {
	return fmt.Sprintf("malformed well label %q: %s", e.Label, e.Reason)
}

// RangeSyntaxError reports a well-range term that matches none of the
// grammar forms, or whose label pair is invalid for its operator.
type RangeSyntaxError struct {
	// Term is the offending term, trimmed of surrounding whitespace.
	Term string
	// Reason describes the violation when it is grammatical.
	Reason string
	// Err is the underlying label or bounds error, if any.
	Err error
}

func (e *RangeSyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad well range %q: %v", e.Term, e.Err)
	}
	return fmt.Sprintf("bad well range %q: %s", e.Term, e.Reason)
}

func (e *RangeSyntaxError) Unwrap() error { return e.Err }
