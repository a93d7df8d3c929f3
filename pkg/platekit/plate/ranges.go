package plate

import (
	"regexp"
	"strings"
)

// termPattern matches one range term: a label, optionally followed by an
// operator and a second label. Operators are "-" or "–" (simple range),
// "*" (block range), and "..." or "…" (traversal range).
var termPattern = regexp.MustCompile(`^\s*([A-Z][0-9]{1,2})\s*(?:(-|\x{2013}|\*|\.\.\.|\x{2026})\s*([A-Z][0-9]{1,2}))?\s*$`)

// Parse expands a well-range expression into its labels, inclusive.
// An expression is one or more comma-separated terms:
//
//	A01       a single well
//	A01-A10   a run within one row (or one column, e.g. A01-E01)
//	A01*C03   the rectangular block spanned by the two corners
//	A01...C03 every well between the two, in linear index order
//
// Parsing stops at the first bad term and returns a *RangeSyntaxError.
func Parse(a Addressing, expression string) ([]string, error) {
	var labels []string
	for _, term := range strings.Split(expression, ",") {
		expanded, err := parseTerm(a, term)
		if err != nil {
			return nil, err
		}
		labels = append(labels, expanded...)
	}
	return labels, nil
}

func parseTerm(a Addressing, term string) ([]string, error) {
	m := termPattern.FindStringSubmatch(term)
	if m == nil {
		return nil, &RangeSyntaxError{
			Term:   strings.TrimSpace(term),
			Reason: "expected LABEL, LABEL-LABEL, LABEL*LABEL, or LABEL...LABEL",
		}
	}
	from, op, to := m[1], m[2], m[3]
	if op == "" {
		label, err := canonical(a, from)
		if err != nil {
			return nil, &RangeSyntaxError{Term: strings.TrimSpace(term), Err: err}
		}
		return []string{label}, nil
	}
	var expanded []string
	var err error
	switch op {
	case "-", "–":
		expanded, err = simpleRange(a, from, to)
	case "*":
		expanded, err = blockRange(a, from, to)
	default: // "..." or "…"
		expanded, err = traversalRange(a, from, to)
	}
	if err != nil {
		if _, ok := err.(*RangeSyntaxError); ok {
			return nil, err
		}
		return nil, &RangeSyntaxError{Term: strings.TrimSpace(term), Err: err}
	}
	return expanded, nil
}

// canonical validates a label against the plate and returns its two-digit
// form, so "A1" and "A01" expand identically.
func canonical(a Addressing, label string) (string, error) {
	rc, err := a.LabelToRC(label)
	if err != nil {
		return "", err
	}
	return a.RCToLabel(rc.Row, rc.Column)
}

// simpleRange expands a run within a single row (left to right) or a single
// column (top to bottom). Any other label pairing is rejected.
func simpleRange(a Addressing, from, to string) ([]string, error) {
	ar, err := a.LabelToRC(from)
	if err != nil {
		return nil, err
	}
	br, err := a.LabelToRC(to)
	if err != nil {
		return nil, err
	}
	switch {
	case ar.Row == br.Row:
		if ar.Column > br.Column {
			return nil, &RangeSyntaxError{
				Term:   from + "-" + to,
				Reason: "simple range runs right to left",
			}
		}
		labels := make([]string, 0, br.Column-ar.Column+1)
		for c := ar.Column; c <= br.Column; c++ {
			label, err := a.RCToLabel(ar.Row, c)
			if err != nil {
				return nil, err
			}
			labels = append(labels, label)
		}
		return labels, nil
	case ar.Column == br.Column:
		if ar.Row > br.Row {
			return nil, &RangeSyntaxError{
				Term:   from + "-" + to,
				Reason: "simple range runs bottom to top",
			}
		}
		labels := make([]string, 0, br.Row-ar.Row+1)
		for r := ar.Row; r <= br.Row; r++ {
			label, err := a.RCToLabel(r, ar.Column)
			if err != nil {
				return nil, err
			}
			labels = append(labels, label)
		}
		return labels, nil
	default:
		return nil, &RangeSyntaxError{
			Term:   from + "-" + to,
			Reason: "labels of a simple range must share a row or a column",
		}
	}
}

// blockRange expands the rectangular block spanned by the two corner labels,
// row-major. Corner order does not matter.
func blockRange(a Addressing, from, to string) ([]string, error) {
	ar, err := a.LabelToRC(from)
	if err != nil {
		return nil, err
	}
	br, err := a.LabelToRC(to)
	if err != nil {
		return nil, err
	}
	rLo, rHi := ar.Row, br.Row
	if rLo > rHi {
		rLo, rHi = rHi, rLo
	}
	cLo, cHi := ar.Column, br.Column
	if cLo > cHi {
		cLo, cHi = cHi, cLo
	}
	labels := make([]string, 0, (rHi-rLo+1)*(cHi-cLo+1))
	for r := rLo; r <= rHi; r++ {
		for c := cLo; c <= cHi; c++ {
			label, err := a.RCToLabel(r, c)
			if err != nil {
				return nil, err
			}
			labels = append(labels, label)
		}
	}
	return labels, nil
}

// traversalRange expands every well between the two labels in linear index
// order, crossing row boundaries in reading order.
func traversalRange(a Addressing, from, to string) ([]string, error) {
	ai, err := a.LabelToIndex(from)
	if err != nil {
		return nil, err
	}
	bi, err := a.LabelToIndex(to)
	if err != nil {
		return nil, err
	}
	if ai > bi {
		return nil, &RangeSyntaxError{
			Term:   from + "..." + to,
			Reason: "second label precedes the first in traversal order",
		}
	}
	labels := make([]string, 0, bi-ai+1)
	for i := ai; i <= bi; i++ {
		label, err := a.IndexToLabel(i)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, nil
}
