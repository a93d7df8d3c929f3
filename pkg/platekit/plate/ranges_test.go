package plate

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustBase1(t *testing.T, nRows, nColumns int) Addressing {
	t.Helper()
	a, err := NewBase1(nRows, nColumns)
	if err != nil {
		t.Fatalf("NewBase1(%d, %d) failed: %v", nRows, nColumns, err)
	}
	return a
}

func TestParse(t *testing.T) {
	a := mustBase1(t, 8, 12)

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{"single label", "A01", []string{"A01"}},
		{"single label short form", "A1", []string{"A01"}},
		{"row run", "A01-A04", []string{"A01", "A02", "A03", "A04"}},
		{"column run", "A01-D01", []string{"A01", "B01", "C01", "D01"}},
		{"en dash", "A01–A03", []string{"A01", "A02", "A03"}},
		{"block", "A01*B02", []string{"A01", "A02", "B01", "B02"}},
		{"block reversed corners", "B02*A01", []string{"A01", "A02", "B01", "B02"}},
		{"traversal within a row", "A01...A03", []string{"A01", "A02", "A03"}},
		{"traversal across rows", "A12...B02", []string{"A12", "B01", "B02"}},
		{"unicode ellipsis", "A12…B01", []string{"A12", "B01"}},
		{"comma-separated terms", "A01-A02,B03,C01*C02", []string{"A01", "A02", "B03", "C01", "C02"}},
		{"whitespace insignificant", "  A01  -  A03 , B01 ", []string{"A01", "A02", "A03", "B01"}},
	}

	for _, tt := range tests {
		got, err := Parse(a, tt.expr)
		if err != nil {
			t.Errorf("%s: Parse(%q) failed: %v", tt.name, tt.expr, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: Parse(%q) = %v, expected %v", tt.name, tt.expr, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	a := mustBase1(t, 8, 12)

	tests := []struct {
		name string
		expr string
	}{
		{"diagonal simple range", "A01-B02"},
		{"reversed row run", "A04-A01"},
		{"reversed column run", "D01-A01"},
		{"reversed traversal", "B02...A12"},
		{"unknown operator", "A01~B02"},
		{"not a term", "bogus"},
		{"empty term", "A01,,A02"},
		{"row beyond plate", "Z01"},
		{"column beyond plate", "A13-A14"},
	}

	for _, tt := range tests {
		got, err := Parse(a, tt.expr)
		if err == nil {
			t.Errorf("%s: Parse(%q) = %v, expected error", tt.name, tt.expr, got)
			continue
		}
		var syntaxErr *RangeSyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("%s: Parse(%q) error = %v, expected *RangeSyntaxError", tt.name, tt.expr, err)
		}
	}
}

func TestParseNamesOffendingTerm(t *testing.T) {
	a := mustBase1(t, 8, 12)

	_, err := Parse(a, "A01-A03, what")
	var syntaxErr *RangeSyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *RangeSyntaxError, got %v", err)
	}
	if syntaxErr.Term != "what" {
		t.Errorf("error names term %q, expected %q", syntaxErr.Term, "what")
	}
}

func TestParseWrapsLabelErrors(t *testing.T) {
	a := mustBase1(t, 8, 12)

	_, err := Parse(a, "I01")
	var malformed *MalformedLabelError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected wrapped *MalformedLabelError, got %v", err)
	}
	if malformed.Label != "I01" {
		t.Errorf("wrapped error names label %q, expected I01", malformed.Label)
	}
}

func TestParseMatchesOriginalFixtures(t *testing.T) {
	// The 4x4 plate expansions pinned by the upstream behavior.
	a := mustBase1(t, 4, 4)

	tests := []struct {
		expr string
		want []string
	}{
		{"A01-C01", []string{"A01", "B01", "C01"}},
		{"A1-C1", []string{"A01", "B01", "C01"}},
		{"A01...A03", []string{"A01", "A02", "A03"}},
		{"A01-A04", []string{"A01", "A02", "A03", "A04"}},
		{"A01...B02", []string{"A01", "A02", "A03", "A04", "B01", "B02"}},
		{"A01*B02", []string{"A01", "A02", "B01", "B02"}},
	}

	for _, tt := range tests {
		got, err := Parse(a, tt.expr)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.expr, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %v, expected %v", tt.expr, got, tt.want)
		}
	}
}

func TestParseFailFast(t *testing.T) {
	a := mustBase1(t, 8, 12)

	labels, err := Parse(a, "A01-A03,XYZ,B01")
	if err == nil {
		t.Fatal("expected error for malformed middle term")
	}
	if labels != nil {
		t.Errorf("expected no labels on failure, got %v", labels)
	}
}

func TestParseIdempotence(t *testing.T) {
	a := mustBase1(t, 8, 12)

	first, err := Parse(a, "A01-A04,B06*C08,D01...D03")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	second, err := Parse(a, strings.Join(first, ","))
	if err != nil {
		t.Fatalf("re-Parse failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parsing the joined labels changed the result: %v vs %v", first, second)
	}
}
