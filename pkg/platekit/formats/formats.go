// Package formats provides standard multiwell-plate formats and loading of
// custom formats from YAML files.
package formats

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/platekit/platekit-go/pkg/platekit/plate"
)

// Format names a plate geometry by its row and column counts.
type Format struct {
	// Name identifies the format, e.g. "96-well".
	Name string `yaml:"name"`
	// Rows is the number of rows.
	Rows int `yaml:"rows"`
	// Columns is the number of columns.
	Columns int `yaml:"columns"`
}

// Wells returns the total number of wells.
func (f Format) Wells() int { return f.Rows * f.Columns }

// Addressing builds the conversion context for this format with the given
// index base.
func (f Format) Addressing(base int) (plate.Addressing, error) {
	return plate.New(f.Rows, f.Columns, base)
}

// Builtin returns the standard plate formats, smallest first. 1536-well
// plates are absent: their 32 rows cannot carry single-letter row labels.
func Builtin() []Format {
	return []Format{
		{Name: "6-well", Rows: 2, Columns: 3},
		{Name: "12-well", Rows: 3, Columns: 4},
		{Name: "24-well", Rows: 4, Columns: 6},
		{Name: "48-well", Rows: 6, Columns: 8},
		{Name: "96-well", Rows: 8, Columns: 12},
		{Name: "384-well", Rows: 16, Columns: 24},
	}
}

// file is the YAML document shape for custom format files.
type file struct {
	Formats []Format `yaml:"formats"`
}

// Load reads plate formats from a YAML file of the form:
//
//	formats:
//	  - name: deep-24
//	    rows: 4
//	    columns: 6
//
// Each format is validated against the label limits before being returned.
func Load(path string) ([]Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading formats file: %w", err)
	}
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing formats file %s: %w", path, err)
	}
	for _, f := range doc.Formats {
		if f.Name == "" {
			return nil, fmt.Errorf("formats file %s: format with %d rows and %d columns has no name", path, f.Rows, f.Columns)
		}
		if _, err := f.Addressing(0); err != nil {
			return nil, fmt.Errorf("formats file %s: format %q: %w", path, f.Name, err)
		}
	}
	return doc.Formats, nil
}

// Find returns the format with the given name, case-insensitively. A bare
// well count such as "96" also matches the builtin of that size.
func Find(formats []Format, name string) (Format, bool) {
	for _, f := range formats {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	for _, f := range formats {
		if strings.EqualFold(f.Name, name+"-well") {
			return f, true
		}
	}
	return Format{}, false
}
