// Package main provides the CLI entry point for platekit-go.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platekit/platekit-go/pkg/platekit"
	"github.com/platekit/platekit-go/pkg/platekit/formats"
	"github.com/platekit/platekit-go/pkg/platekit/geometry"
	"github.com/platekit/platekit-go/pkg/platekit/plate"
	"github.com/platekit/platekit-go/pkg/platekit/platemap"
)

var (
	rows        int
	columns     int
	base        int
	formatName  string
	formatsFile string
	asJSON      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "platekit",
		Short: "Convert well addresses, expand well ranges, and compute well ROIs",
		Long: `platekit works with multiwell-plate coordinates: well labels such as
"A01", linear indices, (row, column) pairs, range expressions such as
"A01-A10", and pixel rectangles for each well of a plate image.`,
	}

	rootCmd.PersistentFlags().IntVar(&rows, "rows", 8, "Number of plate rows")
	rootCmd.PersistentFlags().IntVar(&columns, "columns", 12, "Number of plate columns")
	rootCmd.PersistentFlags().IntVar(&base, "base", 1, "Index base: 0 or 1")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "", `Plate format name, e.g. "96-well" (overrides --rows/--columns)`)
	rootCmd.PersistentFlags().StringVar(&formatsFile, "formats-file", "", "YAML file with additional plate formats")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Emit JSON instead of plain text")

	rootCmd.AddCommand(newConvertCmd(), newExpandCmd(), newLayoutCmd(), newPlatemapCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options resolves the plate convention from the persistent flags.
func options() (platekit.Options, error) {
	opts := platekit.Options{Rows: rows, Columns: columns, Base: base}
	if formatName == "" {
		return opts, nil
	}
	available := formats.Builtin()
	if formatsFile != "" {
		extra, err := formats.Load(formatsFile)
		if err != nil {
			return platekit.Options{}, err
		}
		available = append(available, extra...)
	}
	f, ok := formats.Find(available, formatName)
	if !ok {
		return platekit.Options{}, fmt.Errorf("unknown plate format %q", formatName)
	}
	opts.Rows = f.Rows
	opts.Columns = f.Columns
	return opts, nil
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [well]",
		Short: "Show a well's label, linear index, and (row, column)",
		Long:  `convert accepts a well label ("A05") or a linear index ("5") and prints all three representations.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			var well platekit.Well
			if index, convErr := strconv.Atoi(args[0]); convErr == nil {
				well, err = platekit.DescribeIndex(index, opts)
			} else {
				well, err = platekit.Describe(args[0], opts)
			}
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, well)
			}
			cmd.Printf("label=%s index=%d row=%d column=%d\n", well.Label, well.Index, well.Row, well.Column)
			return nil
		},
	}
}

func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [expression]",
		Short: "Expand a well-range expression into well labels",
		Long: `expand evaluates a comma-separated well-range expression and prints the
labels it covers. Supported terms: "A01", "A01-A10" (row or column run),
"A01*C03" (rectangular block), "A01...C03" (index-order traversal).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			labels, err := platekit.Expand(args[0], opts)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, labels)
			}
			for _, label := range labels {
				cmd.Println(label)
			}
			return nil
		},
	}
}

// wellView is the JSON shape of one well ROI emitted by the layout command.
type wellView struct {
	Label  string  `json:"label"`
	Row    int     `json:"row"`
	Column int     `json:"column"`
	X0     float64 `json:"x0"`
	Y0     float64 `json:"y0"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
}

func newLayoutCmd() *cobra.Command {
	var (
		imageSpec  string
		anchorSpec string
		padX       float64
		padY       float64
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute the pixel rectangle of every well in a plate image",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			image, err := parseRect(imageSpec)
			if err != nil {
				return fmt.Errorf("bad --image: %w", err)
			}
			anchor, err := parseRect(anchorSpec)
			if err != nil {
				return fmt.Errorf("bad --anchor: %w", err)
			}
			layout, err := geometry.BuildLayout(opts.Rows, opts.Columns, image, anchor, padX, padY)
			if err != nil {
				return err
			}
			// Labels use 0-based rc regardless of --base: layout keys count from 0.
			a, err := plate.NewBase0(opts.Rows, opts.Columns)
			if err != nil {
				return err
			}
			views := make([]wellView, 0, layout.Len())
			for _, roi := range layout.Wells() {
				label, err := a.RCToLabel(roi.Row, roi.Column)
				if err != nil {
					return err
				}
				views = append(views, wellView{
					Label:  label,
					Row:    roi.Row,
					Column: roi.Column,
					X0:     roi.Rect.X0,
					Y0:     roi.Rect.Y0,
					X1:     roi.Rect.X1,
					Y1:     roi.Rect.Y1,
				})
			}
			if asJSON {
				return printJSON(cmd, views)
			}
			for _, v := range views {
				cmd.Printf("%s (%d,%d) %g,%g,%g,%g\n", v.Label, v.Row, v.Column, v.X0, v.Y0, v.X1, v.Y1)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&imageSpec, "image", "", `Plate image rectangle as "x0,y0,x1,y1"`)
	cmd.Flags().StringVar(&anchorSpec, "anchor", "", `Top-left well rectangle as "x0,y0,x1,y1"`)
	cmd.Flags().Float64Var(&padX, "pad-x", 0, "Horizontal gap between adjacent wells")
	cmd.Flags().Float64Var(&padY, "pad-y", 0, "Vertical gap between adjacent wells")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("anchor")
	return cmd
}

func newPlatemapCmd() *cobra.Command {
	var (
		selectExpr string
		value      string
	)
	cmd := &cobra.Command{
		Use:   "platemap [output.xlsx]",
		Short: "Write an Excel plate map marking the selected wells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			a, err := opts.Addressing()
			if err != nil {
				return err
			}
			labels, err := plate.Parse(a, selectExpr)
			if err != nil {
				return err
			}
			values := make(map[string]string, len(labels))
			for _, label := range labels {
				values[label] = value
			}
			return platemap.Write(args[0], a, values)
		},
	}
	cmd.Flags().StringVar(&selectExpr, "select", "", `Well-range expression for the wells to mark, e.g. "A01-A06,B01*C03"`)
	cmd.Flags().StringVar(&value, "value", "X", "Cell contents for the selected wells")
	_ = cmd.MarkFlagRequired("select")
	return cmd
}

// parseRect parses a "x0,y0,x1,y1" rectangle spec.
func parseRect(spec string) (geometry.Rect, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return geometry.Rect{}, fmt.Errorf("expected 4 comma-separated numbers, got %q", spec)
	}
	coords := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Rect{}, fmt.Errorf("bad coordinate %q", part)
		}
		coords[i] = v
	}
	return geometry.NewRect(coords[0], coords[1], coords[2], coords[3])
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
