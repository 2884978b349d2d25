// Package plot renders embedding tables as 2-D scatter plots.
//
// The interactive renderer produces a standalone HTML document (go-echarts)
// with per-point tooltips; the static renderer writes PNG/SVG/PDF files
// (gonum/plot). Both join optional sample metadata onto the embedding table
// before rendering.
package plot

import (
	"fmt"
)

// Mapping names the columns used for rendering. SampleID, X and Y are
// required and must exist in the embedding table. The aesthetic columns are
// optional and may come from the embedding table or the joined metadata.
type Mapping struct {
	// SampleID is the column holding the per-observation identifier shown
	// in tooltips and used as the metadata join key.
	SampleID string

	// X and Y are the coordinate columns.
	X, Y string

	// Color groups points into series, one color per distinct value.
	Color string

	// Fill is an alternative grouping column; it is used when Color is
	// empty. Kept separate so callers can mirror both aesthetics.
	Fill string

	// Shape assigns point symbols by distinct value.
	Shape string

	// Tooltip lists extra columns appended to the hover text.
	Tooltip []string
}

// group returns the effective grouping column, preferring Color over Fill.
func (m Mapping) group() string {
	if m.Color != "" {
		return m.Color
	}
	return m.Fill
}

// ErrMissingColumn indicates a mapped column that does not exist in its
// source table.
type ErrMissingColumn struct {
	Column string
	Table  string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("column %q not found in %s table", e.Column, e.Table)
}

// ErrDuplicateKey indicates a sample id that occurs more than once in the
// metadata table.
type ErrDuplicateKey struct {
	Key   string
	Value string
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("duplicate value %q in metadata key column %q", e.Value, e.Key)
}

type options struct {
	title      string
	subtitle   string
	symbolSize int
	width      string
	height     string
}

func defaultOptions() *options {
	return &options{
		symbolSize: 10,
		width:      "900px",
		height:     "600px",
	}
}

// Option configures chart rendering.
type Option func(*options)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithSubtitle sets the chart subtitle (interactive renderer only).
func WithSubtitle(subtitle string) Option {
	return func(o *options) {
		o.subtitle = subtitle
	}
}

// WithSymbolSize sets the point size in pixels (interactive renderer only).
func WithSymbolSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.symbolSize = size
		}
	}
}

// WithSize sets the canvas dimensions of the interactive chart,
// e.g. WithSize("1200px", "800px").
func WithSize(width, height string) Option {
	return func(o *options) {
		if width != "" {
			o.width = width
		}
		if height != "" {
			o.height = height
		}
	}
}
