// Package frame provides column classification and numeric-matrix plumbing
// for gota DataFrames.
//
// The embedding pipeline only ever sees numeric data. This package is the
// boundary where a mixed-type table is partitioned into numeric and
// categorical columns, converted to a gonum matrix, normalized, and
// reassembled into a table.
package frame

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// Classify partitions the columns of df into numeric and categorical name
// lists. Every column appears in exactly one list. Int and Float columns are
// numeric; String and Bool columns are categorical.
func Classify(df dataframe.DataFrame) (numeric, categorical []string, err error) {
	if err := df.Error(); err != nil {
		return nil, nil, fmt.Errorf("invalid dataset: %w", err)
	}

	names := df.Names()
	types := df.Types()
	for i, name := range names {
		switch types[i] {
		case series.Int, series.Float:
			numeric = append(numeric, name)
		default:
			categorical = append(categorical, name)
		}
	}
	return numeric, categorical, nil
}

// Matrix extracts the named columns of df into a dense row-major matrix with
// one row per observation. Values that cannot be represented as float64
// become NaN.
func Matrix(df dataframe.DataFrame, cols []string) (*mat.Dense, error) {
	if err := df.Error(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns selected")
	}

	n := df.Nrow()
	x := mat.NewDense(n, len(cols), nil)
	names := toNameSet(df.Names())
	for j, name := range cols {
		if !names[name] {
			return nil, fmt.Errorf("column %q not found", name)
		}
		vals := df.Col(name).Float()
		for i, v := range vals {
			x.Set(i, j, v)
		}
	}
	return x, nil
}

// FromMatrix builds a DataFrame of Float columns from x, one named column
// per matrix column. len(names) must equal the column count of x.
func FromMatrix(x *mat.Dense, names []string) dataframe.DataFrame {
	n, p := x.Dims()
	ss := make([]series.Series, p)
	for j := 0; j < p; j++ {
		col := make([]float64, n)
		mat.Col(col, j, x)
		ss[j] = series.New(col, series.Float, names[j])
	}
	return dataframe.New(ss...)
}

func toNameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
