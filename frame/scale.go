package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ScaleMode selects the per-column normalization applied before embedding.
type ScaleMode int

const (
	// ScaleStandard centers each column to zero mean and unit variance.
	ScaleStandard ScaleMode = iota
	// ScaleMinMax rescales each column to the [0, 1] interval.
	ScaleMinMax
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleStandard:
		return "standard"
	case ScaleMinMax:
		return "minmax"
	default:
		return "unknown"
	}
}

// Scale normalizes each column of x according to mode. Columns whose scaled
// values would be undefined (zero variance, or zero range for ScaleMinMax)
// are dropped from the result instead of failing. names must align with the
// columns of x; the returned slices report which columns survived and which
// were dropped.
func Scale(x *mat.Dense, names []string, mode ScaleMode) (scaled *mat.Dense, kept, dropped []string) {
	n, p := x.Dims()

	cols := make([][]float64, 0, p)
	for j := 0; j < p; j++ {
		col := make([]float64, n)
		mat.Col(col, j, x)

		var ok bool
		switch mode {
		case ScaleMinMax:
			ok = minMaxInPlace(col)
		default:
			ok = standardizeInPlace(col)
		}
		if !ok {
			dropped = append(dropped, names[j])
			continue
		}
		cols = append(cols, col)
		kept = append(kept, names[j])
	}

	// Scaled is nil when every column was dropped; callers must check kept.
	if len(cols) == 0 {
		return nil, nil, dropped
	}

	scaled = mat.NewDense(n, len(cols), nil)
	for j, col := range cols {
		scaled.SetCol(j, col)
	}
	return scaled, kept, dropped
}

// standardizeInPlace centers col to zero mean and unit variance.
// Returns false if the column has zero variance.
func standardizeInPlace(col []float64) bool {
	mean, std := stat.MeanStdDev(col, nil)
	if std == 0 || math.IsNaN(std) {
		return false
	}
	for i, v := range col {
		col[i] = (v - mean) / std
	}
	return true
}

// minMaxInPlace rescales col to [0, 1].
// Returns false if the column has zero range.
func minMaxInPlace(col []float64) bool {
	lo, hi := col[0], col[0]
	for _, v := range col[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return false
	}
	span := hi - lo
	for i, v := range col {
		col[i] = (v - lo) / span
	}
	return true
}
