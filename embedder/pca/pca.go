// Package pca provides a principal-component-analysis embedding backend.
//
// PCA is deterministic and cheap, which makes it the default choice for
// sanity-checking an embedding pipeline before switching to a neighborhood
// based reducer.
package pca

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/embedplot/embedder"
)

// PCA projects observations onto their top principal components.
type PCA struct {
	dims int
}

// New creates a PCA backend producing dims coordinate columns.
func New(dims int) *PCA {
	if dims <= 0 {
		dims = 2
	}
	return &PCA{dims: dims}
}

// Name returns "pca".
func (p *PCA) Name() string { return "pca" }

// Dims returns the output dimensionality.
func (p *PCA) Dims() int { return p.dims }

// Transform projects x onto its top principal components.
// Params are ignored; PCA has no neighborhood notion.
func (p *PCA) Transform(ctx context.Context, x mat.Matrix, _ embedder.Params) (*mat.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n, cols := x.Dims()
	if p.dims > cols {
		return nil, fmt.Errorf("pca: %d components requested but matrix has %d columns", p.dims, cols)
	}
	if p.dims > n {
		return nil, fmt.Errorf("pca: %d components requested but matrix has %d rows", p.dims, n)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return nil, fmt.Errorf("pca: factorization failed")
	}

	var vec mat.Dense
	pc.VectorsTo(&vec)

	// Projection requires the centered data.
	centered := center(x)

	var proj mat.Dense
	proj.Mul(centered, vec.Slice(0, cols, 0, p.dims))
	return &proj, nil
}

func center(x mat.Matrix) *mat.Dense {
	n, p := x.Dims()
	out := mat.NewDense(n, p, nil)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, x)
		mean := stat.Mean(col, nil)
		for i := 0; i < n; i++ {
			out.Set(i, j, col[i]-mean)
		}
	}
	return out
}
