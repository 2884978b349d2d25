// Package embedder defines the pluggable dimensionality-reduction backend
// used by embedplot.
//
// The embedding math is deliberately treated as a black box: any reducer
// that maps an n-by-p matrix to an n-by-d coordinate matrix can be plugged
// in. PCA and t-SNE adapters live in the pca and tsne sub-packages; a UMAP
// implementation can be supplied by the caller.
package embedder

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// Params carries the neighborhood parameters resolved by the caller.
type Params struct {
	// Neighbors is the effective neighborhood size, already shrunk for
	// small datasets. Backends without a neighborhood notion ignore it.
	Neighbors int
}

// Embedder reduces a numeric matrix to a low-dimensional coordinate matrix.
// Implementations must return one output row per input row.
type Embedder interface {
	// Name returns the stable name of the backend (e.g. "pca", "tsne").
	Name() string

	// Dims returns the output dimensionality.
	Dims() int

	// Transform reduces x (n-by-p) to an n-by-Dims coordinate matrix.
	// Implementations should honor ctx cancellation where the reduction
	// is iterative.
	Transform(ctx context.Context, x mat.Matrix, p Params) (*mat.Dense, error)
}
