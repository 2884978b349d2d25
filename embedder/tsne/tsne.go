// Package tsne adapts github.com/danaugrs/go-tsne as an embedding backend.
package tsne

import (
	"context"
	"fmt"

	gotsne "github.com/danaugrs/go-tsne/tsne"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/embedplot/embedder"
)

const (
	// DefaultLearningRate matches the go-tsne examples.
	DefaultLearningRate = 300

	// DefaultMaxIter bounds the gradient-descent iterations.
	DefaultMaxIter = 300
)

// TSNE reduces observations with t-distributed stochastic neighbor
// embedding. The neighborhood size supplied by the caller is used as the
// perplexity.
type TSNE struct {
	dims         int
	learningRate float64
	maxIter      int
}

// Option configures the TSNE backend.
type Option func(*TSNE)

// WithLearningRate overrides the gradient-descent learning rate.
func WithLearningRate(lr float64) Option {
	return func(t *TSNE) {
		if lr > 0 {
			t.learningRate = lr
		}
	}
}

// WithMaxIter overrides the iteration budget.
func WithMaxIter(n int) Option {
	return func(t *TSNE) {
		if n > 0 {
			t.maxIter = n
		}
	}
}

// New creates a t-SNE backend producing dims coordinate columns.
func New(dims int, opts ...Option) *TSNE {
	if dims <= 0 {
		dims = 2
	}
	t := &TSNE{
		dims:         dims,
		learningRate: DefaultLearningRate,
		maxIter:      DefaultMaxIter,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns "tsne".
func (t *TSNE) Name() string { return "tsne" }

// Dims returns the output dimensionality.
func (t *TSNE) Dims() int { return t.dims }

// Transform reduces x with t-SNE. The iteration loop checks ctx between
// steps and aborts on cancellation.
func (t *TSNE) Transform(ctx context.Context, x mat.Matrix, p embedder.Params) (*mat.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	perplexity := float64(p.Neighbors)
	if perplexity <= 0 {
		return nil, fmt.Errorf("tsne: non-positive perplexity %v", perplexity)
	}

	reducer := gotsne.NewTSNE(t.dims, perplexity, t.learningRate, t.maxIter, false)

	canceled := false
	y := reducer.EmbedData(x, func(iter int, divergence float64, embedding mat.Matrix) bool {
		if ctx.Err() != nil {
			canceled = true
			return true // stop early
		}
		return false
	})
	if canceled {
		return nil, ctx.Err()
	}

	return mat.DenseCopyOf(y), nil
}
