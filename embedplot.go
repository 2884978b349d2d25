package embedplot

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/hupe1980/embedplot/embedder"
	"github.com/hupe1980/embedplot/frame"
)

// minNeighbors is the floor for the effective neighborhood size after
// shrinking for small datasets.
const minNeighbors = 3

// Embed reduces the numeric columns of df to a low-dimensional coordinate
// table using the given embedding backend.
//
// Non-numeric columns are dropped before embedding. With normalization
// enabled (the default), every numeric column is centered and scaled, and
// zero-variance columns are removed rather than producing undefined values.
// The output has one row per input observation and d coordinate columns
// named sequentially (EMB1..EMBd by default), concatenated with the original
// columns selected by the annotation policy.
func Embed(ctx context.Context, df dataframe.DataFrame, emb embedder.Embedder, opts ...Option) (dataframe.DataFrame, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	start := time.Now()
	out, dims, err := embed(ctx, df, emb, o)
	o.metrics.RecordEmbed(df.Nrow(), dims, time.Since(start), err)

	return out, err
}

func embed(ctx context.Context, df dataframe.DataFrame, emb embedder.Embedder, o *options) (dataframe.DataFrame, int, error) {
	var zero dataframe.DataFrame

	if err := df.Error(); err != nil {
		return zero, 0, fmt.Errorf("invalid dataset: %w", err)
	}
	if emb == nil {
		return zero, 0, fmt.Errorf("nil embedder")
	}
	if !o.annotate.valid() {
		return zero, 0, &ErrInvalidAnnotate{Value: fmt.Sprintf("%d", int(o.annotate))}
	}
	if o.neighbors <= 0 {
		return zero, 0, &ErrInvalidNeighbors{Neighbors: o.neighbors}
	}
	if df.Nrow() < 4 {
		return zero, 0, ErrTooFewRows
	}

	numeric, categorical, err := frame.Classify(df)
	if err != nil {
		return zero, 0, err
	}
	if len(numeric) == 0 {
		return zero, 0, ErrNoNumericColumns
	}

	logger := o.logger.WithRows(df.Nrow()).WithEmbedder(emb.Name())

	x, err := frame.Matrix(df, numeric)
	if err != nil {
		return zero, 0, err
	}

	// Rows with undefined numeric values cannot be embedded.
	rows := frame.CompleteRows(x)
	keepRows := []int(nil) // nil means all rows survive
	if !rows.Full() {
		if !o.dropIncomplete {
			return zero, 0, ErrMissingValues
		}
		keepRows = rows.Indices()
		x = frame.SelectRows(x, rows)
		logger.Warn("dropped incomplete rows", "dropped", df.Nrow()-rows.Len())
	}

	n, _ := x.Dims()
	if n < 4 {
		return zero, 0, ErrTooFewRows
	}

	neighbors := o.neighbors
	if n < 4*neighbors {
		neighbors = n / 4
		if neighbors < minNeighbors {
			neighbors = minNeighbors
		}
		logger.Debug("shrunk neighborhood size", "requested", o.neighbors, "effective", neighbors)
	}

	if o.normalize {
		scaleStart := time.Now()
		scaled, kept, dropped := frame.Scale(x, numeric, o.scaleMode)
		o.metrics.RecordScale(len(numeric), len(dropped), time.Since(scaleStart))
		if len(dropped) > 0 {
			logger.Debug("dropped zero-variance columns", "columns", dropped)
		}
		if len(kept) == 0 {
			return zero, 0, ErrNoNumericColumns
		}
		x = scaled
	}

	y, err := emb.Transform(ctx, x, embedder.Params{Neighbors: neighbors})
	if err != nil {
		return zero, 0, fmt.Errorf("embedding failed: %w", err)
	}

	yr, dims := y.Dims()
	if yr != n {
		return zero, dims, &ErrDimensionMismatch{Expected: n, Actual: yr}
	}

	names := make([]string, dims)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", o.prefix, i+1)
	}
	out := frame.FromMatrix(y, names)
	if err := out.Error(); err != nil {
		return zero, dims, err
	}

	annot := annotationColumns(df.Names(), numeric, categorical, o.annotate)
	if len(annot) > 0 {
		cols := df.Select(annot)
		if keepRows != nil {
			cols = cols.Subset(keepRows)
		}
		out = out.CBind(cols)
		if err := out.Error(); err != nil {
			return zero, dims, err
		}
	}

	return out, dims, nil
}

// annotationColumns selects the original columns to reattach, preserving
// the dataset's column order.
func annotationColumns(all, numeric, categorical []string, policy Annotate) []string {
	var want map[string]bool
	switch policy {
	case AnnotateAll:
		return all
	case AnnotateCategorical:
		want = toSet(categorical)
	case AnnotateNumeric:
		want = toSet(numeric)
	case AnnotateNone:
		return nil
	}

	cols := make([]string, 0, len(want))
	for _, name := range all {
		if want[name] {
			cols = append(cols, name)
		}
	}
	return cols
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
