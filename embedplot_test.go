package embedplot

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/embedplot/embedder"
)

// stubEmbedder returns the row index as both coordinates and records the
// params it was called with.
type stubEmbedder struct {
	dims       int
	lastParams embedder.Params
	lastCols   int
	err        error
}

func (s *stubEmbedder) Name() string { return "stub" }
func (s *stubEmbedder) Dims() int    { return s.dims }

func (s *stubEmbedder) Transform(_ context.Context, x mat.Matrix, p embedder.Params) (*mat.Dense, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastParams = p
	n, cols := x.Dims()
	s.lastCols = cols
	out := mat.NewDense(n, s.dims, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < s.dims; j++ {
			out.Set(i, j, float64(i))
		}
	}
	return out, nil
}

func testDF(rows int) dataframe.DataFrame {
	samples := make([]string, rows)
	a := make([]float64, rows)
	b := make([]float64, rows)
	group := make([]string, rows)
	for i := 0; i < rows; i++ {
		samples[i] = fmt.Sprintf("s%d", i)
		a[i] = float64(i)
		b[i] = float64(rows - i)
		if i%2 == 0 {
			group[i] = "ctrl"
		} else {
			group[i] = "case"
		}
	}
	return dataframe.New(
		series.New(samples, series.String, "sample"),
		series.New(a, series.Float, "a"),
		series.New(b, series.Float, "b"),
		series.New(group, series.String, "group"),
	)
}

func TestEmbed_PreservesRowCount(t *testing.T) {
	df := testDF(20)
	stub := &stubEmbedder{dims: 2}

	out, err := Embed(context.Background(), df, stub)
	require.NoError(t, err)
	assert.Equal(t, df.Nrow(), out.Nrow())
}

func TestEmbed_AnnotatePolicies(t *testing.T) {
	df := testDF(20) // 2 numeric, 2 categorical columns

	tests := []struct {
		name     string
		policy   Annotate
		wantCols int
	}{
		{"All", AnnotateAll, 2 + 4},
		{"Categorical", AnnotateCategorical, 2 + 2},
		{"Numeric", AnnotateNumeric, 2 + 2},
		{"None", AnnotateNone, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Embed(context.Background(), df, &stubEmbedder{dims: 2},
				WithAnnotate(tt.policy))
			require.NoError(t, err)
			assert.Len(t, out.Names(), tt.wantCols)
		})
	}
}

func TestEmbed_AnnotateColumnNames(t *testing.T) {
	df := testDF(20)

	out, err := Embed(context.Background(), df, &stubEmbedder{dims: 2},
		WithAnnotate(AnnotateCategorical))
	require.NoError(t, err)
	assert.Equal(t, []string{"EMB1", "EMB2", "sample", "group"}, out.Names())
}

func TestEmbed_TooFewRows(t *testing.T) {
	df := testDF(3)

	_, err := Embed(context.Background(), df, &stubEmbedder{dims: 2})
	assert.ErrorIs(t, err, ErrTooFewRows)
}

func TestEmbed_ShrinksNeighbors(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		requested int
		effective int
	}{
		{"LargeEnough", 100, 15, 15},
		{"Shrunk", 20, 15, 5},
		{"Floor", 8, 15, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubEmbedder{dims: 2}
			_, err := Embed(context.Background(), testDF(tt.rows), stub,
				WithNeighbors(tt.requested))
			require.NoError(t, err)
			assert.Equal(t, tt.effective, stub.lastParams.Neighbors)
		})
	}
}

func TestEmbed_InvalidNeighbors(t *testing.T) {
	_, err := Embed(context.Background(), testDF(10), &stubEmbedder{dims: 2},
		WithNeighbors(0))
	var invalid *ErrInvalidNeighbors
	assert.ErrorAs(t, err, &invalid)
}

func TestEmbed_DropsZeroVarianceColumn(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2, 3, 4, 5}, series.Float, "varies"),
		series.New([]float64{7, 7, 7, 7, 7}, series.Float, "constant"),
		series.New([]float64{5, 4, 3, 2, 1}, series.Float, "other"),
	)
	stub := &stubEmbedder{dims: 2}

	out, err := Embed(context.Background(), df, stub, WithAnnotate(AnnotateNone))
	require.NoError(t, err)
	assert.Equal(t, 5, out.Nrow())
	// The constant column must be dropped before the embedder sees the data.
	assert.Equal(t, 2, stub.lastCols)
}

func TestEmbed_NoNumericColumns(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"a", "b", "c", "d"}, series.String, "sample"),
	)

	_, err := Embed(context.Background(), df, &stubEmbedder{dims: 2})
	assert.ErrorIs(t, err, ErrNoNumericColumns)
}

func TestEmbed_MissingValues(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"s0", "s1", "s2", "s3", "s4", "s5"}, series.String, "sample"),
		series.New([]float64{1, 2, math.NaN(), 4, 5, 6}, series.Float, "a"),
		series.New([]float64{6, 5, 4, 3, 2, 1}, series.Float, "b"),
	)

	_, err := Embed(context.Background(), df, &stubEmbedder{dims: 2})
	assert.ErrorIs(t, err, ErrMissingValues)

	out, err := Embed(context.Background(), df, &stubEmbedder{dims: 2},
		WithDropIncomplete(true))
	require.NoError(t, err)
	assert.Equal(t, 5, out.Nrow())
	// Annotation columns follow the surviving rows.
	assert.NotContains(t, out.Col("sample").Records(), "s2")
}

func TestEmbed_ColumnPrefix(t *testing.T) {
	out, err := Embed(context.Background(), testDF(10), &stubEmbedder{dims: 3},
		WithColumnPrefix("UMAP"), WithAnnotate(AnnotateNone))
	require.NoError(t, err)
	assert.Equal(t, []string{"UMAP1", "UMAP2", "UMAP3"}, out.Names())
}

func TestEmbed_EmbedderError(t *testing.T) {
	stub := &stubEmbedder{dims: 2, err: fmt.Errorf("boom")}

	_, err := Embed(context.Background(), testDF(10), stub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestEmbed_RecordsMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	_, err := Embed(context.Background(), testDF(10), &stubEmbedder{dims: 2},
		WithMetrics(metrics))
	require.NoError(t, err)
	assert.Equal(t, int64(1), metrics.EmbedCount.Load())
	assert.Equal(t, int64(10), metrics.EmbedRows.Load())
}

func TestParseAnnotate(t *testing.T) {
	tests := []struct {
		in      string
		want    Annotate
		wantErr bool
	}{
		{"all", AnnotateAll, false},
		{"categorical", AnnotateCategorical, false},
		{"numeric", AnnotateNumeric, false},
		{"none", AnnotateNone, false},
		{"everything", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnnotate(tt.in)
			if tt.wantErr {
				var invalid *ErrInvalidAnnotate
				assert.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}
