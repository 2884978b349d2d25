package frame

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func sampleDF() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"s1", "s2", "s3", "s4"}, series.String, "sample"),
		series.New([]float64{1.5, 2.5, 3.5, 4.5}, series.Float, "height"),
		series.New([]int{10, 20, 30, 40}, series.Int, "count"),
		series.New([]bool{true, false, true, false}, series.Bool, "treated"),
	)
}

func TestClassify(t *testing.T) {
	df := sampleDF()

	numeric, categorical, err := Classify(df)
	require.NoError(t, err)

	assert.Equal(t, []string{"height", "count"}, numeric)
	assert.Equal(t, []string{"sample", "treated"}, categorical)

	// Exhaustive and disjoint partition of all columns.
	assert.Len(t, append(numeric, categorical...), len(df.Names()))
	for _, n := range numeric {
		assert.NotContains(t, categorical, n)
	}
}

func TestClassify_AllNumeric(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2}, series.Float, "a"),
		series.New([]int{3, 4}, series.Int, "b"),
	)

	numeric, categorical, err := Classify(df)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, numeric)
	assert.Empty(t, categorical)
}

func TestMatrix(t *testing.T) {
	df := sampleDF()

	x, err := Matrix(df, []string{"height", "count"})
	require.NoError(t, err)

	n, p := x.Dims()
	assert.Equal(t, 4, n)
	assert.Equal(t, 2, p)
	assert.InDelta(t, 2.5, x.At(1, 0), 1e-12)
	assert.InDelta(t, 30.0, x.At(2, 1), 1e-12)
}

func TestMatrix_MissingColumn(t *testing.T) {
	df := sampleDF()

	_, err := Matrix(df, []string{"height", "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestFromMatrix_RoundTrip(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		1, 4,
		2, 5,
		3, 6,
	})

	df := FromMatrix(x, []string{"EMB1", "EMB2"})
	require.NoError(t, df.Error())
	assert.Equal(t, []string{"EMB1", "EMB2"}, df.Names())
	assert.Equal(t, 3, df.Nrow())

	back, err := Matrix(df, []string{"EMB1", "EMB2"})
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(x, back, 1e-12))
}
