package frame

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/mat"
)

// RowSet is a selection of row indices over a fixed-size universe, backed by
// a compressed bitmap.
type RowSet struct {
	bm       *roaring.Bitmap
	universe int
}

// NewRowSet creates an empty RowSet over n rows.
func NewRowSet(n int) *RowSet {
	return &RowSet{bm: roaring.New(), universe: n}
}

// Add marks row i as selected.
func (s *RowSet) Add(i int) {
	s.bm.Add(uint32(i))
}

// Contains reports whether row i is selected.
func (s *RowSet) Contains(i int) bool {
	return s.bm.Contains(uint32(i))
}

// Len returns the number of selected rows.
func (s *RowSet) Len() int {
	return int(s.bm.GetCardinality())
}

// Full reports whether every row in the universe is selected.
func (s *RowSet) Full() bool {
	return s.Len() == s.universe
}

// Indices returns the selected row indices in ascending order.
func (s *RowSet) Indices() []int {
	arr := s.bm.ToArray()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

// CompleteRows returns the set of rows of x that contain no NaN values.
func CompleteRows(x *mat.Dense) *RowSet {
	n, p := x.Dims()
	s := NewRowSet(n)
	for i := 0; i < n; i++ {
		complete := true
		for j := 0; j < p; j++ {
			if math.IsNaN(x.At(i, j)) {
				complete = false
				break
			}
		}
		if complete {
			s.Add(i)
		}
	}
	return s
}

// SelectRows returns a copy of x restricted to the rows in s, preserving
// row order.
func SelectRows(x *mat.Dense, s *RowSet) *mat.Dense {
	_, p := x.Dims()
	idx := s.Indices()
	out := mat.NewDense(len(idx), p, nil)
	for i, row := range idx {
		for j := 0; j < p; j++ {
			out.Set(i, j, x.At(row, j))
		}
	}
	return out
}
