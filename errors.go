package embedplot

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewRows is returned when the dataset has fewer than 4 rows.
	ErrTooFewRows = errors.New("dataset must have more than 3 rows")

	// ErrNoNumericColumns is returned when the dataset has no numeric columns
	// left to embed.
	ErrNoNumericColumns = errors.New("dataset has no numeric columns")

	// ErrMissingValues is returned when a retained numeric column contains
	// undefined values and WithDropIncomplete is not set.
	ErrMissingValues = errors.New("dataset contains missing numeric values")
)

// ErrInvalidAnnotate indicates an unrecognized annotation policy.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidAnnotate struct {
	Value string
	cause error
}

func (e *ErrInvalidAnnotate) Error() string {
	return fmt.Sprintf("invalid annotate policy: %q", e.Value)
}

func (e *ErrInvalidAnnotate) Unwrap() error { return e.cause }

// ErrInvalidNeighbors indicates a non-positive neighborhood size.
type ErrInvalidNeighbors struct {
	Neighbors int
}

func (e *ErrInvalidNeighbors) Error() string {
	return fmt.Sprintf("invalid neighborhood size: %d", e.Neighbors)
}

// ErrDimensionMismatch indicates the embedder returned a coordinate matrix
// whose row count does not match the input.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d rows, got %d", e.Expected, e.Actual)
}
