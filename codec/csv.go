package codec

import (
	"io"

	"github.com/go-gota/gota/dataframe"
)

// CSV encodes tables as comma-separated values with a header row.
type CSV struct{}

// Encode writes the table as CSV.
func (CSV) Encode(w io.Writer, df dataframe.DataFrame) error {
	return df.WriteCSV(w)
}

// Decode reads a CSV table, inferring column types from the data.
func (CSV) Decode(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r)
	return df, df.Error()
}

// Name returns the unique name of the codec ("csv").
func (CSV) Name() string { return "csv" }
