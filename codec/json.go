package codec

import (
	"io"

	"github.com/go-gota/gota/dataframe"
)

// JSON encodes tables as an array of row objects using encoding/json.
type JSON struct{}

// Encode writes the table as JSON.
func (JSON) Encode(w io.Writer, df dataframe.DataFrame) error {
	return df.WriteJSON(w)
}

// Decode reads a JSON row-object array.
func (JSON) Decode(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadJSON(r)
	return df, df.Error()
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
