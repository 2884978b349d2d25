package codec

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	gojson "github.com/goccy/go-json"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// Byte-compatible with the JSON codec but noticeably faster on wide tables;
// the distinct name exists so artifact names stay truthful about the encoder
// used.
type GoJSON struct{}

// Encode writes the table as JSON.
func (GoJSON) Encode(w io.Writer, df dataframe.DataFrame) error {
	return gojson.NewEncoder(w).Encode(df.Maps())
}

// Decode reads a JSON row-object array.
func (GoJSON) Decode(r io.Reader) (dataframe.DataFrame, error) {
	var maps []map[string]interface{}
	if err := gojson.NewDecoder(r).Decode(&maps); err != nil {
		return dataframe.DataFrame{}, err
	}
	df := dataframe.LoadMaps(maps)
	return df, df.Error()
}

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }
