// Package codec centralizes embedding-table encoding.
//
// Artifact names embed the codec name (e.g. "embedding.csv"), so persisted
// tables are self-describing: stores can select the decoder from the name
// alone. Changing codecs is a breaking-change boundary for persisted bytes.
package codec

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
)

// Codec encodes/decodes DataFrames.
// Implementations must be safe for concurrent use.
type Codec interface {
	Encode(w io.Writer, df dataframe.DataFrame) error
	Decode(r io.Reader) (dataframe.DataFrame, error)
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = CSV{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "csv":
		return CSV{}, true
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustEncode is a helper for internal tests.
func MustEncode(c Codec, w io.Writer, df dataframe.DataFrame) {
	if c == nil {
		c = Default
	}
	if err := c.Encode(w, df); err != nil {
		panic(fmt.Errorf("codec %s encode failed: %w", c.Name(), err))
	}
}
