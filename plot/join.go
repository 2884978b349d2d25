package plot

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// Join left-joins meta onto emb by the key column. A nil meta returns emb
// unchanged. Duplicate key values in meta are rejected: a left join against
// a non-unique key would silently multiply embedding rows.
func Join(emb dataframe.DataFrame, meta *dataframe.DataFrame, key string) (dataframe.DataFrame, error) {
	var zero dataframe.DataFrame

	if err := emb.Error(); err != nil {
		return zero, fmt.Errorf("invalid embedding table: %w", err)
	}
	if !hasColumn(emb, key) {
		return zero, &ErrMissingColumn{Column: key, Table: "embedding"}
	}
	if meta == nil {
		return emb, nil
	}
	if err := meta.Error(); err != nil {
		return zero, fmt.Errorf("invalid metadata table: %w", err)
	}
	if !hasColumn(*meta, key) {
		return zero, &ErrMissingColumn{Column: key, Table: "metadata"}
	}

	seen := make(map[string]bool, meta.Nrow())
	for _, v := range meta.Col(key).Records() {
		if seen[v] {
			return zero, &ErrDuplicateKey{Key: key, Value: v}
		}
		seen[v] = true
	}

	joined := emb.LeftJoin(*meta, key)
	if err := joined.Error(); err != nil {
		return zero, fmt.Errorf("join failed: %w", err)
	}
	return joined, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
