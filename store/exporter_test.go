package store

import (
	"context"
	"io"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/embedplot/codec"
)

func exportTable() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"s1", "s2", "s3"}, series.String, "sample"),
		series.New([]float64{0.5, 1.5, 2.5}, series.Float, "EMB1"),
		series.New([]float64{-1, 0, 1}, series.Float, "EMB2"),
	)
}

func TestExporter_SaveLoadTable(t *testing.T) {
	tests := []struct {
		name        string
		compression Compression
		wantName    string
	}{
		{"Plain", CompressionNone, "embedding.csv"},
		{"Zstd", CompressionZstd, "embedding.csv.zst"},
		{"LZ4", CompressionLZ4, "embedding.csv.lz4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			exp := NewExporter(NewMemoryStore(), WithCompression(tt.compression))

			df := exportTable()
			name, err := exp.SaveTable(ctx, "embedding", df)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)

			back, err := exp.LoadTable(ctx, name)
			require.NoError(t, err)
			assert.Equal(t, df.Nrow(), back.Nrow())
			assert.Equal(t, df.Col("EMB1").Float(), back.Col("EMB1").Float())
		})
	}
}

func TestExporter_GoJSONCodec(t *testing.T) {
	ctx := context.Background()
	exp := NewExporter(NewMemoryStore(), WithCodec(codec.GoJSON{}))

	name, err := exp.SaveTable(ctx, "embedding", exportTable())
	require.NoError(t, err)
	assert.Equal(t, "embedding.go-json", name)

	back, err := exp.LoadTable(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Nrow())
}

func TestExporter_LoadTable_UnknownCodec(t *testing.T) {
	exp := NewExporter(NewMemoryStore())

	_, err := exp.LoadTable(context.Background(), "embedding.parquet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no codec")
}

func TestExporter_SaveChart(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	exp := NewExporter(mem)

	name, err := exp.SaveChart(ctx, "embedding", func(w io.Writer) error {
		_, err := w.Write([]byte("<html><body>chart</body></html>"))
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "embedding.html", name)

	data, err := ReadAll(ctx, mem, name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "chart")
}

func TestExporter_SaveTables(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	exp := NewExporter(mem, WithThrottle(NewThrottle(2, 0)))

	tables := map[string]dataframe.DataFrame{
		"train": exportTable(),
		"test":  exportTable(),
		"full":  exportTable(),
	}
	require.NoError(t, exp.SaveTables(ctx, tables))

	names, err := mem.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"full.csv", "test.csv", "train.csv"}, names)
}

func TestCompression_RoundTrip(t *testing.T) {
	data := []byte("sample,EMB1\ns1,0.5\ns2,1.5\n")

	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			packed, err := compress(data, c)
			require.NoError(t, err)

			unpacked, err := decompress(packed, c)
			require.NoError(t, err)
			assert.Equal(t, data, unpacked)
		})
	}
}

func TestCompressionFromName(t *testing.T) {
	name, c := compressionFromName("embedding.csv.zst")
	assert.Equal(t, "embedding.csv", name)
	assert.Equal(t, CompressionZstd, c)

	name, c = compressionFromName("embedding.json.lz4")
	assert.Equal(t, "embedding.json", name)
	assert.Equal(t, CompressionLZ4, c)

	name, c = compressionFromName("embedding.csv")
	assert.Equal(t, "embedding.csv", name)
	assert.Equal(t, CompressionNone, c)
}
