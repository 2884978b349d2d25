package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/embedplot/codec"
)

// Exporter persists embedding tables and rendered charts to a BlobStore.
//
// Artifact names are self-describing: the codec name becomes the extension
// and the compression appends its own suffix, e.g. "embedding.csv.zst".
// LoadTable selects the decoder from the name alone.
type Exporter struct {
	store       BlobStore
	codec       codec.Codec
	compression Compression
	throttle    *Throttle
	logger      *slog.Logger
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithCodec sets the table codec. Defaults to codec.Default (CSV).
func WithCodec(c codec.Codec) ExporterOption {
	return func(e *Exporter) {
		if c != nil {
			e.codec = c
		}
	}
}

// WithCompression sets the artifact compression. Defaults to none.
func WithCompression(c Compression) ExporterOption {
	return func(e *Exporter) {
		e.compression = c
	}
}

// WithThrottle bounds concurrency and IO throughput of store operations.
func WithThrottle(t *Throttle) ExporterOption {
	return func(e *Exporter) {
		e.throttle = t
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) ExporterOption {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewExporter creates an Exporter on top of the given store.
func NewExporter(store BlobStore, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		store:       store,
		codec:       codec.Default,
		compression: CompressionNone,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SaveTable encodes, compresses and stores the table under the given base
// name. It returns the full artifact name.
func (e *Exporter) SaveTable(ctx context.Context, base string, df dataframe.DataFrame) (string, error) {
	if err := df.Error(); err != nil {
		return "", fmt.Errorf("invalid table: %w", err)
	}

	var buf bytes.Buffer
	if err := e.codec.Encode(&buf, df); err != nil {
		return "", fmt.Errorf("encode %s: %w", base, err)
	}

	data, err := compress(buf.Bytes(), e.compression)
	if err != nil {
		return "", fmt.Errorf("compress %s: %w", base, err)
	}

	name := base + "." + e.codec.Name() + e.compression.Ext()
	if err := e.put(ctx, name, data); err != nil {
		return "", err
	}

	e.logger.Debug("saved table", "name", name, "rows", df.Nrow(), "bytes", len(data))
	return name, nil
}

// LoadTable reads, decompresses and decodes the named artifact. The codec
// and compression are inferred from the name.
func (e *Exporter) LoadTable(ctx context.Context, name string) (dataframe.DataFrame, error) {
	var zero dataframe.DataFrame

	stripped, compression := compressionFromName(name)
	ext := stripped[strings.LastIndex(stripped, ".")+1:]
	c, ok := codec.ByName(ext)
	if !ok {
		return zero, fmt.Errorf("no codec for artifact %q", name)
	}

	data, err := ReadAll(ctx, e.store, name)
	if err != nil {
		return zero, err
	}
	data, err = decompress(data, compression)
	if err != nil {
		return zero, fmt.Errorf("decompress %s: %w", name, err)
	}

	return c.Decode(bytes.NewReader(data))
}

// SaveChart renders a chart into the store under base + ".html".
// Charts are stored uncompressed so they stay directly servable.
func (e *Exporter) SaveChart(ctx context.Context, base string, render func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return "", fmt.Errorf("render %s: %w", base, err)
	}

	name := base + ".html"
	if err := e.put(ctx, name, buf.Bytes()); err != nil {
		return "", err
	}

	e.logger.Debug("saved chart", "name", name, "bytes", buf.Len())
	return name, nil
}

// SaveTables stores several tables concurrently. It fails fast on the first
// error; partially written artifacts are left in the store.
func (e *Exporter) SaveTables(ctx context.Context, tables map[string]dataframe.DataFrame) error {
	g, ctx := errgroup.WithContext(ctx)
	for base, df := range tables {
		g.Go(func() error {
			_, err := e.SaveTable(ctx, base, df)
			return err
		})
	}
	return g.Wait()
}

func (e *Exporter) put(ctx context.Context, name string, data []byte) error {
	if err := e.throttle.Acquire(ctx); err != nil {
		return err
	}
	defer e.throttle.Release()

	if err := e.throttle.WaitIO(ctx, len(data)); err != nil {
		return err
	}
	if err := e.store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("put %s: %w", name, err)
	}
	return nil
}
