package store

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the artifact compression applied by the Exporter.
type Compression int

const (
	// CompressionNone stores artifacts as-is.
	CompressionNone Compression = iota
	// CompressionZstd compresses artifacts with zstandard.
	CompressionZstd
	// CompressionLZ4 compresses artifacts with the lz4 frame format.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Ext returns the file-name suffix for the compression ("" for none).
// Artifact names carry the suffix so stored bytes are self-describing.
func (c Compression) Ext() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// compressionFromName infers the compression from an artifact name suffix
// and returns the name with the suffix stripped.
func compressionFromName(name string) (string, Compression) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		return strings.TrimSuffix(name, ".zst"), CompressionZstd
	case strings.HasSuffix(name, ".lz4"):
		return strings.TrimSuffix(name, ".lz4"), CompressionLZ4
	default:
		return name, CompressionNone
	}
}

func compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		out := enc.EncodeAll(data, nil)
		return out, enc.Close()
	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression: %d", c)
	}
}

func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("unknown compression: %d", c)
	}
}
