package embedplot

import (
	"github.com/hupe1980/embedplot/frame"
)

const (
	// DefaultNeighbors is the neighborhood size used when WithNeighbors is
	// not supplied. Matches the common UMAP default.
	DefaultNeighbors = 15

	// DefaultColumnPrefix is the prefix for sequentially named coordinate
	// columns (EMB1, EMB2, ...).
	DefaultColumnPrefix = "EMB"
)

type options struct {
	neighbors      int
	normalize      bool
	scaleMode      frame.ScaleMode
	annotate       Annotate
	prefix         string
	dropIncomplete bool
	logger         *Logger
	metrics        MetricsCollector
}

func defaultOptions() *options {
	return &options{
		neighbors: DefaultNeighbors,
		normalize: true,
		scaleMode: frame.ScaleStandard,
		annotate:  AnnotateAll,
		prefix:    DefaultColumnPrefix,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
}

// Option configures Embed behavior.
//
// Options exist to avoid exploding the API surface with parameter-specific
// entry points.
type Option func(*options)

// WithNeighbors sets the requested neighborhood size passed to the embedding
// backend. If the dataset has fewer than 4x this many rows, the effective
// size is shrunk proportionally, floored at 3.
func WithNeighbors(n int) Option {
	return func(o *options) {
		o.neighbors = n
	}
}

// WithNormalize controls per-column centering and scaling of the numeric
// matrix before embedding. Enabled by default. Columns with zero variance
// are dropped rather than producing undefined values.
func WithNormalize(normalize bool) Option {
	return func(o *options) {
		o.normalize = normalize
	}
}

// WithScaleMode selects the normalization applied when WithNormalize is
// enabled. Default is frame.ScaleStandard (zero mean, unit variance).
func WithScaleMode(mode frame.ScaleMode) Option {
	return func(o *options) {
		o.scaleMode = mode
	}
}

// WithAnnotate selects which original columns are reattached to the
// coordinate table. Default is AnnotateAll.
func WithAnnotate(a Annotate) Option {
	return func(o *options) {
		o.annotate = a
	}
}

// WithColumnPrefix sets the prefix for the sequentially named coordinate
// columns. Default is "EMB".
func WithColumnPrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}

// WithDropIncomplete drops rows containing undefined numeric values instead
// of failing with ErrMissingValues. Reattached annotation columns are
// subset to the surviving rows.
func WithDropIncomplete(drop bool) Option {
	return func(o *options) {
		o.dropIncomplete = drop
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector. Defaults to NoopMetricsCollector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
