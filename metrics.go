package embedplot

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordEmbed is called after each embedding operation.
	// rows is the number of observations embedded, dims the output
	// dimensionality, duration the total time taken, err is nil on success.
	RecordEmbed(rows, dims int, duration time.Duration, err error)

	// RecordScale is called after each normalization pass.
	// dropped is the number of zero-variance columns removed.
	RecordScale(columns, dropped int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEmbed(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordScale(int, int, time.Duration)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EmbedCount      atomic.Int64
	EmbedErrors     atomic.Int64
	EmbedRows       atomic.Int64
	EmbedTotalNanos atomic.Int64
	ScaleCount      atomic.Int64
	ScaleDropped    atomic.Int64
}

func (c *BasicMetricsCollector) RecordEmbed(rows, dims int, duration time.Duration, err error) {
	c.EmbedCount.Add(1)
	c.EmbedRows.Add(int64(rows))
	c.EmbedTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.EmbedErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordScale(columns, dropped int, duration time.Duration) {
	c.ScaleCount.Add(1)
	c.ScaleDropped.Add(int64(dropped))
}
