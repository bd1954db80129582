package fifo

import (
	"github.com/c360/fifokit/metric"
)

// Encoder appends a fixed-size binary rendering of item to dst and returns
// the extended slice. Used by Snapshot to serialize slot contents.
type Encoder[T any] func(item T, dst []byte) []byte

// Option configures queue behavior using the functional options pattern.
type Option[T any] func(*fifoOptions[T])

// fifoOptions holds internal configuration for queue instances.
// Stats are always collected; metrics and snapshot encoding are optional.
type fifoOptions[T any] struct {
	// metricsReg is optional - if provided, queue stats are also exposed
	// as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string

	// encoder serializes slot contents for Snapshot
	encoder Encoder[T]
}

// WithMetrics enables Prometheus metrics export for queue statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(opts *fifoOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithEncoder sets the serializer used by Snapshot to render slot
// contents. Without an encoder, snapshots carry only the cursor header.
// For Entry queues, the method expression Entry.AppendBinary fits directly:
//
//	fifo.WithEncoder[fifo.Entry](fifo.Entry.AppendBinary)
func WithEncoder[T any](encoder Encoder[T]) Option[T] {
	return func(opts *fifoOptions[T]) {
		opts.encoder = encoder
	}
}

// applyOptions applies functional options to create final queue configuration.
func applyOptions[T any](options ...Option[T]) *fifoOptions[T] {
	opts := &fifoOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
