package xxh

import "runtime"

type options struct {
	concurrency int
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures the batch hashing helpers.
type Option func(*options)

func defaultOptions() options {
	return options{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
}

// WithConcurrency caps the number of inputs hashed in parallel.
// Values below 1 fall back to the default (GOMAXPROCS).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.concurrency = n
		}
	}
}

// WithLogger configures the logger used by the batch helpers.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures the metrics sink for the batch
// helpers. If nil is passed, metrics stay disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}
