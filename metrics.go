package xxh

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational
// metrics from the batch hashing helpers. Implement this interface to
// integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordHash is called after each completed hash of a batch.
	// n is the input length in bytes.
	RecordHash(algo Algorithm, n int)

	// RecordBatch is called once per batch. count is the number of
	// inputs, err is nil if the whole batch succeeded.
	RecordBatch(count int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordHash(Algorithm, int) {}
func (NoopMetricsCollector) RecordBatch(int, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external
// dependencies.
type BasicMetricsCollector struct {
	HashCount   atomic.Int64
	BytesHashed atomic.Int64
	BatchCount  atomic.Int64
	BatchErrors atomic.Int64
}

func (c *BasicMetricsCollector) RecordHash(_ Algorithm, n int) {
	c.HashCount.Add(1)
	c.BytesHashed.Add(int64(n))
}

func (c *BasicMetricsCollector) RecordBatch(_ int, err error) {
	c.BatchCount.Add(1)
	if err != nil {
		c.BatchErrors.Add(1)
	}
}
