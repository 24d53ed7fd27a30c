package xxh

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// HashEach hashes every input independently and returns the digests in
// input order. Each input gets its own hashing state, so the work
// parallelizes without coordination; concurrency is bounded by
// WithConcurrency (default GOMAXPROCS).
//
// ctx cancellation is observed between inputs: hashing a single input
// is a finite pure computation and is never interrupted midway.
func HashEach(ctx context.Context, algo Algorithm, seed uint64, inputs [][]byte, opts ...Option) ([]Value, error) {
	if !algo.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]Value, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := Sum(algo, in, seed)
			if err != nil {
				return err
			}
			out[i] = v
			o.metrics.RecordHash(algo, len(in))
			return nil
		})
	}

	err := g.Wait()
	o.metrics.RecordBatch(len(inputs), err)
	if err != nil {
		return nil, err
	}

	o.logger.DebugContext(ctx, "batch hash completed",
		"algorithm", algo.String(),
		"count", len(inputs),
	)
	return out, nil
}
