package xxh_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/hupe1980/xxh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchInputs(t *testing.T, count int) [][]byte {
	t.Helper()

	rng := rand.New(rand.NewSource(0x5eed))
	inputs := make([][]byte, count)
	for i := range inputs {
		b := make([]byte, rng.Intn(512))
		rng.Read(b)
		inputs[i] = b
	}
	return inputs
}

func TestHashEachMatchesSum(t *testing.T) {
	ctx := context.Background()
	inputs := batchInputs(t, 64)

	for _, algo := range []xxh.Algorithm{xxh.XXH32, xxh.XXH64, xxh.XXH3, xxh.XXH128} {
		t.Run(algo.String(), func(t *testing.T) {
			got, err := xxh.HashEach(ctx, algo, 42, inputs)
			require.NoError(t, err)
			require.Len(t, got, len(inputs))

			for i, in := range inputs {
				want, err := xxh.Sum(algo, in, 42)
				require.NoError(t, err)
				assert.True(t, want.Equal(got[i]), "input %d", i)
			}
		})
	}
}

func TestHashEachEmptyBatch(t *testing.T) {
	got, err := xxh.HashEach(context.Background(), xxh.XXH64, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHashEachUnknownAlgorithm(t *testing.T) {
	_, err := xxh.HashEach(context.Background(), xxh.Algorithm(99), 0, [][]byte{{1}})
	require.ErrorIs(t, err, xxh.ErrUnknownAlgorithm)
}

func TestHashEachCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := xxh.HashEach(ctx, xxh.XXH3, 0, batchInputs(t, 16))
	require.ErrorIs(t, err, context.Canceled)
}

func TestHashEachConcurrencyOption(t *testing.T) {
	inputs := batchInputs(t, 32)

	sequential, err := xxh.HashEach(context.Background(), xxh.XXH64, 7, inputs,
		xxh.WithConcurrency(1))
	require.NoError(t, err)

	parallel, err := xxh.HashEach(context.Background(), xxh.XXH64, 7, inputs,
		xxh.WithConcurrency(8))
	require.NoError(t, err)

	for i := range inputs {
		assert.True(t, sequential[i].Equal(parallel[i]), "input %d", i)
	}
}

func TestHashEachMetrics(t *testing.T) {
	inputs := batchInputs(t, 10)
	var total int
	for _, in := range inputs {
		total += len(in)
	}

	mc := &xxh.BasicMetricsCollector{}
	_, err := xxh.HashEach(context.Background(), xxh.XXH3, 0, inputs,
		xxh.WithMetricsCollector(mc))
	require.NoError(t, err)

	assert.Equal(t, int64(len(inputs)), mc.HashCount.Load())
	assert.Equal(t, int64(total), mc.BytesHashed.Load())
	assert.Equal(t, int64(1), mc.BatchCount.Load())
	assert.Equal(t, int64(0), mc.BatchErrors.Load())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = xxh.HashEach(ctx, xxh.XXH3, 0, inputs, xxh.WithMetricsCollector(mc))
	require.Error(t, err)
	assert.Equal(t, int64(2), mc.BatchCount.Load())
	assert.Equal(t, int64(1), mc.BatchErrors.Load())
}
