package xxh_test

import (
	"math/rand"
	"testing"

	cespare "github.com/cespare/xxhash/v2"
	"github.com/pierrec/xxHash/xxHash32"
	"github.com/pierrec/xxHash/xxHash64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zeebo "github.com/zeebo/xxh3"

	"github.com/hupe1980/xxh"
)

// Golden vectors from the xxHash reference implementation.
func TestGoldenVectors(t *testing.T) {
	hello := []byte("Hello, World!")

	assert.Equal(t, uint32(0x4007de50), xxh.Hash32(hello, 0))
	assert.Equal(t, uint64(0xc49aacf8080fe47f), xxh.Hash64(hello, 0))
	assert.Equal(t, uint64(0x60415d5f616602aa), xxh.Hash3(hello, 0))

	assert.Equal(t, uint32(0x02cc5d05), xxh.Hash32(nil, 0))
	assert.Equal(t, uint64(0xef46db3751d8e999), xxh.Hash64(nil, 0))
	assert.Equal(t, uint64(0x2d06800538d394c2), xxh.Hash3(nil, 0))

	hi, lo := xxh.Hash128(nil, 0)
	assert.Equal(t, uint64(0x99aa06d3014798d8), hi)
	assert.Equal(t, uint64(0x6001c324468d497f), lo)
}

func TestGoldenVectorsStreaming(t *testing.T) {
	for _, algo := range []xxh.Algorithm{xxh.XXH32, xxh.XXH64, xxh.XXH3} {
		h, err := xxh.New(algo, 0)
		require.NoError(t, err)

		h.Update([]byte("Hello, "))
		h.Update([]byte("World!"))

		oneShot, err := xxh.Sum(algo, []byte("Hello, World!"), 0)
		require.NoError(t, err)
		assert.True(t, h.Digest().Equal(oneShot), "algorithm %s", algo)
	}
}

// TestAgainstReferencePorts cross-checks every algorithm against
// independent Go ports over inputs covering all length-dispatch bands.
func TestAgainstReferencePorts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 4096)
	_, err := rng.Read(data)
	require.NoError(t, err)

	sizes := []int{
		0, 1, 2, 3, 4, 7, 8, 9, 15, 16, 17, 31, 32, 33,
		63, 64, 65, 100, 128, 129, 200, 240, 241, 256, 257,
		512, 1000, 1024, 1025, 2048, 4096,
	}
	seeds := []uint64{0, 42, 0xdeadbeef}

	for _, seed := range seeds {
		for _, size := range sizes {
			input := data[:size]

			assert.Equal(t, xxHash32.Checksum(input, uint32(seed)),
				xxh.Hash32(input, seed), "XXH32 seed %d size %d", seed, size)
			assert.Equal(t, xxHash64.Checksum(input, seed),
				xxh.Hash64(input, seed), "XXH64 seed %d size %d", seed, size)
			assert.Equal(t, zeebo.HashSeed(input, seed),
				xxh.Hash3(input, seed), "XXH3 seed %d size %d", seed, size)

			want := zeebo.Hash128Seed(input, seed)
			hi, lo := xxh.Hash128(input, seed)
			assert.Equal(t, want.Hi, hi, "XXH128 hi seed %d size %d", seed, size)
			assert.Equal(t, want.Lo, lo, "XXH128 lo seed %d size %d", seed, size)
		}
	}
}

func TestAgainstCespareSum64(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	data := make([]byte, 2048)
	_, err := rng.Read(data)
	require.NoError(t, err)

	for _, size := range []int{0, 1, 31, 32, 33, 1000, 2048} {
		assert.Equal(t, cespare.Sum64(data[:size]), xxh.Hash64(data[:size], 0), "size %d", size)
	}
}

func TestSum(t *testing.T) {
	data := []byte("Hello, World!")

	tests := []struct {
		algo xxh.Algorithm
		hex  string
	}{
		{xxh.XXH32, "4007de50"},
		{xxh.XXH64, "c49aacf8080fe47f"},
		{xxh.XXH3, "60415d5f616602aa"},
	}

	for _, tt := range tests {
		t.Run(tt.algo.String(), func(t *testing.T) {
			v, err := xxh.Sum(tt.algo, data, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.algo, v.Algorithm())
			assert.Equal(t, tt.hex, v.Hex())
		})
	}
}

func TestSumUnknownAlgorithm(t *testing.T) {
	_, err := xxh.Sum(xxh.Algorithm(0), nil, 0)
	assert.ErrorIs(t, err, xxh.ErrUnknownAlgorithm)

	_, err = xxh.Sum(xxh.Algorithm(99), nil, 0)
	assert.ErrorIs(t, err, xxh.ErrUnknownAlgorithm)
}

func TestSeedSensitivity(t *testing.T) {
	data := []byte("Hello, World!")
	for _, algo := range []xxh.Algorithm{xxh.XXH32, xxh.XXH64, xxh.XXH3, xxh.XXH128} {
		a, err := xxh.Sum(algo, data, 0)
		require.NoError(t, err)
		b, err := xxh.Sum(algo, data, 42)
		require.NoError(t, err)
		assert.False(t, a.Equal(b), "algorithm %s", algo)
	}
}

func BenchmarkHash64(b *testing.B) {
	data := make([]byte, 4096)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		xxh.Hash64(data, 0)
	}
}

func BenchmarkHash3(b *testing.B) {
	data := make([]byte, 4096)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		xxh.Hash3(data, 0)
	}
}
