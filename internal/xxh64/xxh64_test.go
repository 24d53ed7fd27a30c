package xxh64

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		seed     uint64
		expected uint64
	}{
		{"Empty", "", 0, 0xef46db3751d8e999},
		{"HelloWorld", "Hello, World!", 0, 0xc49aacf8080fe47f},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Checksum([]byte(tt.input), tt.seed))
		})
	}
}

func TestChecksumSeedSensitivity(t *testing.T) {
	input := []byte("Hello, World!")
	assert.NotEqual(t, Checksum(input, 0), Checksum(input, 42))
}

func TestStreamingMatchesChecksum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 4096)
	_, err := rng.Read(data)
	require.NoError(t, err)

	for _, size := range []int{0, 1, 4, 8, 9, 31, 32, 33, 63, 64, 100, 1000, 4096} {
		input := data[:size]
		want := Checksum(input, 42)

		s := New(42)
		for off := 0; off < len(input); {
			n := 1 + rng.Intn(len(input)-off)
			s.Update(input[off : off+n])
			off += n
		}
		assert.Equal(t, want, s.Digest(), "size %d", size)
	}
}

func TestLargeSingleUpdate(t *testing.T) {
	// One update holding many full blocks must bypass the carry buffer.
	input := []byte(strings.Repeat("0123456789abcdef", 64))

	s := New(0)
	s.Update(input)
	assert.Equal(t, Checksum(input, 0), s.Digest())
}

func TestDigestIdempotent(t *testing.T) {
	s := New(0)
	s.Update([]byte("Hello, "))
	first := s.Digest()
	assert.Equal(t, first, s.Digest())

	s.Update([]byte("World!"))
	assert.Equal(t, Checksum([]byte("Hello, World!"), 0), s.Digest())
}

func TestReset(t *testing.T) {
	s := New(7)
	s.Update([]byte("some previous content"))
	_ = s.Digest()
	s.Reset()

	s.Update([]byte("abc"))
	assert.Equal(t, Checksum([]byte("abc"), 7), s.Digest())
}

func TestMarshalRoundTrip(t *testing.T) {
	s := New(42)
	s.Update([]byte("partial input that spans more than one block plus tail"))

	snap, err := s.MarshalBinary()
	require.NoError(t, err)

	restored := New(0)
	require.NoError(t, restored.UnmarshalBinary(snap))

	s.Update([]byte("rest"))
	restored.Update([]byte("rest"))
	assert.Equal(t, s.Digest(), restored.Digest())
	assert.Equal(t, uint64(42), restored.Seed())
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	s := New(0)
	assert.Error(t, s.UnmarshalBinary(nil))
	assert.Error(t, s.UnmarshalBinary([]byte("xxh32\x01not a valid snapshot either")))
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 4096)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		Checksum(data, 0)
	}
}
