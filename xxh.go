package xxh

import (
	"fmt"

	"github.com/hupe1980/xxh/internal/xxh3"
	"github.com/hupe1980/xxh/internal/xxh32"
	"github.com/hupe1980/xxh/internal/xxh64"
)

// Hash32 computes the XXH32 digest of b. Only the low 32 bits of the
// seed are used.
func Hash32(b []byte, seed uint64) uint32 {
	return xxh32.Checksum(b, uint32(seed))
}

// Hash64 computes the XXH64 digest of b.
func Hash64(b []byte, seed uint64) uint64 {
	return xxh64.Checksum(b, seed)
}

// Hash3 computes the 64-bit XXH3 digest of b.
func Hash3(b []byte, seed uint64) uint64 {
	return xxh3.Hash(b, seed)
}

// Hash128 computes the 128-bit XXH3 digest of b as (high, low) words.
func Hash128(b []byte, seed uint64) (hi, lo uint64) {
	return xxh3.Hash128(b, seed)
}

// Sum computes the one-shot digest of b with the given algorithm and
// returns it as a tagged Value.
func Sum(algo Algorithm, b []byte, seed uint64) (Value, error) {
	switch algo {
	case XXH32:
		return value32(Hash32(b, seed)), nil
	case XXH64:
		return value64(Hash64(b, seed)), nil
	case XXH3:
		return value3(Hash3(b, seed)), nil
	case XXH128:
		hi, lo := Hash128(b, seed)
		return value128(hi, lo), nil
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}
