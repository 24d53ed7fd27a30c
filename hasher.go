package xxh

import (
	"encoding"
	"fmt"
	"hash"

	"github.com/hupe1980/xxh/internal/xxh3"
	"github.com/hupe1980/xxh/internal/xxh32"
	"github.com/hupe1980/xxh/internal/xxh64"
)

// Hasher is a streaming hash over an algorithm fixed at construction.
//
// A Hasher is exclusively owned: it must not be used from multiple
// goroutines without external synchronization. Hash many streams in
// parallel by giving each stream its own Hasher (see HashEach).
//
// Digest never consumes the state: it may be called speculatively
// mid-stream, repeated calls without intervening updates return
// bit-identical values, and further updates may follow. Hasher also
// satisfies the stdlib hash.Hash contract and snapshots its state via
// encoding.BinaryMarshaler, so in-progress hashes can be checkpointed
// and resumed.
type Hasher interface {
	hash.Hash
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	// Update folds p into the state. Any length is valid, including
	// zero (a no-op). Equivalent to Write without the error result.
	Update(p []byte)

	// Digest finalizes a copy of the current state into a tagged
	// Value without mutating the hasher.
	Digest() Value

	// Algorithm returns the algorithm fixed at construction.
	Algorithm() Algorithm

	// Seed returns the seed fixed at construction. Re-seeding is not
	// supported; construct a new Hasher instead.
	Seed() uint64
}

// New returns a streaming Hasher for the given algorithm and seed.
//
// The only failure mode is an undefined algorithm value; memory
// exhaustion surfaces through the Go runtime as usual.
func New(algo Algorithm, seed uint64) (Hasher, error) {
	switch algo {
	case XXH32:
		return &hasher32{state: *xxh32.New(uint32(seed))}, nil
	case XXH64:
		return &hasher64{state: *xxh64.New(seed)}, nil
	case XXH3:
		return &hasher3{state: *xxh3.New(seed)}, nil
	case XXH128:
		return &hasher128{state: *xxh3.New(seed)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

type hasher32 struct {
	state xxh32.State
}

func (h *hasher32) Update(p []byte) { h.state.Update(p) }

func (h *hasher32) Write(p []byte) (int, error) {
	h.state.Update(p)
	return len(p), nil
}

func (h *hasher32) Digest() Value { return value32(h.state.Digest()) }

func (h *hasher32) Sum(b []byte) []byte { return append(b, h.Digest().Bytes()...) }

func (h *hasher32) Reset() { h.state.Reset() }

func (h *hasher32) Size() int { return xxh32.Size }

func (h *hasher32) BlockSize() int { return xxh32.BlockSize }

func (h *hasher32) Algorithm() Algorithm { return XXH32 }

func (h *hasher32) Seed() uint64 { return uint64(h.state.Seed()) }

type hasher64 struct {
	state xxh64.State
}

func (h *hasher64) Update(p []byte) { h.state.Update(p) }

func (h *hasher64) Write(p []byte) (int, error) {
	h.state.Update(p)
	return len(p), nil
}

func (h *hasher64) Digest() Value { return value64(h.state.Digest()) }

func (h *hasher64) Sum(b []byte) []byte { return append(b, h.Digest().Bytes()...) }

func (h *hasher64) Reset() { h.state.Reset() }

func (h *hasher64) Size() int { return xxh64.Size }

func (h *hasher64) BlockSize() int { return xxh64.BlockSize }

func (h *hasher64) Algorithm() Algorithm { return XXH64 }

func (h *hasher64) Seed() uint64 { return h.state.Seed() }

type hasher3 struct {
	state xxh3.State
}

func (h *hasher3) Update(p []byte) { h.state.Update(p) }

func (h *hasher3) Write(p []byte) (int, error) {
	h.state.Update(p)
	return len(p), nil
}

func (h *hasher3) Digest() Value { return value3(h.state.Digest()) }

func (h *hasher3) Sum(b []byte) []byte { return append(b, h.Digest().Bytes()...) }

func (h *hasher3) Reset() { h.state.Reset() }

func (h *hasher3) Size() int { return xxh3.Size }

func (h *hasher3) BlockSize() int { return xxh3.StripeSize }

func (h *hasher3) Algorithm() Algorithm { return XXH3 }

func (h *hasher3) Seed() uint64 { return h.state.Seed() }

type hasher128 struct {
	state xxh3.State
}

func (h *hasher128) Update(p []byte) { h.state.Update(p) }

func (h *hasher128) Write(p []byte) (int, error) {
	h.state.Update(p)
	return len(p), nil
}

func (h *hasher128) Digest() Value { return value128(h.state.Digest128()) }

func (h *hasher128) Sum(b []byte) []byte { return append(b, h.Digest().Bytes()...) }

func (h *hasher128) Reset() { h.state.Reset() }

func (h *hasher128) Size() int { return xxh3.Size128 }

func (h *hasher128) BlockSize() int { return xxh3.StripeSize }

func (h *hasher128) Algorithm() Algorithm { return XXH128 }

func (h *hasher128) Seed() uint64 { return h.state.Seed() }
