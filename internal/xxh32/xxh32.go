// Package xxh32 implements the 32-bit variant of the xxHash algorithm.
//
// This package is internal: it holds the mixing core and the streaming
// state; the public API lives in the root package.
package xxh32

import (
	"encoding/binary"
	"math/bits"
)

const (
	prime1 uint32 = 2654435761
	prime2 uint32 = 2246822519
	prime3 uint32 = 3266489917
	prime4 uint32 = 668265263
	prime5 uint32 = 374761393
)

const (
	// BlockSize is the number of input bytes consumed per round.
	BlockSize = 16
	// Size is the digest length in bytes.
	Size = 4
)

// State is the streaming accumulator for XXH32.
//
// The zero value is not usable; construct with New. A State holds four
// 32-bit lanes, a one-block carry buffer for input that did not fill a
// complete block, and the running input length.
type State struct {
	seed  uint32
	v     [4]uint32
	buf   [BlockSize]byte
	n     int    // buffered bytes, always < BlockSize
	total uint64 // total bytes consumed
}

// New returns a streaming XXH32 state seeded with seed.
func New(seed uint32) *State {
	s := &State{seed: seed}
	s.Reset()
	return s
}

// Seed returns the seed the state was constructed with.
func (s *State) Seed() uint32 { return s.seed }

// Reset restores the state to its post-construction value,
// keeping the seed.
func (s *State) Reset() {
	s.v[0] = s.seed + prime1 + prime2
	s.v[1] = s.seed + prime2
	s.v[2] = s.seed
	s.v[3] = s.seed - prime1
	s.n = 0
	s.total = 0
}

// Update folds p into the state. Full blocks are consumed directly from
// p; only the trailing partial block is copied into the carry buffer.
// A zero-length p is a no-op.
func (s *State) Update(p []byte) {
	s.total += uint64(len(p))

	if s.n > 0 {
		c := copy(s.buf[s.n:], p)
		s.n += c
		if s.n < BlockSize {
			return
		}
		processBlock(&s.v, s.buf[:])
		s.n = 0
		p = p[c:]
	}

	for len(p) >= BlockSize {
		processBlock(&s.v, p[:BlockSize])
		p = p[BlockSize:]
	}
	s.n = copy(s.buf[:], p)
}

// Digest finalizes a copy of the current state and returns the 32-bit
// hash. It does not mutate the state; further updates may follow.
func (s *State) Digest() uint32 {
	return finalize(s.v, s.buf[:s.n], s.total, s.seed)
}

// Checksum computes the XXH32 digest of b in one shot.
func Checksum(b []byte, seed uint32) uint32 {
	v := [4]uint32{
		seed + prime1 + prime2,
		seed + prime2,
		seed,
		seed - prime1,
	}
	total := uint64(len(b))
	for len(b) >= BlockSize {
		processBlock(&v, b[:BlockSize])
		b = b[BlockSize:]
	}
	return finalize(v, b, total, seed)
}

// processBlock folds one full 16-byte block into the accumulator lanes.
func processBlock(v *[4]uint32, b []byte) {
	v[0] = round(v[0], binary.LittleEndian.Uint32(b[0:4]))
	v[1] = round(v[1], binary.LittleEndian.Uint32(b[4:8]))
	v[2] = round(v[2], binary.LittleEndian.Uint32(b[8:12]))
	v[3] = round(v[3], binary.LittleEndian.Uint32(b[12:16]))
}

func round(acc, lane uint32) uint32 {
	return bits.RotateLeft32(acc+lane*prime2, 13) * prime1
}

// finalize converges the lanes, folds the 0..15 tail bytes and applies
// the avalanche. Inputs shorter than one block never touched the lanes
// and start from the seeded prime instead.
func finalize(v [4]uint32, tail []byte, total uint64, seed uint32) uint32 {
	var h uint32
	if total >= BlockSize {
		h = bits.RotateLeft32(v[0], 1) +
			bits.RotateLeft32(v[1], 7) +
			bits.RotateLeft32(v[2], 12) +
			bits.RotateLeft32(v[3], 18)
	} else {
		h = seed + prime5
	}
	h += uint32(total)

	for len(tail) >= 4 {
		h += binary.LittleEndian.Uint32(tail[:4]) * prime3
		h = bits.RotateLeft32(h, 17) * prime4
		tail = tail[4:]
	}
	for _, c := range tail {
		h += uint32(c) * prime5
		h = bits.RotateLeft32(h, 11) * prime1
	}

	h ^= h >> 15
	h *= prime2
	h ^= h >> 13
	h *= prime3
	h ^= h >> 16
	return h
}
