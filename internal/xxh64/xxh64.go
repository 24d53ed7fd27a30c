// Package xxh64 implements the 64-bit variant of the xxHash algorithm.
//
// This package is internal: it holds the mixing core and the streaming
// state; the public API lives in the root package.
package xxh64

import (
	"encoding/binary"
	"math/bits"
)

const (
	prime1 uint64 = 11400714785074694791
	prime2 uint64 = 14029467366897019727
	prime3 uint64 = 1609587929392839161
	prime4 uint64 = 9650029242287828579
	prime5 uint64 = 2870177450012600261
)

const (
	// BlockSize is the number of input bytes consumed per round.
	BlockSize = 32
	// Size is the digest length in bytes.
	Size = 8
)

// State is the streaming accumulator for XXH64: four 64-bit lanes, a
// one-block carry buffer and the running input length.
//
// The zero value is not usable; construct with New.
type State struct {
	seed  uint64
	v     [4]uint64
	buf   [BlockSize]byte
	n     int    // buffered bytes, always < BlockSize
	total uint64 // total bytes consumed
}

// New returns a streaming XXH64 state seeded with seed.
func New(seed uint64) *State {
	s := &State{seed: seed}
	s.Reset()
	return s
}

// Seed returns the seed the state was constructed with.
func (s *State) Seed() uint64 { return s.seed }

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

// Digest finalizes a copy of the current state and returns the 64-bit
// hash. It does not mutate the state; further updates may follow.
func (s *State) Digest() uint64 {
	return finalize(s.v, s.buf[:s.n], s.total, s.seed)
}

// Checksum computes the XXH64 digest of b in one shot.
func Checksum(b []byte, seed uint64) uint64 {
	v := [4]uint64{
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

// processBlock folds one full 32-byte block into the accumulator lanes.
func processBlock(v *[4]uint64, b []byte) {
	v[0] = round(v[0], binary.LittleEndian.Uint64(b[0:8]))
	v[1] = round(v[1], binary.LittleEndian.Uint64(b[8:16]))
	v[2] = round(v[2], binary.LittleEndian.Uint64(b[16:24]))
	v[3] = round(v[3], binary.LittleEndian.Uint64(b[24:32]))
}

func round(acc, lane uint64) uint64 {
	return bits.RotateLeft64(acc+lane*prime2, 31) * prime1
}

func mergeRound(h, lane uint64) uint64 {
	h ^= round(0, lane)
	return h*prime1 + prime4
}

// finalize converges the lanes, folds the 0..31 tail bytes and applies
// the avalanche. Inputs shorter than one block never touched the lanes
// and start from the seeded prime instead.
func finalize(v [4]uint64, tail []byte, total uint64, seed uint64) uint64 {
	var h uint64
	if total >= BlockSize {
		h = bits.RotateLeft64(v[0], 1) +
			bits.RotateLeft64(v[1], 7) +
			bits.RotateLeft64(v[2], 12) +
			bits.RotateLeft64(v[3], 18)
		h = mergeRound(h, v[0])
		h = mergeRound(h, v[1])
		h = mergeRound(h, v[2])
		h = mergeRound(h, v[3])
	} else {
		h = seed + prime5
	}
	h += total

	for len(tail) >= 8 {
		h ^= round(0, binary.LittleEndian.Uint64(tail[:8]))
		h = bits.RotateLeft64(h, 27)*prime1 + prime4
		tail = tail[8:]
	}
	if len(tail) >= 4 {
		h ^= uint64(binary.LittleEndian.Uint32(tail[:4])) * prime1
		h = bits.RotateLeft64(h, 23)*prime2 + prime3
		tail = tail[4:]
	}
	for _, c := range tail {
		h ^= uint64(c) * prime5
		h = bits.RotateLeft64(h, 11) * prime1
	}

	h ^= h >> 33
	h *= prime2
	h ^= h >> 29
	h *= prime3
	h ^= h >> 32
	return h
}
