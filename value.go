package xxh

import (
	"encoding/binary"
	"fmt"
)

// Value is an algorithm-tagged digest. It is an immutable value type,
// freely copyable and safe to share across goroutines.
//
// Values of different algorithms never compare equal, even when the
// numeric payloads coincide.
type Value struct {
	algo Algorithm
	hi   uint64 // high word, XXH128 only
	lo   uint64
}

func value32(v uint32) Value {
	return Value{algo: XXH32, lo: uint64(v)}
}

func value64(v uint64) Value {
	return Value{algo: XXH64, lo: v}
}

func value3(v uint64) Value {
	return Value{algo: XXH3, lo: v}
}

func value128(hi, lo uint64) Value {
	return Value{algo: XXH128, hi: hi, lo: lo}
}

// Algorithm returns the algorithm that produced the value.
func (v Value) Algorithm() Algorithm { return v.algo }

// Equal reports whether both the algorithm tag and every payload bit
// match.
func (v Value) Equal(o Value) bool {
	return v.algo == o.algo && v.hi == o.hi && v.lo == o.lo
}

// IsZero reports whether the payload bits are all zero, regardless of
// the algorithm tag.
func (v Value) IsZero() bool {
	return v.hi == 0 && v.lo == 0
}

// Uint32 returns the payload as a 32-bit word. Meaningful for XXH32.
func (v Value) Uint32() uint32 { return uint32(v.lo) }

// Uint64 returns the payload as a 64-bit word. Meaningful for XXH64 and
// XXH3; for XXH128 it returns the low word.
func (v Value) Uint64() uint64 { return v.lo }

// Uint128 returns the payload as (high, low) words. The high word is
// zero for all algorithms but XXH128.
func (v Value) Uint128() (hi, lo uint64) { return v.hi, v.lo }

// Bytes returns the canonical big-endian digest bytes, matching the hex
// representation.
func (v Value) Bytes() []byte {
	switch v.algo {
	case XXH32:
		return binary.BigEndian.AppendUint32(nil, uint32(v.lo))
	case XXH128:
		b := binary.BigEndian.AppendUint64(nil, v.hi)
		return binary.BigEndian.AppendUint64(b, v.lo)
	default:
		return binary.BigEndian.AppendUint64(nil, v.lo)
	}
}

// Hex returns the digest as a fixed-width, zero-padded, lowercase hex
// string: 8 characters for XXH32, 16 for XXH64/XXH3 and 32 for XXH128
// (high word first).
func (v Value) Hex() string {
	switch v.algo {
	case XXH32:
		return fmt.Sprintf("%08x", uint32(v.lo))
	case XXH128:
		return fmt.Sprintf("%016x%016x", v.hi, v.lo)
	default:
		return fmt.Sprintf("%016x", v.lo)
	}
}

// String implements fmt.Stringer and is equivalent to Hex.
func (v Value) String() string { return v.Hex() }
