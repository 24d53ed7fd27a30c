// Package xxh3 implements the XXH3 algorithm in its 64-bit and 128-bit
// digest variants.
//
// This package is internal: it holds the mixing core, the length-
// dispatched finalization paths and the streaming state; the public API
// lives in the root package.
//
// XXH3 dispatches on input length. Inputs up to 16 bytes use dedicated
// small-input mixers, 17..128 bytes use 16-byte mixing rounds over the
// secret, 129..240 bytes add extended rounds at a shifted secret
// offset, and longer inputs run the striped accumulator loop (see
// accum.go).
package xxh3

import (
	"encoding/binary"
	"math/bits"
)

const (
	prime32_1 uint64 = 2654435761
	prime32_2 uint64 = 2246822519
	prime32_3 uint64 = 3266489917

	prime64_1 uint64 = 11400714785074694791
	prime64_2 uint64 = 14029467366897019727
	prime64_3 uint64 = 1609587929392839161
	prime64_4 uint64 = 9650029242287828579
	prime64_5 uint64 = 2870177450012600261

	primeMX1 uint64 = 0x165667919E3779F9
	primeMX2 uint64 = 0x9FB21C651E98DF25
)

const (
	// Size is the 64-bit digest length in bytes.
	Size = 8
	// Size128 is the 128-bit digest length in bytes.
	Size128 = 16

	// midSizeMax is the largest input handled without the striped
	// accumulator loop.
	midSizeMax = 240

	midSizeStartOffset = 3
	midSizeLastOffset  = 17
	secretSizeMin      = 136
)

// Hash computes the 64-bit XXH3 digest of b in one shot.
func Hash(b []byte, seed uint64) uint64 {
	n := len(b)
	switch {
	case n <= 16:
		return hashShort64(b, seed)
	case n <= 128:
		return hash17To128(b, seed)
	case n <= midSizeMax:
		return hash129To240(b, seed)
	}
	secret := &kSecret
	if seed != 0 {
		secret = deriveSecret(seed)
	}
	acc := initAcc
	hashLong(&acc, b, secret)
	return mergeAccs(&acc, secret[mergeStart:], uint64(n)*prime64_1)
}

// Hash128 computes the 128-bit XXH3 digest of b in one shot, returned
// as (high, low) words.
func Hash128(b []byte, seed uint64) (hi, lo uint64) {
	n := len(b)
	switch {
	case n <= 16:
		return hashShort128(b, seed)
	case n <= 128:
		return hash17To128x128(b, seed)
	case n <= midSizeMax:
		return hash129To240x128(b, seed)
	}
	secret := &kSecret
	if seed != 0 {
		secret = deriveSecret(seed)
	}
	acc := initAcc
	hashLong(&acc, b, secret)
	lo = mergeAccs(&acc, secret[mergeStart:], uint64(n)*prime64_1)
	hi = mergeAccs(&acc, secret[secretSize-StripeSize-mergeStart:], ^(uint64(n) * prime64_2))
	return hi, lo
}

// mulFold64 multiplies two 64-bit words to a 128-bit product and folds
// the halves together.
func mulFold64(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return hi ^ lo
}

// avalanche is the XXH3 finalization mix.
func avalanche(h uint64) uint64 {
	h ^= h >> 37
	h *= primeMX1
	h ^= h >> 32
	return h
}

// avalanche64 is the classic XXH64 finalization mix, used by the
// smallest input paths.
func avalanche64(h uint64) uint64 {
	h ^= h >> 33
	h *= prime64_2
	h ^= h >> 29
	h *= prime64_3
	h ^= h >> 32
	return h
}

// rrmxmx is the stronger small-input mix used by the 4..8 byte path.
func rrmxmx(h, n uint64) uint64 {
	h ^= bits.RotateLeft64(h, 49) ^ bits.RotateLeft64(h, 24)
	h *= primeMX2
	h ^= (h >> 35) + n
	h *= primeMX2
	h ^= h >> 28
	return h
}

func hashShort64(b []byte, seed uint64) uint64 {
	switch {
	case len(b) > 8:
		return hash9To16(b, seed)
	case len(b) >= 4:
		return hash4To8(b, seed)
	case len(b) > 0:
		return hash1To3(b, seed)
	default:
		return avalanche64(seed ^ key64(kSecret[56:]) ^ key64(kSecret[64:]))
	}
}

func hash1To3(b []byte, seed uint64) uint64 {
	c1 := b[0]
	c2 := b[len(b)>>1]
	c3 := b[len(b)-1]
	combined := uint32(c1)<<16 | uint32(c2)<<24 | uint32(c3) | uint32(len(b))<<8
	bitflip := uint64(key32(kSecret[0:])^key32(kSecret[4:])) + seed
	return avalanche64(uint64(combined) ^ bitflip)
}

func hash4To8(b []byte, seed uint64) uint64 {
	seed ^= uint64(bits.ReverseBytes32(uint32(seed))) << 32
	in1 := binary.LittleEndian.Uint32(b)
	in2 := binary.LittleEndian.Uint32(b[len(b)-4:])
	bitflip := (key64(kSecret[8:]) ^ key64(kSecret[16:])) - seed
	input64 := uint64(in2) + uint64(in1)<<32
	return rrmxmx(input64^bitflip, uint64(len(b)))
}

func hash9To16(b []byte, seed uint64) uint64 {
	flipLo := (key64(kSecret[24:]) ^ key64(kSecret[32:])) + seed
	flipHi := (key64(kSecret[40:]) ^ key64(kSecret[48:])) - seed
	inLo := binary.LittleEndian.Uint64(b) ^ flipLo
	inHi := binary.LittleEndian.Uint64(b[len(b)-8:]) ^ flipHi
	acc := uint64(len(b)) + bits.ReverseBytes64(inLo) + inHi + mulFold64(inLo, inHi)
	return avalanche(acc)
}

// mix16 is one 16-byte mixing round against a 16-byte secret window.
func mix16(b, secret []byte, seed uint64) uint64 {
	inLo := binary.LittleEndian.Uint64(b)
	inHi := binary.LittleEndian.Uint64(b[8:])
	return mulFold64(
		inLo^(key64(secret)+seed),
		inHi^(key64(secret[8:])-seed),
	)
}

func hash17To128(b []byte, seed uint64) uint64 {
	n := len(b)
	acc := uint64(n) * prime64_1
	if n > 32 {
		if n > 64 {
			if n > 96 {
				acc += mix16(b[48:], kSecret[96:], seed)
				acc += mix16(b[n-64:], kSecret[112:], seed)
			}
			acc += mix16(b[32:], kSecret[64:], seed)
			acc += mix16(b[n-48:], kSecret[80:], seed)
		}
		acc += mix16(b[16:], kSecret[32:], seed)
		acc += mix16(b[n-32:], kSecret[48:], seed)
	}
	acc += mix16(b, kSecret[:], seed)
	acc += mix16(b[n-16:], kSecret[16:], seed)
	return avalanche(acc)
}

func hash129To240(b []byte, seed uint64) uint64 {
	n := len(b)
	acc := uint64(n) * prime64_1
	for i := 0; i < 8; i++ {
		acc += mix16(b[16*i:], kSecret[16*i:], seed)
	}
	acc = avalanche(acc)
	for i := 8; i < n/16; i++ {
		acc += mix16(b[16*i:], kSecret[16*(i-8)+midSizeStartOffset:], seed)
	}
	acc += mix16(b[n-16:], kSecret[secretSizeMin-midSizeLastOffset:], seed)
	return avalanche(acc)
}
