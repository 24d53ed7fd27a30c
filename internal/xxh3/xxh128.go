package xxh3

import (
	"encoding/binary"
	"math/bits"
)

// The 128-bit variant shares the accumulator loop with the 64-bit one
// and differs in the small-input mixers and the final lane merge. It is
// a genuinely independent 128-bit construction, not the 64-bit digest
// widened with zeroes.

func hashShort128(b []byte, seed uint64) (hi, lo uint64) {
	switch {
	case len(b) > 8:
		return hash9To16x128(b, seed)
	case len(b) >= 4:
		return hash4To8x128(b, seed)
	case len(b) > 0:
		return hash1To3x128(b, seed)
	default:
		lo = avalanche64(seed ^ key64(kSecret[64:]) ^ key64(kSecret[72:]))
		hi = avalanche64(seed ^ key64(kSecret[80:]) ^ key64(kSecret[88:]))
		return hi, lo
	}
}

func hash1To3x128(b []byte, seed uint64) (hi, lo uint64) {
	c1 := b[0]
	c2 := b[len(b)>>1]
	c3 := b[len(b)-1]
	combinedLo := uint32(c1)<<16 | uint32(c2)<<24 | uint32(c3) | uint32(len(b))<<8
	combinedHi := bits.RotateLeft32(bits.ReverseBytes32(combinedLo), 13)
	flipLo := uint64(key32(kSecret[0:])^key32(kSecret[4:])) + seed
	flipHi := uint64(key32(kSecret[8:])^key32(kSecret[12:])) - seed
	lo = avalanche64(uint64(combinedLo) ^ flipLo)
	hi = avalanche64(uint64(combinedHi) ^ flipHi)
	return hi, lo
}

func hash4To8x128(b []byte, seed uint64) (hi, lo uint64) {
	seed ^= uint64(bits.ReverseBytes32(uint32(seed))) << 32
	inLo := binary.LittleEndian.Uint32(b)
	inHi := binary.LittleEndian.Uint32(b[len(b)-4:])
	input64 := uint64(inLo) + uint64(inHi)<<32
	bitflip := (key64(kSecret[16:]) ^ key64(kSecret[24:])) + seed
	keyed := input64 ^ bitflip

	mHi, mLo := bits.Mul64(keyed, prime64_1+uint64(len(b))<<2)
	mHi += mLo << 1
	mLo ^= mHi >> 3
	mLo ^= mLo >> 35
	mLo *= primeMX2
	mLo ^= mLo >> 28
	mHi = avalanche(mHi)
	return mHi, mLo
}

func hash9To16x128(b []byte, seed uint64) (hi, lo uint64) {
	flipLo := (key64(kSecret[32:]) ^ key64(kSecret[40:])) - seed
	flipHi := (key64(kSecret[48:]) ^ key64(kSecret[56:])) + seed
	inLo := binary.LittleEndian.Uint64(b)
	inHi := binary.LittleEndian.Uint64(b[len(b)-8:])

	mHi, mLo := bits.Mul64(inLo^inHi^flipLo, prime64_1)
	mLo += uint64(len(b)-1) << 54
	inHi ^= flipHi
	mHi += inHi + uint64(uint32(inHi))*(prime32_2-1)
	mLo ^= bits.ReverseBytes64(mHi)

	rHi, rLo := bits.Mul64(mLo, prime64_2)
	rHi += mHi * prime64_2
	return avalanche(rHi), avalanche(rLo)
}

// mix32 is one 32-byte mixing round feeding both result lanes; each
// half mixes one 16-byte window and xors the raw words of the other.
func mix32(accLo, accHi uint64, b1, b2, secret []byte, seed uint64) (uint64, uint64) {
	accLo += mix16(b1, secret, seed)
	accLo ^= binary.LittleEndian.Uint64(b2) + binary.LittleEndian.Uint64(b2[8:])
	accHi += mix16(b2, secret[16:], seed)
	accHi ^= binary.LittleEndian.Uint64(b1) + binary.LittleEndian.Uint64(b1[8:])
	return accLo, accHi
}

func hash17To128x128(b []byte, seed uint64) (hi, lo uint64) {
	n := len(b)
	accLo := uint64(n) * prime64_1
	accHi := uint64(0)
	for i := (n - 1) / 32; i >= 0; i-- {
		accLo, accHi = mix32(accLo, accHi, b[16*i:], b[n-16*(i+1):], kSecret[32*i:], seed)
	}
	lo = avalanche(accLo + accHi)
	hi = -avalanche(accLo*prime64_1 + accHi*prime64_4 + (uint64(n)-seed)*prime64_2)
	return hi, lo
}

func hash129To240x128(b []byte, seed uint64) (hi, lo uint64) {
	n := len(b)
	accLo := uint64(n) * prime64_1
	accHi := uint64(0)
	for i := 32; i < 160; i += 32 {
		accLo, accHi = mix32(accLo, accHi, b[i-32:], b[i-16:], kSecret[i-32:], seed)
	}
	accLo = avalanche(accLo)
	accHi = avalanche(accHi)
	for i := 160; i <= n; i += 32 {
		accLo, accHi = mix32(accLo, accHi, b[i-32:], b[i-16:], kSecret[midSizeStartOffset+i-160:], seed)
	}
	accLo, accHi = mix32(accLo, accHi, b[n-16:], b[n-32:], kSecret[secretSizeMin-midSizeLastOffset-16:], -seed)

	lo = avalanche(accLo + accHi)
	hi = -avalanche(accLo*prime64_1 + accHi*prime64_4 + (uint64(n)-seed)*prime64_2)
	return hi, lo
}
