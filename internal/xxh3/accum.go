package xxh3

import (
	"encoding/binary"
)

const (
	// StripeSize is the number of input bytes consumed per
	// accumulator round.
	StripeSize = 64

	// stripesPerBlock stripes are accumulated between scrambles; the
	// secret window shifts by 8 bytes per stripe and is exhausted
	// after (secretSize-StripeSize)/8 stripes.
	stripesPerBlock = secretLimit / 8              // 16
	blockSize       = StripeSize * stripesPerBlock // 1024

	// mergeStart is the secret offset for folding the accumulator
	// lanes into the final digest; lastAccStart positions the secret
	// window of the end-of-input stripe.
	mergeStart   = 11
	lastAccStart = 7
)

// initAcc holds the seed-independent initial accumulator lanes.
// Seeding enters the long path through the derived secret instead.
var initAcc = [8]uint64{
	prime32_3, prime64_1, prime64_2, prime64_3,
	prime64_4, prime32_2, prime64_5, prime32_1,
}

// accumulate512 folds one 64-byte stripe into the eight lanes. Each
// lane xors its input word with the secret, multiplies the 32-bit
// halves, and the raw input word crosses over into the neighbor lane.
func accumulate512(acc *[8]uint64, stripe, secret []byte) {
	for i := 0; i < 8; i++ {
		dv := binary.LittleEndian.Uint64(stripe[8*i:])
		dk := dv ^ binary.LittleEndian.Uint64(secret[8*i:])
		acc[i^1] += dv
		acc[i] += (dk & 0xFFFFFFFF) * (dk >> 32)
	}
}

// accumulate folds nbStripes consecutive stripes, shifting the secret
// window by 8 bytes per stripe.
func accumulate(acc *[8]uint64, b, secret []byte, nbStripes int) {
	for i := 0; i < nbStripes; i++ {
		accumulate512(acc, b[i*StripeSize:], secret[i*8:])
	}
}

// scramble re-randomizes the lanes once per block, when the secret
// window is exhausted. secret must point at the last 64 secret bytes.
func scramble(acc *[8]uint64, secret []byte) {
	for i := 0; i < 8; i++ {
		a := acc[i]
		a ^= a >> 47
		a ^= binary.LittleEndian.Uint64(secret[8*i:])
		acc[i] = a * prime32_1
	}
}

// hashLong runs the striped accumulator loop over b (len(b) > 240):
// whole blocks with a trailing scramble, then the remaining full
// stripes, then the final (possibly overlapping) 64 bytes of input as
// the last stripe.
func hashLong(acc *[8]uint64, b []byte, secret *[secretSize]byte) {
	n := len(b)
	nbBlocks := (n - 1) / blockSize
	for i := 0; i < nbBlocks; i++ {
		accumulate(acc, b[i*blockSize:], secret[:], stripesPerBlock)
		scramble(acc, secret[secretLimit:])
	}
	nbStripes := (n - 1 - nbBlocks*blockSize) / StripeSize
	accumulate(acc, b[nbBlocks*blockSize:], secret[:], nbStripes)
	accumulate512(acc, b[n-StripeSize:], secret[secretLimit-lastAccStart:])
}

// mergeAccs folds lane pairs against the secret and avalanches the sum.
func mergeAccs(acc *[8]uint64, secret []byte, start uint64) uint64 {
	r := start
	for i := 0; i < 4; i++ {
		r += mulFold64(
			acc[2*i]^key64(secret[16*i:]),
			acc[2*i+1]^key64(secret[16*i+8:]),
		)
	}
	return avalanche(r)
}

// consumeStripes feeds nbStripes (at most stripesPerBlock) stripes into
// the lanes, scrambling when the current block fills. stripesSoFar
// tracks the position within the block across calls.
func consumeStripes(acc *[8]uint64, stripesSoFar *int, b []byte, nbStripes int, secret *[secretSize]byte) {
	if stripesPerBlock-*stripesSoFar <= nbStripes {
		toEnd := stripesPerBlock - *stripesSoFar
		after := nbStripes - toEnd
		accumulate(acc, b, secret[*stripesSoFar*8:], toEnd)
		scramble(acc, secret[secretLimit:])
		accumulate(acc, b[toEnd*StripeSize:], secret[:], after)
		*stripesSoFar = after
	} else {
		accumulate(acc, b, secret[*stripesSoFar*8:], nbStripes)
		*stripesSoFar += nbStripes
	}
}
