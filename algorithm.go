package xxh

import (
	"github.com/hupe1980/xxh/internal/xxh3"
	"github.com/hupe1980/xxh/internal/xxh32"
	"github.com/hupe1980/xxh/internal/xxh64"
)

// Algorithm selects one of the xxHash variants. It is chosen once per
// hasher or one-shot call and fixes the digest width, the block size
// and the mixing constants.
type Algorithm int

const (
	// XXH32 is the classic 32-bit variant.
	XXH32 Algorithm = iota + 1
	// XXH64 is the classic 64-bit variant.
	XXH64
	// XXH3 is the 64-bit digest of the XXH3 generation.
	XXH3
	// XXH128 is the 128-bit digest of the XXH3 generation.
	XXH128
)

// Valid reports whether a is one of the defined algorithms.
func (a Algorithm) Valid() bool {
	return a >= XXH32 && a <= XXH128
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case XXH32:
		return xxh32.Size
	case XXH64:
		return xxh64.Size
	case XXH128:
		return xxh3.Size128
	default:
		return xxh3.Size
	}
}

// BlockSize returns the number of input bytes one mixing round
// consumes: 16 for XXH32, 32 for XXH64 and one 64-byte stripe for the
// XXH3 variants.
func (a Algorithm) BlockSize() int {
	switch a {
	case XXH32:
		return xxh32.BlockSize
	case XXH64:
		return xxh64.BlockSize
	default:
		return xxh3.StripeSize
	}
}

func (a Algorithm) String() string {
	switch a {
	case XXH32:
		return "XXH32"
	case XXH64:
		return "XXH64"
	case XXH3:
		return "XXH3"
	case XXH128:
		return "XXH128"
	default:
		return "unknown"
	}
}
