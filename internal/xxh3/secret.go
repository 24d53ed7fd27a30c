package xxh3

import "encoding/binary"

// secretSize is the length of the default secret. The long-input path
// reads 64-byte windows of it at 8-byte offsets; the last 64 bytes feed
// the scramble step.
const (
	secretSize  = 192
	secretLimit = secretSize - StripeSize // 128
)

// kSecret is the canonical pseudorandom secret defined by the XXH3
// specification. It must not be mutated.
var kSecret = [secretSize]byte{
	0xb8, 0xfe, 0x6c, 0x39, 0x23, 0xa4, 0x4b, 0xbe, 0x7c, 0x01, 0x81, 0x2c, 0xf7, 0x21, 0xad, 0x1c,
	0xde, 0xd4, 0x6d, 0xe9, 0x83, 0x90, 0x97, 0xdb, 0x72, 0x40, 0xa4, 0xa4, 0xb7, 0xb3, 0x67, 0x1f,
	0xcb, 0x79, 0xe6, 0x4e, 0xcc, 0xc0, 0xe5, 0x78, 0x82, 0x5a, 0xd0, 0x7d, 0xcc, 0xff, 0x72, 0x21,
	0xb8, 0x08, 0x46, 0x74, 0xf7, 0x43, 0x24, 0x8e, 0xe0, 0x35, 0x90, 0xe6, 0x81, 0x3a, 0x26, 0x4c,
	0x3c, 0x28, 0x52, 0xbb, 0x91, 0xc3, 0x00, 0xcb, 0x88, 0xd0, 0x65, 0x8b, 0x1b, 0x53, 0x2e, 0xa3,
	0x71, 0x64, 0x48, 0x97, 0xa2, 0x0d, 0xf9, 0x4e, 0x38, 0x19, 0xef, 0x46, 0xa9, 0xde, 0xac, 0xd8,
	0xa8, 0xfa, 0x76, 0x3f, 0xe3, 0x9c, 0x34, 0x3f, 0xf9, 0xdc, 0xbb, 0xc7, 0xc7, 0x0b, 0x4f, 0x1d,
	0x8a, 0x51, 0xe0, 0x4b, 0xcd, 0xb4, 0x59, 0x31, 0xc8, 0x9f, 0x7e, 0xc9, 0xd9, 0x78, 0x73, 0x64,
	0xea, 0xc5, 0xac, 0x83, 0x34, 0xd3, 0xeb, 0xc3, 0xc5, 0x81, 0xa0, 0xff, 0xfa, 0x13, 0x63, 0xeb,
	0x17, 0x0d, 0xdd, 0x51, 0xb7, 0xf0, 0xda, 0x49, 0xd3, 0x16, 0x55, 0x26, 0x29, 0xd4, 0x68, 0x9e,
	0x2b, 0x16, 0xbe, 0x58, 0x7d, 0x47, 0xa1, 0xfc, 0x8f, 0xf8, 0xb8, 0xd1, 0x7a, 0xd0, 0x31, 0xce,
	0x45, 0xcb, 0x3a, 0x8f, 0x95, 0x16, 0x04, 0x28, 0xaf, 0xd7, 0xfb, 0xca, 0xbb, 0x4b, 0x40, 0x7e,
}

// key64 reads a little-endian 64-bit word from a secret slice.
func key64(s []byte) uint64 {
	return binary.LittleEndian.Uint64(s)
}

// key32 reads a little-endian 32-bit word from a secret slice.
func key32(s []byte) uint32 {
	return binary.LittleEndian.Uint32(s)
}

// deriveSecret produces the seed-customized secret used by the
// long-input path: each 16-byte pair of the default secret has the seed
// added to its low word and subtracted from its high word.
func deriveSecret(seed uint64) *[secretSize]byte {
	var s [secretSize]byte
	for i := 0; i < secretSize/16; i++ {
		binary.LittleEndian.PutUint64(s[16*i:], key64(kSecret[16*i:])+seed)
		binary.LittleEndian.PutUint64(s[16*i+8:], key64(kSecret[16*i+8:])-seed)
	}
	return &s
}
