// Package xxh is a pure-Go implementation of the xxHash family of
// extremely fast non-cryptographic hash algorithms: XXH32, XXH64 and
// the XXH3 generation with 64-bit and 128-bit digests.
//
// # Quick Start
//
// One-shot hashing:
//
//	h64 := xxh.Hash64([]byte("Hello, World!"), 0)
//	h3 := xxh.Hash3([]byte("Hello, World!"), 42)
//	hi, lo := xxh.Hash128(payload, 0)
//
// Streaming:
//
//	hasher, _ := xxh.New(xxh.XXH3, 0)
//	hasher.Update(chunk1)
//	hasher.Update(chunk2)
//	v := hasher.Digest()
//	fmt.Println(v.Hex()) // 16 lowercase hex chars
//
// The final digest of a stream equals the one-shot hash of the
// concatenated chunks, for any chunking. Digest never consumes the
// state: it can be called mid-stream, and the hasher keeps accepting
// updates afterwards.
//
// # Tagged Results
//
// Digest returns a Value tagged with its Algorithm. Values of different
// algorithms never compare equal, even when the payload bits coincide:
//
//	a, _ := xxh.Sum(xxh.XXH64, data, 0)
//	b, _ := xxh.Sum(xxh.XXH3, data, 0)
//	a.Equal(b) // false, regardless of the numeric values
//
// # Seeds
//
// Every function takes a 64-bit seed (XXH32 uses the low 32 bits),
// selecting a hash family member. Seed zero selects the canonical,
// externally documented variant. There is no secret customization
// beyond the seed.
//
// # Concurrency
//
// Hashing is synchronous and allocation-free on the hot path. A Hasher
// is exclusively owned; hash many streams in parallel with one Hasher
// per stream, or use HashEach for independent byte slices. Values are
// immutable and safe to share.
//
// xxHash is not cryptographically secure and must not be used where
// collision resistance against adversarial input matters.
package xxh
