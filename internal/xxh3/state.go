package xxh3

// BufferSize is the streaming carry capacity: four stripes. Inputs that
// never exceed it (and therefore never exceed midSizeMax) are digested
// through the one-shot small/mid paths at finalization time.
const BufferSize = 4 * StripeSize // 256

// State is the streaming accumulator shared by the 64-bit and 128-bit
// XXH3 digests: eight 64-bit lanes, a four-stripe carry buffer, the
// position within the current scramble block and the running length.
//
// The zero value is not usable; construct with New.
type State struct {
	acc     [8]uint64
	buf     [BufferSize]byte
	n       int // buffered bytes
	stripes int // stripes consumed in the current scramble block
	total   uint64
	seed    uint64
	secret  *[secretSize]byte
}

// New returns a streaming XXH3 state seeded with seed. A non-zero seed
// switches the long path to a seed-derived secret, matching the
// one-shot functions.
func New(seed uint64) *State {
	s := &State{seed: seed, secret: &kSecret}
	if seed != 0 {
		s.secret = deriveSecret(seed)
	}
	s.Reset()
	return s
}

// Seed returns the seed the state was constructed with.
func (s *State) Seed() uint64 { return s.seed }

// Reset restores the state to its post-construction value, keeping the
// seed and the derived secret.
func (s *State) Reset() {
	s.acc = initAcc
	s.n = 0
	s.stripes = 0
	s.total = 0
}

// Update folds p into the state. Whole buffer-sized chunks are consumed
// directly from p; the buffer holds at most four stripes of carry-over.
// The final stripe of any directly-consumed run is retained in the
// buffer tail because finalization re-reads the trailing 64 bytes of
// input. A zero-length p is a no-op.
func (s *State) Update(p []byte) {
	s.total += uint64(len(p))

	if s.n+len(p) <= len(s.buf) {
		s.n += copy(s.buf[s.n:], p)
		return
	}

	const bufStripes = BufferSize / StripeSize

	off := 0
	if s.n > 0 {
		off = copy(s.buf[s.n:], p)
		consumeStripes(&s.acc, &s.stripes, s.buf[:], bufStripes, s.secret)
		s.n = 0
	}

	if off+len(s.buf) < len(p) {
		for off+len(s.buf) < len(p) {
			consumeStripes(&s.acc, &s.stripes, p[off:], bufStripes, s.secret)
			off += len(s.buf)
		}
		copy(s.buf[len(s.buf)-StripeSize:], p[off-StripeSize:off])
	}

	s.n = copy(s.buf[:], p[off:])
}

// digestLong finalizes the buffered tail into a copy of the lanes.
// Called only when total length exceeds midSizeMax, which guarantees at
// least one byte is buffered and the preceding stripe is reachable.
func (s *State) digestLong(acc *[8]uint64) {
	*acc = s.acc
	if s.n >= StripeSize {
		nbStripes := (s.n - 1) / StripeSize
		stripesSoFar := s.stripes
		consumeStripes(acc, &stripesSoFar, s.buf[:], nbStripes, s.secret)
		accumulate512(acc, s.buf[s.n-StripeSize:], s.secret[secretLimit-lastAccStart:])
		return
	}
	// Fewer buffered bytes than one stripe: borrow the missing prefix
	// from the previously consumed bytes kept in the buffer tail.
	var lastStripe [StripeSize]byte
	catchup := StripeSize - s.n
	copy(lastStripe[:], s.buf[len(s.buf)-catchup:])
	copy(lastStripe[catchup:], s.buf[:s.n])
	accumulate512(acc, lastStripe[:], s.secret[secretLimit-lastAccStart:])
}

// Digest finalizes a copy of the current state and returns the 64-bit
// hash. It does not mutate the state; further updates may follow.
func (s *State) Digest() uint64 {
	if s.total > midSizeMax {
		var acc [8]uint64
		s.digestLong(&acc)
		return mergeAccs(&acc, s.secret[mergeStart:], s.total*prime64_1)
	}
	return Hash(s.buf[:s.n], s.seed)
}

// Digest128 finalizes a copy of the current state and returns the
// 128-bit hash as (high, low) words. It does not mutate the state.
func (s *State) Digest128() (hi, lo uint64) {
	if s.total > midSizeMax {
		var acc [8]uint64
		s.digestLong(&acc)
		lo = mergeAccs(&acc, s.secret[mergeStart:], s.total*prime64_1)
		hi = mergeAccs(&acc, s.secret[secretSize-StripeSize-mergeStart:], ^(s.total * prime64_2))
		return hi, lo
	}
	return Hash128(s.buf[:s.n], s.seed)
}
