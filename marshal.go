package xxh

import "fmt"

// Hasher snapshots are a one-byte algorithm tag followed by the
// internal state encoding. The tag makes cross-algorithm restores fail
// loudly instead of silently mixing incompatible lane layouts.

func marshalHasher(algo Algorithm, state interface{ MarshalBinary() ([]byte, error) }) ([]byte, error) {
	inner, err := state.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(algo)}, inner...), nil
}

func unmarshalHasher(algo Algorithm, state interface{ UnmarshalBinary([]byte) error }, b []byte) error {
	if len(b) < 1 {
		return fmt.Errorf("%w: empty snapshot", ErrInvalidState)
	}
	got := Algorithm(b[0])
	if !got.Valid() {
		return fmt.Errorf("%w: unknown algorithm tag %d", ErrInvalidState, b[0])
	}
	if got != algo {
		return &ErrAlgorithmMismatch{Expected: algo, Actual: got}
	}
	if err := state.UnmarshalBinary(b[1:]); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h *hasher32) MarshalBinary() ([]byte, error) {
	return marshalHasher(XXH32, &h.state)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The snapshot's
// seed is adopted; the snapshot must stem from a hasher of the same
// algorithm.
func (h *hasher32) UnmarshalBinary(b []byte) error {
	return unmarshalHasher(XXH32, &h.state, b)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h *hasher64) MarshalBinary() ([]byte, error) {
	return marshalHasher(XXH64, &h.state)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *hasher64) UnmarshalBinary(b []byte) error {
	return unmarshalHasher(XXH64, &h.state, b)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h *hasher3) MarshalBinary() ([]byte, error) {
	return marshalHasher(XXH3, &h.state)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *hasher3) UnmarshalBinary(b []byte) error {
	return unmarshalHasher(XXH3, &h.state, b)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h *hasher128) MarshalBinary() ([]byte, error) {
	return marshalHasher(XXH128, &h.state)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *hasher128) UnmarshalBinary(b []byte) error {
	return unmarshalHasher(XXH128, &h.state, b)
}
