package xxh64

import (
	"encoding/binary"
	"errors"
)

const (
	magic         = "xxh64\x01"
	marshaledSize = len(magic) + 8 + 4*8 + 8 + 1 + BlockSize
)

// MarshalBinary snapshots the state, including the seed, so an
// in-progress hash can be resumed later.
func (s *State) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	b = binary.LittleEndian.AppendUint64(b, s.seed)
	for _, lane := range s.v {
		b = binary.LittleEndian.AppendUint64(b, lane)
	}
	b = binary.LittleEndian.AppendUint64(b, s.total)
	b = append(b, byte(s.n))
	b = append(b, s.buf[:]...)
	return b, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary.
func (s *State) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledSize || string(b[:len(magic)]) != magic {
		return errors.New("xxh64: invalid state snapshot")
	}
	b = b[len(magic):]
	s.seed = binary.LittleEndian.Uint64(b)
	b = b[8:]
	for i := range s.v {
		s.v[i] = binary.LittleEndian.Uint64(b)
		b = b[8:]
	}
	s.total = binary.LittleEndian.Uint64(b)
	b = b[8:]
	s.n = int(b[0])
	if s.n >= BlockSize {
		return errors.New("xxh64: invalid state snapshot")
	}
	copy(s.buf[:], b[1:])
	return nil
}
