package xxh3

import (
	"encoding/binary"
	"errors"
)

const (
	magic         = "xxh3\x01"
	marshaledSize = len(magic) + 8 + 8*8 + 8 + 1 + 2 + BufferSize
)

// MarshalBinary snapshots the state, including the seed, so an
// in-progress hash can be resumed later. The derived secret is not
// serialized; it is rebuilt from the seed on unmarshal.
func (s *State) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	b = binary.LittleEndian.AppendUint64(b, s.seed)
	for _, lane := range s.acc {
		b = binary.LittleEndian.AppendUint64(b, lane)
	}
	b = binary.LittleEndian.AppendUint64(b, s.total)
	b = append(b, byte(s.stripes))
	b = binary.LittleEndian.AppendUint16(b, uint16(s.n))
	b = append(b, s.buf[:]...)
	return b, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary.
func (s *State) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledSize || string(b[:len(magic)]) != magic {
		return errors.New("xxh3: invalid state snapshot")
	}
	b = b[len(magic):]
	s.seed = binary.LittleEndian.Uint64(b)
	b = b[8:]
	for i := range s.acc {
		s.acc[i] = binary.LittleEndian.Uint64(b)
		b = b[8:]
	}
	s.total = binary.LittleEndian.Uint64(b)
	b = b[8:]
	s.stripes = int(b[0])
	b = b[1:]
	s.n = int(binary.LittleEndian.Uint16(b))
	b = b[2:]
	if s.stripes >= stripesPerBlock || s.n > BufferSize {
		return errors.New("xxh3: invalid state snapshot")
	}
	copy(s.buf[:], b)
	s.secret = &kSecret
	if s.seed != 0 {
		s.secret = deriveSecret(s.seed)
	}
	return nil
}
