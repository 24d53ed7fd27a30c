package xxh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	assert.True(t, value64(7).Equal(value64(7)))
	assert.False(t, value64(7).Equal(value64(8)))

	// Identical payload bits under different tags never compare equal.
	assert.False(t, value64(7).Equal(value3(7)))
	assert.False(t, value32(7).Equal(value64(7)))
	assert.False(t, value128(0, 7).Equal(value64(7)))

	assert.True(t, value128(1, 2).Equal(value128(1, 2)))
	assert.False(t, value128(1, 2).Equal(value128(2, 2)))
	assert.False(t, value128(1, 2).Equal(value128(1, 3)))
}

func TestValueIsZero(t *testing.T) {
	assert.True(t, value32(0).IsZero())
	assert.True(t, value64(0).IsZero())
	assert.True(t, value128(0, 0).IsZero())

	assert.False(t, value64(1).IsZero())
	assert.False(t, value128(1, 0).IsZero())
	assert.False(t, value128(0, 1).IsZero())

	// IsZero checks payload bits only, regardless of the tag.
	assert.True(t, Value{}.IsZero())
}

func TestValueHex(t *testing.T) {
	tests := []struct {
		name     string
		v        Value
		expected string
	}{
		{"XXH32Padded", value32(0xde50), "0000de50"},
		{"XXH32Full", value32(0x4007de50), "4007de50"},
		{"XXH64Padded", value64(0xfe47f), "00000000000fe47f"},
		{"XXH64Full", value64(0xc49aacf8080fe47f), "c49aacf8080fe47f"},
		{"XXH3", value3(0x60415d5f616602aa), "60415d5f616602aa"},
		{"XXH128", value128(0x99aa06d3014798d8, 0x6001c324468d497f), "99aa06d3014798d86001c324468d497f"},
		{"XXH128Padded", value128(0, 1), "00000000000000000000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.v.Hex())
			assert.Equal(t, tt.expected, tt.v.String())
			assert.Len(t, tt.expected, 2*tt.v.algo.Size())
		})
	}
}

func TestValueBytes(t *testing.T) {
	assert.Equal(t, []byte{0x40, 0x07, 0xde, 0x50}, value32(0x4007de50).Bytes())
	assert.Equal(t,
		[]byte{0xc4, 0x9a, 0xac, 0xf8, 0x08, 0x0f, 0xe4, 0x7f},
		value64(0xc49aacf8080fe47f).Bytes())

	b := value128(0x0102030405060708, 0x090a0b0c0d0e0f10).Bytes()
	assert.Equal(t, []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	}, b)
}

func TestValueAccessors(t *testing.T) {
	v := value128(0xaaaa, 0xbbbb)
	hi, lo := v.Uint128()
	assert.Equal(t, uint64(0xaaaa), hi)
	assert.Equal(t, uint64(0xbbbb), lo)
	assert.Equal(t, uint64(0xbbbb), v.Uint64())

	assert.Equal(t, uint32(0x4007de50), value32(0x4007de50).Uint32())
	assert.Equal(t, XXH32, value32(0).Algorithm())
}

func TestAlgorithmString(t *testing.T) {
	assert.Equal(t, "XXH32", XXH32.String())
	assert.Equal(t, "XXH64", XXH64.String())
	assert.Equal(t, "XXH3", XXH3.String())
	assert.Equal(t, "XXH128", XXH128.String())
	assert.Equal(t, "unknown", Algorithm(0).String())

	assert.False(t, Algorithm(0).Valid())
	assert.False(t, Algorithm(5).Valid())
	assert.True(t, XXH128.Valid())
}
