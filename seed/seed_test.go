package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	assert.Equal(t, uint32(0x04030201), Compose[uint32, uint8](0x01, 0x02, 0x03, 0x04))
	assert.Equal(t, uint64(0x0000000200000001), Compose[uint64, uint32](1, 2))
	assert.Equal(t, uint16(0xfade), Compose[uint16, uint8](0xde, 0xfa))
	// Parts past the wide width are discarded.
	assert.Equal(t, uint16(0x0201), Compose[uint16, uint8](0x01, 0x02, 0x03))
}

func TestSplitRoundTrip(t *testing.T) {
	parts := []uint16{0x1111, 0x2222, 0x3333, 0x4444}
	w := Compose[uint64, uint16](parts...)
	assert.Equal(t, uint64(0x4444333322221111), w)

	got := make([]uint16, len(parts))
	Split(w, got)
	assert.Equal(t, parts, got)

	bytes := make([]uint8, 8)
	Split(w, bytes)
	assert.Equal(t, []uint8{0x11, 0x11, 0x22, 0x22, 0x33, 0x33, 0x44, 0x44}, bytes)
	assert.Equal(t, w, Compose[uint64, uint8](bytes...))
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero[uint32](0, 0, 0, 0))
	assert.True(t, IsZero[uint8]())
	assert.False(t, IsZero[uint32](0, 0, 1, 0))
}

func TestStateLE(t *testing.T) {
	b := AppendLE(nil, uint32(0xdefa0017), uint32(1))
	assert.Equal(t, []byte{0x17, 0x00, 0xfa, 0xde, 0x01, 0x00, 0x00, 0x00}, b)

	var words [2]uint32
	require.NoError(t, DecodeLE(b, words[:]))
	assert.Equal(t, [2]uint32{0xdefa0017, 1}, words)

	assert.ErrorIs(t, DecodeLE(b[:7], words[:]), ErrStateLength)
	assert.EqualError(t, ErrInvalidSeed, "invalid seed")
}

func FuzzCompose(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(0xdefa0017deadbeef))
	f.Fuzz(func(t *testing.T, w uint64) {
		var parts [4]uint16
		Split(w, parts[:])
		if got := Compose[uint64, uint16](parts[:]...); got != w {
			t.Fatalf("compose(split(%#x)) = %#x", w, got)
		}
	})
}
