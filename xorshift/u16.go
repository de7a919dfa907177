package xorshift

import (
	"github.com/fysac/xorrand/internal/assert"
	"github.com/fysac/xorrand/seed"
)

const default16 uint16 = 0xDEFA

// XorShift16 has a 16-bit state and generates 16-bit numbers.
//
// This is John Metcalf's 16-bit (7, 9, 8) version of Marsaglia's XorShift32.
type XorShift16 struct {
	x uint16
}

// New16 returns a XorShift16 seeded with seed. It returns false if seed is 0.
func New16(seed uint16) (XorShift16, bool) {
	if seed == 0 {
		return XorShift16{}, false
	}
	return XorShift16{x: seed}, true
}

// New16From8 composes two bytes, least significant first, into the seed.
func New16From8(seeds [2]uint8) (XorShift16, bool) {
	return New16(seed.Compose[uint16](seeds[:]...))
}

// New16Unchecked returns a XorShift16 seeded with seed, which must not be 0.
func New16Unchecked(seed uint16) XorShift16 {
	assert.That(seed != 0, "xorshift16 seed must be non-zero")
	return XorShift16{x: seed}
}

// Default16 returns a XorShift16 seeded with 0xDEFA.
func Default16() XorShift16 { return XorShift16{x: default16} }

func (g XorShift16) Current() uint16 { return g.x }

func (g XorShift16) State() uint16 { return g.x }

func (g *XorShift16) Next() uint16 {
	g.x = step16(g.x)
	return g.x
}

func (g XorShift16) Peek() XorShift16 { return XorShift16{x: step16(g.x)} }

func (g XorShift16) MarshalBinary() ([]byte, error) {
	return seed.AppendLE(nil, g.x), nil
}

func (g *XorShift16) UnmarshalBinary(b []byte) error {
	var s [1]uint16
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	if s[0] == 0 {
		return seed.ErrInvalidSeed
	}
	g.x = s[0]
	return nil
}

func step16(x uint16) uint16 {
	x ^= x << 7
	x ^= x >> 9
	x ^= x << 8
	return x
}
