package xorshift

import (
	"github.com/fysac/xorrand/internal/assert"
	"github.com/fysac/xorrand/seed"
)

const default32 uint32 = 0xDEFA0017

// XorShift32 is the classic 32-bit (13, 17, 5) XorShift by George Marsaglia.
type XorShift32 struct {
	x uint32
}

// New32 returns a XorShift32 seeded with seed. It returns false if seed is 0.
func New32(seed uint32) (XorShift32, bool) {
	if seed == 0 {
		return XorShift32{}, false
	}
	return XorShift32{x: seed}, true
}

// New32From16 composes two 16-bit words, least significant first, into the seed.
func New32From16(seeds [2]uint16) (XorShift32, bool) {
	return New32(seed.Compose[uint32](seeds[:]...))
}

// New32From8 composes four bytes, least significant first, into the seed.
func New32From8(seeds [4]uint8) (XorShift32, bool) {
	return New32(seed.Compose[uint32](seeds[:]...))
}

// New32Unchecked returns a XorShift32 seeded with seed, which must not be 0.
func New32Unchecked(seed uint32) XorShift32 {
	assert.That(seed != 0, "xorshift32 seed must be non-zero")
	return XorShift32{x: seed}
}

// Default32 returns a XorShift32 seeded with 0xDEFA0017.
func Default32() XorShift32 { return XorShift32{x: default32} }

func (g XorShift32) Current() uint32 { return g.x }

func (g XorShift32) State() uint32 { return g.x }

func (g *XorShift32) Next() uint32 {
	g.x = step32(g.x)
	return g.x
}

func (g XorShift32) Peek() XorShift32 { return XorShift32{x: step32(g.x)} }

func (g XorShift32) MarshalBinary() ([]byte, error) {
	return seed.AppendLE(nil, g.x), nil
}

func (g *XorShift32) UnmarshalBinary(b []byte) error {
	var s [1]uint32
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	if s[0] == 0 {
		return seed.ErrInvalidSeed
	}
	g.x = s[0]
	return nil
}

// Algorithm "xor" from p. 4 of Marsaglia, "Xorshift RNGs".
func step32(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}
