package xorshift

import (
	"github.com/fysac/xorrand/internal/assert"
	"github.com/fysac/xorrand/seed"
)

const default64 uint64 = 0xDEFA0017DEFA0017

// XorShift64 is the classic 64-bit (13, 7, 17) XorShift by George Marsaglia.
type XorShift64 struct {
	x uint64
}

// New64 returns a XorShift64 seeded with seed. It returns false if seed is 0.
func New64(seed uint64) (XorShift64, bool) {
	if seed == 0 {
		return XorShift64{}, false
	}
	return XorShift64{x: seed}, true
}

func New64From32(seeds [2]uint32) (XorShift64, bool) {
	return New64(seed.Compose[uint64](seeds[:]...))
}

func New64From16(seeds [4]uint16) (XorShift64, bool) {
	return New64(seed.Compose[uint64](seeds[:]...))
}

func New64From8(seeds [8]uint8) (XorShift64, bool) {
	return New64(seed.Compose[uint64](seeds[:]...))
}

// New64Unchecked returns a XorShift64 seeded with seed, which must not be 0.
func New64Unchecked(seed uint64) XorShift64 {
	assert.That(seed != 0, "xorshift64 seed must be non-zero")
	return XorShift64{x: seed}
}

// Default64 returns a XorShift64 seeded with 0xDEFA0017DEFA0017.
func Default64() XorShift64 { return XorShift64{x: default64} }

func (g XorShift64) Current() uint64 { return g.x }

func (g XorShift64) State() uint64 { return g.x }

func (g *XorShift64) Next() uint64 {
	g.x = step64(g.x)
	return g.x
}

func (g XorShift64) Peek() XorShift64 { return XorShift64{x: step64(g.x)} }

func (g XorShift64) MarshalBinary() ([]byte, error) {
	return seed.AppendLE(nil, g.x), nil
}

func (g *XorShift64) UnmarshalBinary(b []byte) error {
	var s [1]uint64
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	if s[0] == 0 {
		return seed.ErrInvalidSeed
	}
	g.x = s[0]
	return nil
}

func step64(x uint64) uint64 {
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	return x
}
