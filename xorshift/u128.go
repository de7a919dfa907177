package xorshift

import (
	"math/bits"

	"github.com/fysac/xorrand/internal/assert"
	"github.com/fysac/xorrand/seed"
)

// XorShift128 has a 128-bit state held in four 32-bit words and generates
// 64-bit numbers.
type XorShift128 struct {
	s [4]uint32
}

// New128 returns a XorShift128 seeded with seeds. It returns false if all
// seeds are 0.
func New128(seeds [4]uint32) (XorShift128, bool) {
	if seed.IsZero(seeds[:]...) {
		return XorShift128{}, false
	}
	return XorShift128{s: seeds}, true
}

// New128From64 splits each 64-bit seed into its low and high halves.
func New128From64(seeds [2]uint64) (XorShift128, bool) {
	var s [4]uint32
	seed.Split(seeds[0], s[0:2])
	seed.Split(seeds[1], s[2:4])
	return New128(s)
}

// New128From16 composes pairs of 16-bit words into each 32-bit state word.
func New128From16(seeds [8]uint16) (XorShift128, bool) {
	var s [4]uint32
	for i := range s {
		s[i] = seed.Compose[uint32](seeds[2*i : 2*i+2]...)
	}
	return New128(s)
}

// New128From8 composes groups of four bytes into each 32-bit state word.
func New128From8(seeds [16]uint8) (XorShift128, bool) {
	var s [4]uint32
	for i := range s {
		s[i] = seed.Compose[uint32](seeds[4*i : 4*i+4]...)
	}
	return New128(s)
}

// New128Unchecked returns a XorShift128 seeded with seeds, which must not
// all be 0.
func New128Unchecked(seeds [4]uint32) XorShift128 {
	assert.That(!seed.IsZero(seeds[:]...), "xorshift128 seed must be non-zero")
	return XorShift128{s: seeds}
}

// Default128 returns a XorShift128 with every state word set to 0xDEFA0017.
func Default128() XorShift128 {
	return XorShift128{s: [4]uint32{default32, default32, default32, default32}}
}

// Current returns the last output, the two newest words combined.
func (g XorShift128) Current() uint64 {
	return uint64(g.s[0])<<32 | uint64(g.s[1])
}

func (g XorShift128) State() [4]uint32 { return g.s }

func (g *XorShift128) Next() uint64 {
	g.s = step128(g.s)
	return g.Current()
}

func (g XorShift128) Peek() XorShift128 { return XorShift128{s: step128(g.s)} }

func (g XorShift128) MarshalBinary() ([]byte, error) {
	return seed.AppendLE(nil, g.s[:]...), nil
}

func (g *XorShift128) UnmarshalBinary(b []byte) error {
	var s [4]uint32
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	if seed.IsZero(s[:]...) {
		return seed.ErrInvalidSeed
	}
	g.s = s
	return nil
}

func step128(s [4]uint32) [4]uint32 {
	t := s[3]
	x := s[0]
	s[3] = s[2]
	s[2] = s[1]
	s[1] = x
	x ^= x << 11
	x ^= x >> 8
	s[0] = x ^ t ^ (t >> 19)
	return s
}

// XorShift128p is the XorShift128+ generator: two 64-bit words advanced by a
// rotate, shift and add recurrence. Its output has better statistical
// properties than XorShift128.
type XorShift128p struct {
	s [2]uint64
}

// New128p returns a XorShift128p seeded with seeds, low word first.
// It returns false if both seeds are 0.
func New128p(seeds [2]uint64) (XorShift128p, bool) {
	if seed.IsZero(seeds[:]...) {
		return XorShift128p{}, false
	}
	return XorShift128p{s: seeds}, true
}

func New128pFrom32(seeds [4]uint32) (XorShift128p, bool) {
	return New128p([2]uint64{
		seed.Compose[uint64](seeds[0:2]...),
		seed.Compose[uint64](seeds[2:4]...),
	})
}

func New128pFrom16(seeds [8]uint16) (XorShift128p, bool) {
	return New128p([2]uint64{
		seed.Compose[uint64](seeds[0:4]...),
		seed.Compose[uint64](seeds[4:8]...),
	})
}

func New128pFrom8(seeds [16]uint8) (XorShift128p, bool) {
	return New128p([2]uint64{
		seed.Compose[uint64](seeds[0:8]...),
		seed.Compose[uint64](seeds[8:16]...),
	})
}

// New128pUnchecked returns a XorShift128p seeded with seeds, which must not
// both be 0.
func New128pUnchecked(seeds [2]uint64) XorShift128p {
	assert.That(!seed.IsZero(seeds[:]...), "xorshift128p seed must be non-zero")
	return XorShift128p{s: seeds}
}

// Default128p returns a XorShift128p with both words set to 0xDEFA0017DEFA0017.
func Default128p() XorShift128p {
	return XorShift128p{s: [2]uint64{default64, default64}}
}

// Current returns the value the next call to Next will return. The output of
// the previous step is not recoverable from the state.
func (g XorShift128p) Current() uint64 { return g.s[0] + g.s[1] }

func (g XorShift128p) State() [2]uint64 { return g.s }

// Next returns the sum of the two words and then advances the state.
func (g *XorShift128p) Next() uint64 {
	result := g.s[0] + g.s[1]
	g.s = step128p(g.s)
	return result
}

func (g XorShift128p) Peek() XorShift128p { return XorShift128p{s: step128p(g.s)} }

func (g XorShift128p) MarshalBinary() ([]byte, error) {
	return seed.AppendLE(nil, g.s[:]...), nil
}

func (g *XorShift128p) UnmarshalBinary(b []byte) error {
	var s [2]uint64
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	if seed.IsZero(s[:]...) {
		return seed.ErrInvalidSeed
	}
	g.s = s
	return nil
}

func step128p(s [2]uint64) [2]uint64 {
	s1 := s[0] ^ s[1]
	return [2]uint64{
		bits.RotateLeft64(s[1], 24) ^ s1 ^ (s1 << 16), // a, b
		bits.RotateLeft64(s1, 37),                     // c
	}
}
