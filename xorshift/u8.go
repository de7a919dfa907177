package xorshift

import (
	"github.com/fysac/xorrand/internal/assert"
	"github.com/fysac/xorrand/seed"
)

const default8 uint8 = 0xDE

// XorShift8 has an 8-bit state and generates 8-bit numbers,
// using the shift triple (3, 4, 2).
type XorShift8 struct {
	x uint8
}

// New8 returns a XorShift8 seeded with seed. It returns false if seed is 0.
func New8(seed uint8) (XorShift8, bool) {
	if seed == 0 {
		return XorShift8{}, false
	}
	return XorShift8{x: seed}, true
}

// New8Unchecked returns a XorShift8 seeded with seed, which must not be 0.
func New8Unchecked(seed uint8) XorShift8 {
	assert.That(seed != 0, "xorshift8 seed must be non-zero")
	return XorShift8{x: seed}
}

// Default8 returns a XorShift8 seeded with 0xDE.
func Default8() XorShift8 { return XorShift8{x: default8} }

func (g XorShift8) Current() uint8 { return g.x }

func (g XorShift8) State() uint8 { return g.x }

// Next advances the generator and returns the new value.
func (g *XorShift8) Next() uint8 {
	g.x = step8(g.x, 3, 4, 2)
	return g.x
}

// Peek returns the generator one step ahead, leaving g untouched.
func (g XorShift8) Peek() XorShift8 {
	return XorShift8{x: step8(g.x, 3, 4, 2)}
}

func (g XorShift8) MarshalBinary() ([]byte, error) {
	return []byte{g.x}, nil
}

func (g *XorShift8) UnmarshalBinary(b []byte) error {
	var s [1]uint8
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	if s[0] == 0 {
		return seed.ErrInvalidSeed
	}
	g.x = s[0]
	return nil
}

func step8(x, s1, s2, s3 uint8) uint8 {
	x ^= x << s1
	x ^= x >> s2
	x ^= x << s3
	return x
}

// Shifts8 is the shift triple of an 8-bit XorShift generator.
type Shifts8 struct {
	S1, S2, S3 uint8
}

// DefaultShifts8 are the shifts used by XorShift8.
var DefaultShifts8 = Shifts8{3, 4, 2}

// Valid reports whether every shift lies in [1, 7].
func (s Shifts8) Valid() bool {
	return s.S1 >= 1 && s.S1 <= 7 &&
		s.S2 >= 1 && s.S2 <= 7 &&
		s.S3 >= 1 && s.S3 <= 7
}

// XorShift8Gen is an 8-bit XorShift generator with caller-chosen shifts.
//
// The shifts must be valid (see Shifts8.Valid). Debug builds panic on invalid
// shifts; other builds produce a poor sequence but never crash.
type XorShift8Gen struct {
	x  uint8
	sh Shifts8
}

// NewGen8 returns a XorShift8Gen using shifts, seeded with seed.
// It returns false if seed is 0.
func NewGen8(shifts Shifts8, seed uint8) (XorShift8Gen, bool) {
	assert.That(shifts.Valid(), "xorshift8gen shifts must be in [1, 7]")
	if seed == 0 {
		return XorShift8Gen{}, false
	}
	return XorShift8Gen{x: seed, sh: shifts}, true
}

// NewGen8Unchecked is like NewGen8 but seed must not be 0.
func NewGen8Unchecked(shifts Shifts8, seed uint8) XorShift8Gen {
	assert.That(shifts.Valid(), "xorshift8gen shifts must be in [1, 7]")
	assert.That(seed != 0, "xorshift8gen seed must be non-zero")
	return XorShift8Gen{x: seed, sh: shifts}
}

// DefaultGen8 returns a XorShift8Gen with DefaultShifts8 seeded with 0xDE.
func DefaultGen8() XorShift8Gen {
	return XorShift8Gen{x: default8, sh: DefaultShifts8}
}

func (g XorShift8Gen) Shifts() Shifts8 { return g.sh }

func (g XorShift8Gen) Current() uint8 { return g.x }

func (g XorShift8Gen) State() uint8 { return g.x }

func (g *XorShift8Gen) Next() uint8 {
	g.x = step8(g.x, g.sh.S1, g.sh.S2, g.sh.S3)
	return g.x
}

func (g XorShift8Gen) Peek() XorShift8Gen {
	g.x = step8(g.x, g.sh.S1, g.sh.S2, g.sh.S3)
	return g
}

// MarshalBinary encodes the state byte only; the shifts are not part of it.
func (g XorShift8Gen) MarshalBinary() ([]byte, error) {
	return []byte{g.x}, nil
}

// UnmarshalBinary restores the state byte. A generator with no shifts set
// takes DefaultShifts8.
func (g *XorShift8Gen) UnmarshalBinary(b []byte) error {
	var s [1]uint8
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	if s[0] == 0 {
		return seed.ErrInvalidSeed
	}
	if g.sh == (Shifts8{}) {
		g.sh = DefaultShifts8
	}
	g.x = s[0]
	return nil
}
