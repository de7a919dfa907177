package xorshift

import "github.com/fysac/xorrand/seed"

var defaultXyza8 = [4]uint8{0xDE, 0xFA, 0x00, 0x17}

// Xyza8a is an 8-bit generator with a 32-bit state kept as a four byte shift
// register (x, y, z, a), based on the XorShift algorithm.
//
// The quality of its output is excellent for such a small state and it passes
// almost all of the diehard tests. Its longest cycle is 4,261,412,736, but
// about 0.8% of seeds fall into poor quality short cycles, so some care is
// required when seeding it.
//
// Ported from https://github.com/edrosten/8bit_rng,
// Copyright (c) 2008-2013 Edward Rosten, BSD 2-Clause License.
type Xyza8a struct {
	x, y, z, a uint8
}

// NewXyza8a returns a Xyza8a seeded with seeds in (x, y, z, a) order.
// A zero seed is accepted but makes a poor start.
func NewXyza8a(seeds [4]uint8) Xyza8a {
	return Xyza8a{x: seeds[0], y: seeds[1], z: seeds[2], a: seeds[3]}
}

// NewXyza8aFrom32 splits seed into bytes, least significant byte into x.
func NewXyza8aFrom32(s uint32) Xyza8a {
	var seeds [4]uint8
	seed.Split(s, seeds[:])
	return NewXyza8a(seeds)
}

// DefaultXyza8a returns a Xyza8a seeded with DE FA 00 17.
func DefaultXyza8a() Xyza8a { return NewXyza8a(defaultXyza8) }

// Current returns the last output, the a register.
func (g Xyza8a) Current() uint8 { return g.a }

func (g Xyza8a) State() [4]uint8 { return [4]uint8{g.x, g.y, g.z, g.a} }

func (g *Xyza8a) Next() uint8 {
	t := g.x ^ (g.x << 4)
	g.x = g.y
	g.y = g.z
	g.z = g.a
	g.a = g.z ^ t ^ (g.z >> 1) ^ (t << 1)
	return g.a
}

func (g Xyza8a) Peek() Xyza8a {
	g.Next()
	return g
}

func (g Xyza8a) MarshalBinary() ([]byte, error) {
	return []byte{g.x, g.y, g.z, g.a}, nil
}

func (g *Xyza8a) UnmarshalBinary(b []byte) error {
	var s [4]uint8
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	*g = NewXyza8a(s)
	return nil
}

// Xyza8b shares the shift register of Xyza8a with a cheaper combination step.
//
// It has an almost optimal cycle of 4,294,967,294, so no care is needed when
// seeding it beyond avoiding all zeros, but it fails many of the diehard tests.
type Xyza8b struct {
	x, y, z, a uint8
}

// NewXyza8b returns a Xyza8b seeded with seeds in (x, y, z, a) order.
func NewXyza8b(seeds [4]uint8) Xyza8b {
	return Xyza8b{x: seeds[0], y: seeds[1], z: seeds[2], a: seeds[3]}
}

func NewXyza8bFrom32(s uint32) Xyza8b {
	var seeds [4]uint8
	seed.Split(s, seeds[:])
	return NewXyza8b(seeds)
}

// DefaultXyza8b returns a Xyza8b seeded with DE FA 00 17.
func DefaultXyza8b() Xyza8b { return NewXyza8b(defaultXyza8) }

func (g Xyza8b) Current() uint8 { return g.a }

func (g Xyza8b) State() [4]uint8 { return [4]uint8{g.x, g.y, g.z, g.a} }

func (g *Xyza8b) Next() uint8 {
	t := g.x ^ (g.x >> 1)
	g.x = g.y
	g.y = g.z
	g.z = g.a
	g.a = g.z ^ t ^ (g.z >> 3) ^ (t << 1)
	return g.a
}

func (g Xyza8b) Peek() Xyza8b {
	g.Next()
	return g
}

func (g Xyza8b) MarshalBinary() ([]byte, error) {
	return []byte{g.x, g.y, g.z, g.a}, nil
}

func (g *Xyza8b) UnmarshalBinary(b []byte) error {
	var s [4]uint8
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	*g = NewXyza8b(s)
	return nil
}
