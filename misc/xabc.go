package misc

import "github.com/fysac/xorrand/seed"

var defaultXabc = [4]uint8{0xDE, 0xFA, 0x00, 0x17}

// Xabc is the "X ABC" 8-bit generator for small microcontrollers: a counter x
// mixed into three accumulators a, b and c. The counter keeps the state off
// zero, so any seed is accepted.
type Xabc struct {
	x, a, b, c uint8
}

// NewXabc returns a Xabc seeded with seeds in (x, a, b, c) order.
func NewXabc(seeds [4]uint8) Xabc {
	return Xabc{x: seeds[0], a: seeds[1], b: seeds[2], c: seeds[3]}
}

// NewXabcFrom32 splits s into bytes, least significant byte into x.
func NewXabcFrom32(s uint32) Xabc {
	var seeds [4]uint8
	seed.Split(s, seeds[:])
	return NewXabc(seeds)
}

func DefaultXabc() Xabc { return NewXabc(defaultXabc) }

func (g Xabc) Current() uint8 { return g.c }

func (g Xabc) State() [4]uint8 { return [4]uint8{g.x, g.a, g.b, g.c} }

func (g *Xabc) Next() uint8 {
	g.x++
	g.a = g.a ^ g.c ^ g.x
	g.b += g.a
	g.c = (g.c + g.b>>1) ^ g.a
	return g.c
}

func (g Xabc) Peek() Xabc {
	g.Next()
	return g
}

func (g Xabc) MarshalBinary() ([]byte, error) {
	return []byte{g.x, g.a, g.b, g.c}, nil
}

func (g *Xabc) UnmarshalBinary(b []byte) error {
	var s [4]uint8
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	*g = NewXabc(s)
	return nil
}
