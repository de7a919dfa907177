// Byte Magazine multiply-by-13-add-1 random number generator
// Derived from B. J. Murphy, "Sweet 16", Byte, November 1977, page 218

// Package misc holds 8-bit generators that are not XorShift based but share
// the same interface as package xorshift.
package misc

import "github.com/fysac/xorrand/seed"

const defaultMult13P1 uint8 = 0xDE

// Mult13P1 is a weak 8-bit generator from 1977. Each step multiplies the
// state by 13 and adds 1, with the multiplication done as shifts.
//
// The +1 term keeps zero from being absorbing, so any seed is accepted.
type Mult13P1 struct {
	n uint8
}

func NewMult13P1(seed uint8) Mult13P1 { return Mult13P1{n: seed} }

// DefaultMult13P1 returns a Mult13P1 seeded with 0xDE.
func DefaultMult13P1() Mult13P1 { return Mult13P1{n: defaultMult13P1} }

func (g Mult13P1) Current() uint8 { return g.n }

func (g Mult13P1) State() uint8 { return g.n }

func (g *Mult13P1) Next() uint8 {
	g.n = mult13p1(g.n)
	return g.n
}

func (g Mult13P1) Peek() Mult13P1 { return Mult13P1{n: mult13p1(g.n)} }

func (g Mult13P1) MarshalBinary() ([]byte, error) {
	return []byte{g.n}, nil
}

func (g *Mult13P1) UnmarshalBinary(b []byte) error {
	var s [1]uint8
	if err := seed.DecodeLE(b, s[:]); err != nil {
		return err
	}
	g.n = s[0]
	return nil
}

func mult13p1(n uint8) uint8 {
	// 13*n = n + n*2^2 + n*2^3
	return n + n<<2 + n<<3 + 1
}
