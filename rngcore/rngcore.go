// Package rngcore widens the native output of the generators in this module
// to 32 and 64 bits, fills byte buffers, and plugs them into the standard
// library's random number interfaces (io.Reader and math/rand/v2.Source).
//
// Narrow outputs are always combined little-endian: the first output drawn
// supplies the least significant bits.
package rngcore

import (
	"io"
	"math/rand/v2"

	"github.com/fysac/xorrand/seed"
)

// Stepper is implemented by a pointer to any generator in this module.
type Stepper[T seed.Word] interface {
	Next() T
}

// Rng adapts a Stepper to wider outputs. It advances the wrapped generator in
// place and, like the generator, is not safe for concurrent use.
type Rng[T seed.Word] struct {
	g     Stepper[T]
	width uint // bytes per native output
}

var (
	_ io.Reader   = (*Rng[uint8])(nil)
	_ rand.Source = (*Rng[uint64])(nil)
)

// New returns an Rng drawing from g.
func New[T seed.Word](g Stepper[T]) *Rng[T] {
	return &Rng[T]{g: g, width: seed.Bits[T]() / 8}
}

// Stepper returns the wrapped generator.
func (r *Rng[T]) Stepper() Stepper[T] { return r.g }

// Uint32 returns 32 random bits. Generators with outputs of 32 bits or more
// contribute the low 32 bits of a single output.
func (r *Rng[T]) Uint32() uint32 {
	if r.width >= 4 {
		return uint32(r.g.Next())
	}
	var v uint32
	for shift := uint(0); shift < 32; shift += 8 * r.width {
		v |= uint32(r.g.Next()) << shift
	}
	return v
}

// Uint64 returns 64 random bits.
func (r *Rng[T]) Uint64() uint64 {
	if r.width == 8 {
		return uint64(r.g.Next())
	}
	var v uint64
	for shift := uint(0); shift < 64; shift += 8 * r.width {
		v |= uint64(r.g.Next()) << shift
	}
	return v
}

// FillBytes fills dst with the little-endian bytes of successive outputs.
// Bytes of the last output that do not fit are discarded.
func (r *Rng[T]) FillBytes(dst []byte) {
	for len(dst) > 0 {
		v := uint64(r.g.Next())
		n := copyLE(dst, v, r.width)
		dst = dst[n:]
	}
}

// Read fills p like FillBytes. It never returns an error.
func (r *Rng[T]) Read(p []byte) (int, error) {
	r.FillBytes(p)
	return len(p), nil
}

// Rand returns a math/rand/v2 generator drawing from r.
func (r *Rng[T]) Rand() *rand.Rand {
	return rand.New(r)
}

func copyLE(dst []byte, v uint64, width uint) int {
	n := int(width)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = byte(v >> (8 * uint(i)))
	}
	return n
}
