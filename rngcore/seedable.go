package rngcore

import (
	"github.com/fysac/xorrand/misc"
	"github.com/fysac/xorrand/seed"
	"github.com/fysac/xorrand/xorshift"
)

// The FromSeed constructors build a generator from a byte seed exactly as wide
// as its state, decoded little-endian. Unlike the checked constructors they
// never fail: a seed that decodes to a forbidden all-zero state is replaced by
// the generator's default seed.

func XorShift8FromSeed(b [1]byte) xorshift.XorShift8 {
	if g, ok := xorshift.New8(b[0]); ok {
		return g
	}
	return xorshift.Default8()
}

func XorShift8GenFromSeed(shifts xorshift.Shifts8, b [1]byte) xorshift.XorShift8Gen {
	if g, ok := xorshift.NewGen8(shifts, b[0]); ok {
		return g
	}
	def := xorshift.DefaultGen8()
	return xorshift.NewGen8Unchecked(shifts, def.State())
}

func XorShift16FromSeed(b [2]byte) xorshift.XorShift16 {
	if g, ok := xorshift.New16From8(b); ok {
		return g
	}
	return xorshift.Default16()
}

func XorShift32FromSeed(b [4]byte) xorshift.XorShift32 {
	if g, ok := xorshift.New32From8(b); ok {
		return g
	}
	return xorshift.Default32()
}

func XorShift64FromSeed(b [8]byte) xorshift.XorShift64 {
	if g, ok := xorshift.New64From8(b); ok {
		return g
	}
	return xorshift.Default64()
}

func XorShift128FromSeed(b [16]byte) xorshift.XorShift128 {
	if g, ok := xorshift.New128From8(b); ok {
		return g
	}
	return xorshift.Default128()
}

func XorShift128pFromSeed(b [16]byte) xorshift.XorShift128p {
	if g, ok := xorshift.New128pFrom8(b); ok {
		return g
	}
	return xorshift.Default128p()
}

// Xyza8aFromSeed accepts any seed, zero included.
func Xyza8aFromSeed(b [4]byte) xorshift.Xyza8a {
	return xorshift.NewXyza8a(b)
}

func Xyza8bFromSeed(b [4]byte) xorshift.Xyza8b {
	return xorshift.NewXyza8b(b)
}

func Mult13P1FromSeed(b [1]byte) misc.Mult13P1 {
	return misc.NewMult13P1(b[0])
}

func XabcFromSeed(b [4]byte) misc.Xabc {
	return misc.NewXabc(b)
}

// SeedFromUint64 expands v into a seed of n bytes, little-endian, for callers
// that only have a single integer at hand. Bytes beyond the eighth repeat v.
func SeedFromUint64(v uint64, n int) []byte {
	b := make([]byte, 0, n)
	for len(b) < n {
		b = seed.AppendLE(b, v)
	}
	return b[:n]
}
