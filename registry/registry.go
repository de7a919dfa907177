// Package registry names every generator in this module so that callers can
// pick one at runtime and drive it through a single interface.
package registry

import (
	"encoding"
	"fmt"
	"sort"

	"golang.org/x/crypto/blake2b"

	"github.com/fysac/xorrand/misc"
	"github.com/fysac/xorrand/rngcore"
	"github.com/fysac/xorrand/seed"
	"github.com/fysac/xorrand/xorshift"
)

// Source is the widened output of any generator.
type Source interface {
	Uint32() uint32
	Uint64() uint64
	FillBytes(dst []byte)
	Read(p []byte) (int, error)
}

// Instance is a live generator of a known Kind.
type Instance struct {
	Source
	Kind  *Kind
	state encoding.BinaryMarshaler
}

// MarshalBinary returns the raw little-endian state of the generator.
func (in *Instance) MarshalBinary() ([]byte, error) {
	return in.state.MarshalBinary()
}

// Kind describes one generator type.
type Kind struct {
	Name string
	// Size in bytes of the raw state and of a byte seed.
	StateSize int
	// Width in bits of one native output.
	OutputBits int
	// ZeroSeedAllowed is false for generators whose all-zero state is absorbing.
	ZeroSeedAllowed bool

	fromSeed func(b []byte) *Instance
	restore  func(b []byte) (*Instance, error)
	def      func() *Instance
}

// New returns a generator seeded from b, which must be exactly StateSize
// bytes. A seed that decodes to a forbidden zero state selects the default seed.
func (k *Kind) New(b []byte) (*Instance, error) {
	if len(b) != k.StateSize {
		return nil, fmt.Errorf("%s: seed is %d bytes, want %d", k.Name, len(b), k.StateSize)
	}
	return k.fromSeed(b), nil
}

// FromPhrase derives a StateSize byte seed from phrase with BLAKE2b.
func (k *Kind) FromPhrase(phrase string) (*Instance, error) {
	h, err := blake2b.New(k.StateSize, nil)
	if err != nil {
		return nil, err
	}
	h.Write([]byte(phrase))
	return k.New(h.Sum(nil))
}

// Restore rebuilds a generator from raw state previously returned by
// Instance.MarshalBinary. Unlike New, a forbidden zero state is an error.
func (k *Kind) Restore(state []byte) (*Instance, error) {
	in, err := k.restore(state)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", k.Name, err)
	}
	return in, nil
}

// Default returns a generator with the type's documented default seed.
func (k *Kind) Default() *Instance { return k.def() }

type generator[T seed.Word, G any] interface {
	*G
	rngcore.Stepper[T]
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

func define[T seed.Word, G any, P generator[T, G]](k *Kind, fromSeed func([]byte) G, def func() G) *Kind {
	k.OutputBits = int(seed.Bits[T]())
	wrap := func(g G) *Instance {
		p := P(&g)
		return &Instance{Source: rngcore.New[T](p), Kind: k, state: p}
	}
	k.fromSeed = func(b []byte) *Instance { return wrap(fromSeed(b)) }
	k.def = func() *Instance { return wrap(def()) }
	k.restore = func(b []byte) (*Instance, error) {
		var g G
		if err := P(&g).UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return wrap(g), nil
	}
	return k
}

var kinds = map[string]*Kind{
	"xorshift8": define[uint8](&Kind{Name: "xorshift8", StateSize: 1},
		func(b []byte) xorshift.XorShift8 { return rngcore.XorShift8FromSeed([1]byte(b)) },
		xorshift.Default8),
	"xorshift8gen": define[uint8](&Kind{Name: "xorshift8gen", StateSize: 1},
		func(b []byte) xorshift.XorShift8Gen {
			return rngcore.XorShift8GenFromSeed(xorshift.DefaultShifts8, [1]byte(b))
		},
		xorshift.DefaultGen8),
	"xorshift16": define[uint16](&Kind{Name: "xorshift16", StateSize: 2},
		func(b []byte) xorshift.XorShift16 { return rngcore.XorShift16FromSeed([2]byte(b)) },
		xorshift.Default16),
	"xorshift32": define[uint32](&Kind{Name: "xorshift32", StateSize: 4},
		func(b []byte) xorshift.XorShift32 { return rngcore.XorShift32FromSeed([4]byte(b)) },
		xorshift.Default32),
	"xorshift64": define[uint64](&Kind{Name: "xorshift64", StateSize: 8},
		func(b []byte) xorshift.XorShift64 { return rngcore.XorShift64FromSeed([8]byte(b)) },
		xorshift.Default64),
	"xorshift128": define[uint64](&Kind{Name: "xorshift128", StateSize: 16},
		func(b []byte) xorshift.XorShift128 { return rngcore.XorShift128FromSeed([16]byte(b)) },
		xorshift.Default128),
	"xorshift128p": define[uint64](&Kind{Name: "xorshift128p", StateSize: 16},
		func(b []byte) xorshift.XorShift128p { return rngcore.XorShift128pFromSeed([16]byte(b)) },
		xorshift.Default128p),
	"xyza8a": define[uint8](&Kind{Name: "xyza8a", StateSize: 4, ZeroSeedAllowed: true},
		func(b []byte) xorshift.Xyza8a { return rngcore.Xyza8aFromSeed([4]byte(b)) },
		xorshift.DefaultXyza8a),
	"xyza8b": define[uint8](&Kind{Name: "xyza8b", StateSize: 4, ZeroSeedAllowed: true},
		func(b []byte) xorshift.Xyza8b { return rngcore.Xyza8bFromSeed([4]byte(b)) },
		xorshift.DefaultXyza8b),
	"mult13p1": define[uint8](&Kind{Name: "mult13p1", StateSize: 1, ZeroSeedAllowed: true},
		func(b []byte) misc.Mult13P1 { return rngcore.Mult13P1FromSeed([1]byte(b)) },
		misc.DefaultMult13P1),
	"xabc": define[uint8](&Kind{Name: "xabc", StateSize: 4, ZeroSeedAllowed: true},
		func(b []byte) misc.Xabc { return rngcore.XabcFromSeed([4]byte(b)) },
		misc.DefaultXabc),
}

// Lookup returns the Kind called name.
func Lookup(name string) (*Kind, error) {
	k, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q", name)
	}
	return k, nil
}

// Kinds returns every registered Kind sorted by name.
func Kinds() []*Kind {
	list := make([]*Kind, 0, len(kinds))
	for name, k := range kinds {
		// Sanity check
		if name != k.Name {
			panic(fmt.Errorf("key %v is not equal to Name %v", name, k.Name))
		}
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
