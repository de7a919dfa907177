// Package seed composes narrow seed words into wider generator state and
// back, always least-significant word first.
package seed

import "unsafe"

// Word is any fixed-width unsigned integer usable as generator state.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of W in bits.
func Bits[W Word]() uint {
	var w W
	return uint(unsafe.Sizeof(w)) * 8
}

// Compose assembles parts into a single Wide value in little-endian order:
// parts[0] becomes the least significant word. Parts that do not fit are
// discarded.
func Compose[Wide, Narrow Word](parts ...Narrow) Wide {
	width := Bits[Narrow]()
	var w Wide
	for i, p := range parts {
		w |= Wide(p) << (uint(i) * width)
	}
	return w
}

// Split is the inverse of Compose. It fills dst with the words of w,
// least significant first.
func Split[Wide, Narrow Word](w Wide, dst []Narrow) {
	width := Bits[Narrow]()
	for i := range dst {
		dst[i] = Narrow(w >> (uint(i) * width))
	}
}

// IsZero reports whether every word of s is zero.
func IsZero[W Word](s ...W) bool {
	var acc W
	for _, w := range s {
		acc |= w
	}
	return acc == 0
}
