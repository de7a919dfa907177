//go:build debug

package xorshift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUncheckedZeroPanics(t *testing.T) {
	assert.Panics(t, func() { New8Unchecked(0) })
	assert.Panics(t, func() { New32Unchecked(0) })
	assert.Panics(t, func() { New128Unchecked([4]uint32{}) })
	assert.Panics(t, func() { NewGen8Unchecked(DefaultShifts8, 0) })
	assert.Panics(t, func() { NewGen8(Shifts8{0, 4, 2}, 1) })
	assert.NotPanics(t, func() { New64Unchecked(1) })
}
