package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeros(t *testing.T) {
	m := Zeros[float64](2, 3)
	for _, v := range m.Data() {
		assert.Zero(t, v)
	}
}

func TestFull(t *testing.T) {
	m := Full(2, 3, int32(7))
	for _, v := range m.Data() {
		assert.Equal(t, int32(7), v)
	}
}

func TestEye(t *testing.T) {
	m := Eye[int64](3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, int64(1), m.GetElement(i, j))
			} else {
				assert.Equal(t, int64(0), m.GetElement(i, j))
			}
		}
	}
}

func TestFromSliceCopies(t *testing.T) {
	src := []int64{1, 2, 3, 4}
	m := FromSlice(2, 2, src)

	// Mutating the source afterwards must not leak into the matrix.
	src[0] = 99
	assert.Equal(t, int64(1), m.GetElement(0, 0))
}

func TestFromSliceSizeMismatch(t *testing.T) {
	mustPanicOutOfRange(t, func() { FromSlice(2, 2, []int64{1, 2, 3}) })
}
