// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/matrix"
)

func TestPublicRoundTrip(t *testing.T) {
	m := matrix.NewDense[float32](2, 3)
	m.SetElement(1, 2, 4.5)

	assert.Equal(t, 2, m.RowCount())
	assert.Equal(t, 3, m.ColumnCount())
	assert.Equal(t, float32(4.5), m.GetElement(1, 2))
}

func TestPublicOutOfRange(t *testing.T) {
	m := matrix.NewDense[float32](2, 3)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %v", r)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	}()
	m.GetElement(2, 0)
}

func TestPublicGEMM(t *testing.T) {
	a := matrix.FromSlice(2, 2, []int64{1, 2, 3, 4})
	b := matrix.Eye[int64](2)
	c := matrix.Full(2, 2, int64(1))

	got := matrix.GEMM[int64](a, b, c)
	require.NotNil(t, got)
	assert.Equal(t, []int64{2, 3, 4, 5}, got.Data())
}

func TestPublicNilResults(t *testing.T) {
	a := matrix.NewDense[int64](2, 3)
	b := matrix.NewDense[int64](2, 3)

	assert.Nil(t, matrix.Multiply[int64](a, b))
	assert.Nil(t, matrix.Add[int64](a, matrix.NewDense[int64](3, 2)))
}

// The operations layer works against the Matrix interface, so a
// caller-supplied implementation composes with Dense.
type constant struct {
	rows, cols int
	v          int64
}

func (c *constant) RowCount() int                { return c.rows }
func (c *constant) ColumnCount() int             { return c.cols }
func (c *constant) GetElement(_, _ int) int64    { return c.v }
func (c *constant) SetElement(_, _ int, _ int64) {}
func (c *constant) FillFrom(_ []int64)           {}

func TestPublicInterfaceBoundary(t *testing.T) {
	var _ matrix.Matrix[int64] = (*constant)(nil)

	a := matrix.FromSlice(2, 2, []int64{1, 2, 3, 4})
	ones := &constant{rows: 2, cols: 2, v: 1}

	sum := matrix.Add[int64](a, ones)
	require.NotNil(t, sum)
	assert.Equal(t, []int64{2, 3, 4, 5}, sum.Data())
}

func TestPublicFillFrom(t *testing.T) {
	m := matrix.NewDense[int32](2, 2)
	m.FillFrom([]int32{1, 2, 3, 4})
	assert.Equal(t, int32(3), m.GetElement(1, 0))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, matrix.ErrOutOfRange))
	}()
	m.FillFrom([]int32{1, 2})
}
