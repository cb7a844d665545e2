// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	internal "github.com/born-ml/matrix/internal/matrix"
)

// Type aliases for the public API.

// Element is a constraint for supported matrix element types:
// any integer or floating-point type.
type Element = internal.Element

// Matrix is the capability set shared by all matrix layouts.
// Dense is the only implementation today.
type Matrix[T Element] = internal.Matrix[T]

// Dense is a row-major matrix with a single contiguous buffer.
//
// Example:
//
//	m := matrix.NewDense[float32](2, 3)
//	m.SetElement(0, 1, 42)
//	v := m.GetElement(0, 1)
type Dense[T Element] = internal.Dense[T]

// ErrOutOfRange is the sentinel carried by panics from index and size
// validation failures. Match with errors.Is.
var ErrOutOfRange = internal.ErrOutOfRange

// Creation functions

// NewDense creates a rows×cols matrix with every element at the zero
// value of T. Panics with ErrOutOfRange on negative dimensions.
func NewDense[T Element](rows, cols int) *Dense[T] {
	return internal.NewDense[T](rows, cols)
}

// Zeros creates a rows×cols matrix with every element at zero.
func Zeros[T Element](rows, cols int) *Dense[T] {
	return internal.Zeros[T](rows, cols)
}

// Full creates a rows×cols matrix with every element set to value.
func Full[T Element](rows, cols int, value T) *Dense[T] {
	return internal.Full(rows, cols, value)
}

// Eye creates an n×n identity matrix.
func Eye[T Element](n int) *Dense[T] {
	return internal.Eye[T](n)
}

// FromSlice creates a rows×cols matrix initialized from data in
// row-major order. The slice is copied, never retained.
// Panics with ErrOutOfRange if len(data) != rows*cols.
func FromSlice[T Element](rows, cols int, data []T) *Dense[T] {
	return internal.FromSlice(rows, cols, data)
}

// Operations

// Add returns the elementwise sum of a and b as a new matrix, or nil
// when the dimensions differ.
func Add[T Element](a, b Matrix[T]) *Dense[T] {
	return internal.Add(a, b)
}

// Sub returns the elementwise difference a - b as a new matrix, or nil
// when the dimensions differ.
func Sub[T Element](a, b Matrix[T]) *Dense[T] {
	return internal.Sub(a, b)
}

// Multiply returns the matrix product a @ b as a new matrix, or nil
// when a.ColumnCount() != b.RowCount(). The running sum accumulates in
// T itself; see the internal documentation for the overflow policy.
func Multiply[T Element](a, b Matrix[T]) *Dense[T] {
	return internal.Multiply(a, b)
}

// GEMM computes the fused multiply-add a @ b + c as a new matrix, or
// nil when either stage is dimension-incompatible.
func GEMM[T Element](a, b, c Matrix[T]) *Dense[T] {
	return internal.GEMM(a, b, c)
}

// Scale returns a new matrix with every element of a multiplied by k.
func Scale[T Element](a Matrix[T], k T) *Dense[T] {
	return internal.Scale(a, k)
}

// Transpose returns a new matrix with rows and columns swapped.
func Transpose[T Element](a Matrix[T]) *Dense[T] {
	return internal.Transpose(a)
}
