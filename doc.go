// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense row-major matrices with type-safe
// arithmetic operations.
//
// # Overview
//
// The package is a small, single-threaded computational core:
//   - Dense[T]: a row-major R×C matrix over any integer or float type
//   - Matrix[T]: the capability interface implemented by Dense
//   - Add, Sub, Multiply, GEMM, Scale, Transpose: pure operations
//
// # Basic Usage
//
//	import "github.com/born-ml/matrix"
//
//	func main() {
//	    a := matrix.FromSlice(2, 2, []int64{1, 2, 3, 4})
//	    b := matrix.Eye[int64](2)
//
//	    p := matrix.Multiply[int64](a, b)
//	    if p == nil {
//	        // dimension mismatch
//	    }
//	}
//
// # Error Handling
//
// Two channels, deliberately distinct:
//
// Index and size violations (GetElement/SetElement out of bounds,
// FillFrom with a wrong-length source, negative dimensions) are caller
// programming errors. They panic with an error matching ErrOutOfRange
// under errors.Is.
//
// Dimension-incompatible operands to Add, Sub, Multiply, or GEMM are a
// legitimate runtime outcome, not a bug: those functions return a nil
// result. Check for nil before using it.
//
// # Memory Model
//
// Every matrix exclusively owns a flat buffer of rows*cols elements,
// allocated once at construction. Constructors copy their input and
// operations allocate fresh results, so no two matrices alias storage.
// Data() exposes the buffer zero-copy for callers that want it.
//
// # Concurrency
//
// There is no internal synchronization. Distinct matrices may be used
// from distinct goroutines freely; sharing one matrix across
// goroutines requires external mutual exclusion if any of them writes.
package matrix
