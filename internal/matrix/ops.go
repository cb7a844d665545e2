package matrix

// The operations in this file are pure: they read their inputs through
// the Matrix accessors, write into a freshly allocated Dense result,
// and never mutate an operand. Dimension mismatches yield a nil result
// rather than a panic — callers check for nil before using the result.

// Add returns the elementwise sum of a and b as a new matrix.
// Returns nil when the dimensions differ. Inputs must be non-nil.
func Add[T Element](a, b Matrix[T]) *Dense[T] {
	rows, cols := a.RowCount(), a.ColumnCount()
	if rows != b.RowCount() || cols != b.ColumnCount() {
		return nil
	}
	out := NewDense[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.SetElement(i, j, a.GetElement(i, j)+b.GetElement(i, j))
		}
	}
	return out
}

// Sub returns the elementwise difference a - b as a new matrix.
// Returns nil when the dimensions differ.
func Sub[T Element](a, b Matrix[T]) *Dense[T] {
	rows, cols := a.RowCount(), a.ColumnCount()
	if rows != b.RowCount() || cols != b.ColumnCount() {
		return nil
	}
	out := NewDense[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.SetElement(i, j, a.GetElement(i, j)-b.GetElement(i, j))
		}
	}
	return out
}

// Multiply returns the matrix product a @ b as a new matrix:
// out(i,j) = sum over k of a(i,k)*b(k,j), with dimensions
// (M, K) @ (K, N) -> (M, N). Returns nil when a.ColumnCount() !=
// b.RowCount().
//
// The running sum accumulates in T itself — the element type's own
// arithmetic domain, with no widening or narrowing. Integer element
// types overflow with Go's usual wraparound semantics; callers needing
// headroom pick a wider element type up front.
func Multiply[T Element](a, b Matrix[T]) *Dense[T] {
	m, k := a.RowCount(), a.ColumnCount()
	n := b.ColumnCount()
	if k != b.RowCount() {
		return nil
	}
	out := NewDense[T](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kk := 0; kk < k; kk++ {
				sum += a.GetElement(i, kk) * b.GetElement(kk, j)
			}
			out.SetElement(i, j, sum)
		}
	}
	return out
}

// GEMM computes the fused multiply-add a @ b + c as a new matrix.
// Returns nil when either stage is inapplicable: a @ b dimension
// mismatch, or a product whose shape differs from c. A nil from
// Multiply propagates straight through without panicking.
func GEMM[T Element](a, b, c Matrix[T]) *Dense[T] {
	prod := Multiply(a, b)
	if prod == nil {
		return nil
	}
	return Add[T](prod, c)
}

// Scale returns a new matrix with every element of a multiplied by k.
func Scale[T Element](a Matrix[T], k T) *Dense[T] {
	rows, cols := a.RowCount(), a.ColumnCount()
	out := NewDense[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.SetElement(i, j, a.GetElement(i, j)*k)
		}
	}
	return out
}

// Transpose returns a new matrix with rows and columns swapped:
// out(j,i) = a(i,j). Always applicable.
func Transpose[T Element](a Matrix[T]) *Dense[T] {
	rows, cols := a.RowCount(), a.ColumnCount()
	out := NewDense[T](cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.SetElement(j, i, a.GetElement(i, j))
		}
	}
	return out
}
