package matrix

// Zeros creates a rows×cols matrix with every element at zero.
//
// Example:
//
//	m := matrix.Zeros[float32](3, 4)
func Zeros[T Element](rows, cols int) *Dense[T] {
	return NewDense[T](rows, cols)
}

// Full creates a rows×cols matrix with every element set to value.
//
// Example:
//
//	m := matrix.Full[float64](3, 3, 3.14)
func Full[T Element](rows, cols int, value T) *Dense[T] {
	m := NewDense[T](rows, cols)
	for i := range m.buf.data {
		m.buf.data[i] = value
	}
	return m
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	id := matrix.Eye[int64](3) // 3x3 identity matrix
func Eye[T Element](n int) *Dense[T] {
	m := NewDense[T](n, n)
	for i := 0; i < n; i++ {
		m.buf.set(m.offset(i, i), 1)
	}
	return m
}

// FromSlice creates a rows×cols matrix initialized from data in
// row-major order. The slice is copied, never retained.
// Panics with ErrOutOfRange if len(data) != rows*cols or if either
// dimension is negative.
//
// Example:
//
//	m := matrix.FromSlice(2, 2, []int64{1, 2, 3, 4})
func FromSlice[T Element](rows, cols int, data []T) *Dense[T] {
	m := NewDense[T](rows, cols)
	m.FillFrom(data)
	return m
}
