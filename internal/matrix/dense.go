package matrix

import "fmt"

// Dense is a row-major matrix: element (i, j) lives at flat offset
// i*cols+j in a single contiguous buffer. Dimensions are fixed at
// construction and the buffer is never resized.
//
// A Dense exclusively owns its buffer. Constructors copy their input
// and Clone deep-copies, so no two matrices ever alias storage.
type Dense[T Element] struct {
	rows int
	cols int
	buf  buffer[T]
}

// Compile-time check that Dense implements Matrix.
var _ Matrix[float32] = (*Dense[float32])(nil)

// NewDense creates a rows×cols matrix with every element at the zero
// value of T. Panics with ErrOutOfRange if either dimension is
// negative; zero dimensions are fine and yield an empty matrix.
func NewDense[T Element](rows, cols int) *Dense[T] {
	if rows < 0 || cols < 0 {
		outOfRange("invalid dimensions %dx%d", rows, cols)
	}
	return &Dense[T]{
		rows: rows,
		cols: cols,
		buf:  newBuffer[T](rows * cols),
	}
}

// offset maps (i, j) to the flat row-major offset i*cols+j.
func (m *Dense[T]) offset(i, j int) int {
	return i*m.cols + j
}

func (m *Dense[T]) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		outOfRange("index (%d, %d) out of bounds for %dx%d matrix", i, j, m.rows, m.cols)
	}
}

// RowCount returns the number of rows.
func (m *Dense[T]) RowCount() int {
	return m.rows
}

// ColumnCount returns the number of columns.
func (m *Dense[T]) ColumnCount() int {
	return m.cols
}

// Dims returns the dimensions as (rows, cols).
func (m *Dense[T]) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// GetElement returns the element at row i, column j.
// Panics with ErrOutOfRange if either index is out of bounds.
func (m *Dense[T]) GetElement(i, j int) T {
	m.checkIndex(i, j)
	return m.buf.at(m.offset(i, j))
}

// SetElement writes v at row i, column j.
// Panics with ErrOutOfRange if either index is out of bounds.
func (m *Dense[T]) SetElement(i, j int, v T) {
	m.checkIndex(i, j)
	m.buf.set(m.offset(i, j), v)
}

// FillFrom overwrites the matrix contents from src in row-major order.
// Panics with ErrOutOfRange if len(src) != rows*cols; the size is
// checked before any element is written, so a failed fill leaves the
// contents untouched.
func (m *Dense[T]) FillFrom(src []T) {
	if len(src) != m.buf.size() {
		outOfRange("source length %d, want %d for %dx%d matrix", len(src), m.buf.size(), m.rows, m.cols)
	}
	copy(m.buf.data, src)
}

// Data returns the backing slice in row-major order.
// This is a zero-copy view: writes through it are visible in the
// matrix. Use with caution.
func (m *Dense[T]) Data() []T {
	return m.buf.data
}

// Clone returns a deep copy with its own buffer.
func (m *Dense[T]) Clone() *Dense[T] {
	out := NewDense[T](m.rows, m.cols)
	copy(out.buf.data, m.buf.data)
	return out
}

// Equal reports whether m and other have the same dimensions and
// element-for-element identical contents.
func (m *Dense[T]) Equal(other Matrix[T]) bool {
	if m.rows != other.RowCount() || m.cols != other.ColumnCount() {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.buf.at(m.offset(i, j)) != other.GetElement(i, j) {
				return false
			}
		}
	}
	return true
}

// String returns a human-readable representation of the matrix.
func (m *Dense[T]) String() string {
	return fmt.Sprintf("Dense[%dx%d]%v", m.rows, m.cols, m.buf.data)
}
