package matrix

// Matrix is the capability set shared by all matrix layouts.
//
// Dense is the only implementation today. The interface keeps the
// operations layer independent of storage order, so an alternative
// layout (column-major, say) can slot in later without touching Add,
// Multiply, or GEMM.
type Matrix[T Element] interface {
	// RowCount returns the number of rows.
	RowCount() int

	// ColumnCount returns the number of columns.
	ColumnCount() int

	// GetElement returns the element at row i, column j.
	// Panics with ErrOutOfRange if either index is out of bounds.
	GetElement(i, j int) T

	// SetElement writes v at row i, column j.
	// Panics with ErrOutOfRange if either index is out of bounds.
	SetElement(i, j int, v T)

	// FillFrom overwrites the matrix contents from src, assigned in
	// row-major order: src[i*cols+j] becomes element (i, j).
	// Panics with ErrOutOfRange if len(src) != RowCount()*ColumnCount();
	// the size check happens before any element is written.
	FillFrom(src []T)
}
