package matrix

// buffer owns the flat backing storage for one matrix: a contiguous
// block of rows*cols elements in row-major order, allocated once and
// never resized. Elements start at the zero value of T.
//
// The buffer does no bounds checking; the layer above validates
// indices before touching storage.
type buffer[T Element] struct {
	data []T
}

// newBuffer allocates storage for n elements.
func newBuffer[T Element](n int) buffer[T] {
	return buffer[T]{data: make([]T, n)}
}

func (b buffer[T]) at(off int) T { return b.data[off] }

func (b buffer[T]) set(off int, v T) { b.data[off] = v }

func (b buffer[T]) size() int { return len(b.data) }
