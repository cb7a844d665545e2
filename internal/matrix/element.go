// Package matrix provides the core dense matrix type and operations.
package matrix

import "golang.org/x/exp/constraints"

// Element is a constraint for supported matrix element types.
// Any integer or floating-point type works; there is no numeric
// promotion — all arithmetic stays in the element type itself.
type Element interface {
	constraints.Integer | constraints.Float
}
