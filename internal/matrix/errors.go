package matrix

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel for index and size validation failures:
// element indices outside the matrix bounds, a FillFrom source of the
// wrong length, or negative construction dimensions.
//
// It is delivered by panic, not by return value — these are caller
// programming errors, not recoverable outcomes. The panic value is an
// error that matches ErrOutOfRange under errors.Is.
var ErrOutOfRange = errors.New("matrix: out of range")

// outOfRange panics with an error wrapping ErrOutOfRange.
func outOfRange(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrOutOfRange}, args...)...))
}
