package smallvec

import "errors"

// MaxInlineLen is the largest element count representable by the inline
// length field. The effective inline capacity of Vec[A, E] is
// min(len(A), MaxInlineLen); arrays wider than that promote to the heap
// before the length field would overflow.
const MaxInlineLen = 1<<16 - 1

var (
	ErrNotArray     = errors.New("smallvec: A is not an array type")
	ErrElemMismatch = errors.New("smallvec: A is not an array of E")
)
