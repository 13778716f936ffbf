package smallvec

import (
	"reflect"
	"unsafe"
)

// This file is the only place that reasons about raw layout. Everything
// else manipulates the inline array through the []E views produced here.

// arrayLen returns len(A) for A = [N]E.
//
// For non-zero-sized elements this is a compile-time constant size ratio.
// Zero-sized element types defeat the ratio, so they take the reflect
// path instead.
func arrayLen[A, E any]() int {
	var a A
	var e E
	if unsafe.Sizeof(e) == 0 {
		return reflect.TypeFor[A]().Len()
	}
	return int(unsafe.Sizeof(a) / unsafe.Sizeof(e))
}

// inlineSlots reinterprets the inline array as a full-capacity element
// slice. Sound only under the CheckArray contract: A is [N]E.
func inlineSlots[A, E any](arr *A) []E {
	return unsafe.Slice((*E)(unsafe.Pointer(arr)), arrayLen[A, E]())
}

// InlineCap returns the effective inline capacity of Vec[A, E]:
// min(len(A), MaxInlineLen).
func InlineCap[A, E any]() int {
	n := arrayLen[A, E]()
	if n > MaxInlineLen {
		return MaxInlineLen
	}
	return n
}

// CheckArray verifies that A is an array type with element type E. The
// Vec hot paths assume this pairing and do not re-check it; call
// CheckArray once per instantiation, in tests or at startup.
func CheckArray[A, E any]() error {
	ta := reflect.TypeFor[A]()
	if ta.Kind() != reflect.Array {
		return ErrNotArray
	}
	if ta.Elem() != reflect.TypeFor[E]() {
		return ErrElemMismatch
	}
	return nil
}
