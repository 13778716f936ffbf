package smallvec

// Vec is a growable sequence that stores up to len(A) elements inline in
// its own value and promotes, once, to a heap buffer when that capacity
// is exceeded.
//
// A must be the array type [N]E; it carries the inline capacity (see
// CheckArray). The zero value is an empty vector ready for use.
//
// Vec is a plain value with exclusive-ownership semantics: it is not safe
// for concurrent use, and assigning a heap-state Vec aliases the heap
// buffer. Use Clone for an independent copy.
type Vec[A, E any] struct {
	heap *heapBuf[E] // non-nil is the heap-state discriminant
	n    uint16      // live count, inline state only
	arr  A           // inline slots; slots at index >= n hold the zero value
}

// Len returns the number of live elements.
func (v *Vec[A, E]) Len() int {
	if v.heap != nil {
		return v.heap.len()
	}
	return int(v.n)
}

// Slice returns a borrowed view of the live elements, in insertion order.
// The view is mutable and remains valid until the next mutating operation
// on v. Its length is the element count, never the capacity.
func (v *Vec[A, E]) Slice() []E {
	if v.heap != nil {
		return v.heap.items
	}
	return inlineSlots[A, E](&v.arr)[:v.n]
}

// promote switches v to the heap state: it allocates a buffer of at least
// the requested capacity, moves every inline element into it in order,
// and zeroes the vacated slots so the array keeps no references.
//
// Callers must be in the inline state.
func (v *Vec[A, E]) promote(capacity int) {
	live := int(v.n)
	if capacity < live+1 {
		capacity = live + 1
	}
	b := newHeapBuf[E](capacity)
	var zero E
	slots := inlineSlots[A, E](&v.arr)[:live]
	for i := range slots {
		b.push(slots[i])
		slots[i] = zero
	}
	v.heap = b
	v.n = 0
}
