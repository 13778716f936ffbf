package smallvec

import "iter"

// Drain is a one-shot owned iterator over a consumed vector. It yields
// elements in insertion order, reports an exact remaining count at every
// step, and keeps reporting exhaustion once the bound is reached.
// Inline-backed and heap-backed drains are indistinguishable to the
// consumer.
type Drain[A, E any] struct {
	heap *heapBuf[E] // non-nil: yield from the buffer's own slots
	pos  int
	end  int
	arr  A
}

// Drain consumes v: the contents move to the returned iterator and v is
// reset to the empty inline state, reusable as a fresh vector.
func (v *Vec[A, E]) Drain() Drain[A, E] {
	d := Drain[A, E]{heap: v.heap, arr: v.arr, end: v.Len()}
	*v = Vec[A, E]{}
	return d
}

// Next takes ownership of the next element, leaving the zero value in its
// slot. ok is false once the bound captured at Drain time is reached, and
// stays false on every later call.
func (d *Drain[A, E]) Next() (item E, ok bool) {
	if d.pos >= d.end {
		var zero E
		return zero, false
	}
	if d.heap != nil {
		item = d.heap.take(d.pos)
	} else {
		slots := inlineSlots[A, E](&d.arr)
		item = slots[d.pos]
		var zero E
		slots[d.pos] = zero
	}
	d.pos++
	return item, true
}

// Remaining returns the exact number of elements not yet yielded.
func (d *Drain[A, E]) Remaining() int {
	return d.end - d.pos
}

// Seq adapts the drain to a stdlib iterator. The drain stays one-shot:
// ranging over the sequence advances the same cursor as Next, and an
// early break leaves the remainder available.
func (d *Drain[A, E]) Seq() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			item, ok := d.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
