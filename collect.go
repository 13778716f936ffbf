package smallvec

import "iter"

// FromArray wraps a full array: the result holds all len(A) elements, in
// the inline state, even when len(A) is 0.
//
// An array wider than MaxInlineLen cannot be represented by the inline
// length field, so it promotes to the heap immediately instead.
func FromArray[A, E any](arr A) Vec[A, E] {
	v := Vec[A, E]{arr: arr}
	n := arrayLen[A, E]()
	if n <= MaxInlineLen {
		v.n = uint16(n)
		return v
	}
	b := newHeapBuf[E](n)
	var zero E
	slots := inlineSlots[A, E](&v.arr)
	for i := range slots {
		b.push(slots[i])
		slots[i] = zero
	}
	v.heap = b
	return v
}

// FromSlice builds a vector from a copy of items. The count is known up
// front, so a slice longer than the inline capacity drains straight into
// a heap buffer sized to it, never touching the inline array.
func FromSlice[A, E any](items []E) Vec[A, E] {
	var v Vec[A, E]
	c := InlineCap[A, E]()
	if len(items) > c {
		b := newHeapBuf[E](len(items))
		b.items = b.items[:len(items)]
		copy(b.items, items)
		v.heap = b
		return v
	}
	copy(inlineSlots[A, E](&v.arr), items)
	v.n = uint16(len(items))
	return v
}

// Collect drains seq into a new vector. Elements fill the inline array
// first; if the sequence is still producing when the inline capacity is
// reached, the vector promotes and the remainder drains into the heap
// buffer.
func Collect[A, E any](seq iter.Seq[E]) Vec[A, E] {
	return CollectSize[A, E](seq, 0)
}

// CollectSize is Collect with a best-effort upper bound on the sequence
// length. A bound greater than the inline capacity skips the inline fill
// entirely and drains straight into a heap buffer sized to the bound. A
// bound of zero means unknown. The bound is a sizing hint only, never a
// limit: a sequence that outruns it still collects completely.
func CollectSize[A, E any](seq iter.Seq[E], upper int) Vec[A, E] {
	var v Vec[A, E]
	c := InlineCap[A, E]()
	if upper > c {
		b := newHeapBuf[E](upper)
		for item := range seq {
			b.push(item)
		}
		v.heap = b
		return v
	}
	slots := inlineSlots[A, E](&v.arr)
	for item := range seq {
		if v.heap != nil {
			v.heap.push(item)
			continue
		}
		if int(v.n) == c {
			// The hint said inline would fit and was wrong, or there was
			// no hint. Size for what the hint still promises, floor +1.
			remaining := upper - c
			if remaining < 1 {
				remaining = 1
			}
			v.promote(c + remaining)
			v.heap.push(item)
			continue
		}
		slots[v.n] = item
		v.n++
	}
	return v
}
