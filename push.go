package smallvec

import "iter"

// Push appends item. With a free inline slot this is a plain store and a
// length increment, no allocation. At inline capacity it promotes to a
// heap buffer sized capacity+1 and then appends. In the heap state it
// delegates to the buffer's own append.
func (v *Vec[A, E]) Push(item E) {
	if v.heap == nil {
		c := InlineCap[A, E]()
		if int(v.n) < c {
			inlineSlots[A, E](&v.arr)[v.n] = item
			v.n++
			return
		}
		v.promote(c + 1)
	}
	v.heap.push(item)
}

// Append pushes each item in argument order.
func (v *Vec[A, E]) Append(items ...E) {
	for _, item := range items {
		v.Push(item)
	}
}

// Extend pushes every element produced by seq, in sequence order.
func (v *Vec[A, E]) Extend(seq iter.Seq[E]) {
	for item := range seq {
		v.Push(item)
	}
}
