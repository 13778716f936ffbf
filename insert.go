package smallvec

import "fmt"

// Insert places item at index i, shifting the elements at i and above one
// position toward the end and preserving their relative order.
//
// i must satisfy 0 <= i <= Len. Anything else is a caller bug and panics,
// the same contract as slice indexing.
func (v *Vec[A, E]) Insert(i int, item E) {
	n := v.Len()
	if i < 0 || i > n {
		panic(fmt.Sprintf("smallvec: insert index %d out of range [0:%d]", i, n))
	}
	if v.heap == nil {
		c := InlineCap[A, E]()
		if n < c {
			slots := inlineSlots[A, E](&v.arr)
			copy(slots[i+1:n+1], slots[i:n])
			slots[i] = item
			v.n++
			return
		}
		v.promote(c + 1)
	}
	v.heap.insert(i, item)
}
