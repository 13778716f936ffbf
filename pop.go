package smallvec

// Pop removes and returns the last element. ok is false on an empty
// vector; that is the expected empty signal, not a failure.
//
// Popping never demotes a heap-state vector back to the inline state,
// even when the remaining elements would fit. The promotion is one-way.
func (v *Vec[A, E]) Pop() (item E, ok bool) {
	if v.heap != nil {
		return v.heap.pop()
	}
	if v.n == 0 {
		var zero E
		return zero, false
	}
	v.n--
	slots := inlineSlots[A, E](&v.arr)
	item = slots[v.n]
	var zero E
	slots[v.n] = zero
	return item, true
}
