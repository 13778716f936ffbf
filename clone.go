package smallvec

// Clone returns an independent copy of v. An inline vector is a plain
// value copy; a heap vector gets its own freshly allocated buffer,
// sharing no storage with the source. Elements themselves are copied by
// assignment.
func (v *Vec[A, E]) Clone() Vec[A, E] {
	if v.heap == nil {
		return *v
	}
	return Vec[A, E]{heap: v.heap.clone()}
}
