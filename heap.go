package smallvec

// heapBuf is the heap-state element store: a single-pointer handle over a
// Go slice, so a heap-state Vec header stays one machine word plus the
// inline fields. Growth is delegated to append; the container does not
// carry an amortized growth strategy of its own.
type heapBuf[E any] struct {
	items []E
}

func newHeapBuf[E any](capacity int) *heapBuf[E] {
	return &heapBuf[E]{items: make([]E, 0, capacity)}
}

func (b *heapBuf[E]) len() int { return len(b.items) }

func (b *heapBuf[E]) push(item E) {
	b.items = append(b.items, item)
}

func (b *heapBuf[E]) pop() (E, bool) {
	var zero E
	i := len(b.items) - 1
	if i < 0 {
		return zero, false
	}
	item := b.items[i]
	// Drop the slot's reference before shrinking.
	b.items[i] = zero
	b.items = b.items[:i]
	return item, true
}

func (b *heapBuf[E]) insert(i int, item E) {
	var zero E
	b.items = append(b.items, zero)
	copy(b.items[i+1:], b.items[i:])
	b.items[i] = item
}

// take moves the element at i out of the buffer without shifting. Used by
// the drain iterator, which owns the buffer and visits each slot once.
func (b *heapBuf[E]) take(i int) E {
	var zero E
	item := b.items[i]
	b.items[i] = zero
	return item
}

func (b *heapBuf[E]) clone() *heapBuf[E] {
	out := newHeapBuf[E](len(b.items))
	out.items = out.items[:len(b.items)]
	copy(out.items, b.items)
	return out
}
