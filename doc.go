package smallvec

/*

# Small-buffer-optimized vectors

This package provides a growable sequence container that keeps short
sequences entirely inside its own value, with no heap allocation, and
switches to a single heap buffer only once that inline capacity is
exceeded.

It mirrors the `go-merklelog/mmr` style:

- small, composable operations
- explicit layout accounting
- a burden of knowledge on the caller for hot paths

## Representation

A Vec[A, E] is always in exactly one of two states:

	+--------+----+-----------------+
	| heap=nil| n  | arr (N slots)  |   inline: n live elements in arr
	+--------+----+-----------------+

	+--------+----+-----------------+
	| heap ---+----> []E            |   heap: all elements in the buffer
	+--------+----+-----------------+

There is no dedicated tag byte. The nil niche of the heap handle is the
discriminant: `heap == nil` means inline, anything else means heap. The
whole header is the handle plus a 16-bit length, so a Vec with a one-byte
inline array is 16 bytes on a 64-bit target, the same as a bare pointer
pair.

The inline capacity is carried by the array type parameter A, which must
be `[N]E`. Go has no value generics, so the array type stands in for the
capacity constant, and the storage engine reads it back from the type's
size (see sizing.go). CheckArray verifies the A/E pairing once per
instantiation; the hot paths assume it.

## Promotion

The inline -> heap transition is one-way. Any mutation that would exceed
the effective inline capacity (the smaller of N and MaxInlineLen) moves
every inline element into a freshly allocated heap buffer, in order, and
all later mutations delegate to that buffer. Popping a heap vector down
to zero elements does NOT return it to the inline state. That asymmetry
is deliberate: demotion would make mutation cost depend on history in a
way callers cannot reason about, and the original design rejects it.

Vacated inline slots are always overwritten with the zero value of E, so
an element moved out of the array leaves no stale reference behind for
the garbage collector to keep alive.

## Ownership

Vec is a plain value with single-owner semantics. It is not safe for
concurrent use. Assigning a heap-state Vec copies the handle, not the
buffer; use Clone when an independent copy is needed. Drain consumes the
vector: it hands the contents to a one-shot iterator and resets the
vector to the empty inline state.

*/
