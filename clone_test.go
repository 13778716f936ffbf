package smallvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneInline(t *testing.T) {
	v := FromSlice[[4]int]([]int{1, 2, 3})
	c := v.Clone()

	require.Nil(t, c.heap)
	require.Equal(t, []int{1, 2, 3}, c.Slice())

	v.Slice()[0] = 99
	require.Equal(t, []int{1, 2, 3}, c.Slice())
}

func TestCloneHeapIsIndependent(t *testing.T) {
	v := FromSlice[[2]int]([]int{1, 2, 3, 4})
	require.NotNil(t, v.heap)

	c := v.Clone()
	require.NotNil(t, c.heap)
	require.Equal(t, []int{1, 2, 3, 4}, c.Slice())

	// Separate buffers, not a shared handle.
	require.NotSame(t, v.heap, c.heap)
	require.NotSame(t, &v.Slice()[0], &c.Slice()[0])

	c.Slice()[0] = 99
	c.Push(5)
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}
