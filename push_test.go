package smallvec

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPromotesAtCapacityOne(t *testing.T) {
	var v Vec[[1]uint32, uint32]
	require.Nil(t, v.heap)
	require.Equal(t, 0, v.Len())

	v.Push(1)
	require.Nil(t, v.heap)
	require.Equal(t, []uint32{1}, v.Slice())

	v.Push(2)
	require.NotNil(t, v.heap)
	require.Equal(t, []uint32{1, 2}, v.Slice())

	item, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(2), item)
	require.NotNil(t, v.heap)
	require.Equal(t, []uint32{1}, v.Slice())
}

func TestPushStaysInlineUpToCapacity(t *testing.T) {
	var v Vec[[4]string, string]
	for _, s := range []string{"a", "b", "c", "d"} {
		v.Push(s)
		require.Nil(t, v.heap)
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, v.Slice())

	v.Push("e")
	require.NotNil(t, v.heap)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, v.Slice())
}

func TestPushZeroCapacityGoesStraightToHeap(t *testing.T) {
	var v Vec[[0]uint32, uint32]
	v.Push(42)
	require.NotNil(t, v.heap)
	require.Equal(t, []uint32{42}, v.Slice())
}

func TestAppendVariadic(t *testing.T) {
	var v Vec[[4]byte, byte]
	v.Append(1, 2)
	require.Nil(t, v.heap)
	v.Append(3, 4, 5)
	require.NotNil(t, v.heap)
	require.Equal(t, []byte{1, 2, 3, 4, 5}, v.Slice())
}

func TestExtendSequenceOrder(t *testing.T) {
	var v Vec[[2]int, int]
	v.Push(0)
	v.Extend(slices.Values([]int{1, 2, 3}))
	require.Equal(t, []int{0, 1, 2, 3}, v.Slice())
	require.NotNil(t, v.heap)
}

// Promotion must move, not copy: the vacated inline slots may not pin the
// moved elements.
func TestPromoteZeroesInlineSlots(t *testing.T) {
	var v Vec[[2]string, string]
	v.Push("a")
	v.Push("b")
	v.Push("c")
	require.NotNil(t, v.heap)

	slots := inlineSlots[[2]string, string](&v.arr)
	require.Equal(t, []string{"", ""}, slots)
}
