package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshur/go-dsa/dsa"
)

func TestHeapEmpty(t *testing.T) {
	h := NewMin[int]()
	require.Equal(t, 0, h.Len())

	_, ok := h.Pop()
	assert.False(t, ok)
	_, ok = h.Peek()
	assert.False(t, ok)
}

func TestHeapPushPop(t *testing.T) {
	h := NewMin[int]()
	for _, v := range []int{5, 1, 3, 2, 4} {
		h.Push(v)
	}
	require.Equal(t, 5, h.Len())

	for _, want := range []int{1, 2, 3, 4, 5} {
		got, ok := h.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, h.Len())
}

func TestHeapMax(t *testing.T) {
	h := NewMax[int]()
	for _, v := range []int{5, 1, 3, 2, 4} {
		h.Push(v)
	}
	for _, want := range []int{5, 4, 3, 2, 1} {
		got, ok := h.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestHeapPeek(t *testing.T) {
	h := NewMin[string]()
	h.Push("banana")
	h.Push("apple")

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, "apple", top)
	assert.Equal(t, 2, h.Len(), "Peek must not remove the top")
}

func TestHeapFrom(t *testing.T) {
	values := []int{9, 4, 7, 1, 0, 8, 2}
	h := From(values, dsa.Natural[int]())
	require.Equal(t, len(values), h.Len())

	// The seed slice is copied, not aliased.
	values[0] = -100
	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 0, top)

	assert.Equal(t, []int{0, 1, 2, 4, 7, 8, 9}, h.Drain())
}

func TestHeapDrain(t *testing.T) {
	h := From([]int{3, 1, 2}, dsa.Natural[int]())
	assert.Equal(t, []int{1, 2, 3}, h.Drain())
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Drain())
}

func TestHeapContains(t *testing.T) {
	h := From([]int{4, 2, 6}, dsa.Natural[int]())
	assert.True(t, h.Contains(4))
	assert.True(t, h.Contains(6))
	assert.False(t, h.Contains(5))
}

func TestHeapWithDuplicates(t *testing.T) {
	h := From([]int{5, 5, 2, 1, 2, 1, 1}, dsa.Natural[int]())
	assert.Equal(t, []int{1, 1, 1, 2, 2, 5, 5}, h.Drain())
}

func TestHeapByKeyComparator(t *testing.T) {
	type job struct {
		name     string
		priority int
	}
	// Highest priority first.
	h := New(dsa.Reverse(dsa.By(func(j job) int { return j.priority })))
	h.Push(job{"low", 1})
	h.Push(job{"high", 9})
	h.Push(job{"mid", 5})

	got, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "high", got.name)
}

func TestHeapInterleaved(t *testing.T) {
	h := NewMin[int]()
	h.Push(10)
	h.Push(3)

	got, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, got)

	h.Push(1)
	h.Push(7)

	got, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, 7, got)

	assert.Equal(t, []int{10}, h.Drain())
}
