package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueueEmpty tests the empty queue edge cases.
func TestQueueEmpty(t *testing.T) {
	q := New[int]()

	assert.Equal(t, 0, q.Len())
	_, ok := q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
	assert.Equal(t, "[]", q.String())
}

// TestQueueFIFO tests that elements leave in arrival order.
func TestQueueFIFO(t *testing.T) {
	q := New[int]()
	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 5, q.Len())

	for i := 1; i <= 5; i++ {
		peeked, ok := q.Peek()
		require.True(t, ok)
		assert.Equal(t, i, peeked)

		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	assert.Equal(t, 0, q.Len())
}

// TestQueueGrowth tests order across several buffer doublings.
func TestQueueGrowth(t *testing.T) {
	q := New[int]()
	for i := range 100 {
		q.Enqueue(i)
	}
	for i := range 100 {
		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, got)
	}
}

// TestQueueFrom tests construction from a slice.
func TestQueueFrom(t *testing.T) {
	q := From([]string{"a", "b", "c"})

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"a", "b", "c"}, q.Values())
	assert.Equal(t, "[a b c]", q.String())

	got, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "a", got)
}

// TestQueueContains tests membership scans.
func TestQueueContains(t *testing.T) {
	q := From([]int{1, 2, 3})

	assert.True(t, Contains(q, 1))
	assert.False(t, Contains(q, 4))

	q.Dequeue()
	assert.False(t, Contains(q, 1))
}
