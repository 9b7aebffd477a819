package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshur/go-dsa/dsa"
)

// TestPriorityEmpty tests the empty priority queue edge cases.
func TestPriorityEmpty(t *testing.T) {
	pq := NewPriority[int]()

	assert.Equal(t, 0, pq.Len())
	_, ok := pq.Dequeue()
	assert.False(t, ok)
	_, ok = pq.Peek()
	assert.False(t, ok)
	assert.Empty(t, pq.Drain())
}

// TestPriorityLargestFirst tests the natural ordering, largest served
// first regardless of arrival order.
func TestPriorityLargestFirst(t *testing.T) {
	pq := NewPriority[int]()
	for _, v := range []int{5, 1, 3, 2, 4} {
		pq.Enqueue(v)
	}
	require.Equal(t, 5, pq.Len())

	for _, want := range []int{5, 4, 3, 2, 1} {
		peeked, ok := pq.Peek()
		require.True(t, ok)
		assert.Equal(t, want, peeked)

		got, ok := pq.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, pq.Len())
}

// TestPriorityCustomOrder tests that the comparator flips the service
// order.
func TestPriorityCustomOrder(t *testing.T) {
	pq := NewPriorityFunc(dsa.Descending[int]())
	for _, v := range []int{5, 1, 3} {
		pq.Enqueue(v)
	}

	assert.Equal(t, []int{1, 3, 5}, pq.Drain())
}

// TestPriorityFrom tests bulk construction and Drain.
func TestPriorityFrom(t *testing.T) {
	values := []int{5, 1, 3, 2, 4}
	pq := PriorityFrom(values, dsa.Compare[int])

	assert.Equal(t, []int{5, 4, 3, 2, 1}, pq.Drain())
	assert.Equal(t, 0, pq.Len())
	assert.Equal(t, []int{5, 1, 3, 2, 4}, values)
}

// TestPriorityDuplicates tests that equal elements are each served.
func TestPriorityDuplicates(t *testing.T) {
	pq := PriorityFrom([]int{3, 1, 3, 3, 1}, dsa.Compare[int])

	assert.Equal(t, []int{3, 3, 3, 1, 1}, pq.Drain())
}

// TestPriorityByKey tests ordering on a projected field.
func TestPriorityByKey(t *testing.T) {
	type task struct {
		name     string
		priority int
	}
	pq := NewPriorityFunc(dsa.By(func(t task) int { return t.priority }))
	pq.Enqueue(task{"low", 1})
	pq.Enqueue(task{"high", 9})
	pq.Enqueue(task{"mid", 5})

	got, ok := pq.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "high", got.name)
	got, ok = pq.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "mid", got.name)
}

// TestPriorityContains tests comparator-equality membership.
func TestPriorityContains(t *testing.T) {
	pq := PriorityFrom([]int{4, 8, 15}, dsa.Compare[int])

	assert.True(t, pq.Contains(8))
	assert.False(t, pq.Contains(16))
}
