package queue

import (
	"github.com/tshur/go-dsa/dsa"
	"github.com/tshur/go-dsa/dsa/heap"
)

// A PriorityQueue serves elements by comparator order instead of
// arrival order: Dequeue returns the element that sorts last under the
// comparator, so under the natural ordering the largest value has the
// highest priority. Enqueue and Dequeue run in O(log n), Peek in O(1).
type PriorityQueue[T any] struct {
	heap *heap.Heap[T]
}

// NewPriority returns an empty priority queue on the natural ordering.
// The largest element is served first.
func NewPriority[T dsa.Ordered]() *PriorityQueue[T] {
	return NewPriorityFunc(dsa.Compare[T])
}

// NewPriorityFunc returns an empty priority queue ordered by cmp. The
// element that sorts last under cmp is served first.
func NewPriorityFunc[T any](cmp dsa.Comparator[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: heap.New(dsa.Reverse(cmp))}
}

// PriorityFrom returns a priority queue over values ordered by cmp. It
// heapifies in O(n) rather than enqueueing one element at a time.
func PriorityFrom[T any](values []T, cmp dsa.Comparator[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: heap.From(values, dsa.Reverse(cmp))}
}

// Len returns the number of elements in the queue.
func (pq *PriorityQueue[T]) Len() int {
	return pq.heap.Len()
}

// Enqueue inserts value at its comparator position.
func (pq *PriorityQueue[T]) Enqueue(value T) {
	pq.heap.Push(value)
}

// Dequeue removes and returns the highest-priority element. The second
// return is false when the queue is empty.
func (pq *PriorityQueue[T]) Dequeue() (T, bool) {
	return pq.heap.Pop()
}

// Peek returns the highest-priority element without removing it. The
// second return is false when the queue is empty.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	return pq.heap.Peek()
}

// Drain empties the queue, returning the elements in priority order.
func (pq *PriorityQueue[T]) Drain() []T {
	return pq.heap.Drain()
}

// Contains reports whether the queue holds an element comparing equal
// to value. It scans in O(n).
func (pq *PriorityQueue[T]) Contains(value T) bool {
	return pq.heap.Contains(value)
}
