// Copyright 2025 go-dsa Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package queue provides first-in-first-out and priority ordering on
// top of the module's other containers.
//
// Queue is a plain FIFO queue and Deque a double-ended one, both backed
// by the same ring buffer with O(1) operations at either end.
// PriorityQueue serves elements by comparator order instead of arrival
// order and is backed by a heap.
package queue

import "fmt"

// A Queue is a first-in-first-out queue. Enqueue, Dequeue, and Peek run
// in O(1), enqueues amortized over the ring buffer growth. The zero
// value is an empty queue ready to use.
type Queue[T any] struct {
	deque Deque[T]
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// From returns a queue holding values, first value at the front.
func From[T any](values []T) *Queue[T] {
	q := New[T]()
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.deque.Len()
}

// Enqueue appends value at the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	q.deque.PushBack(value)
}

// Dequeue removes and returns the front element. The second return is
// false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.deque.PopFront()
}

// Peek returns the front element without removing it. The second return
// is false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	return q.deque.Front()
}

// Values returns the elements front to back. The queue is unchanged.
func (q *Queue[T]) Values() []T {
	return q.deque.Values()
}

// String renders the queue like a slice, front at the left end.
func (q *Queue[T]) String() string {
	return fmt.Sprint(q.Values())
}

// Contains reports whether the queue holds value. It scans in O(n).
func Contains[T comparable](q *Queue[T], value T) bool {
	return DequeContains(&q.deque, value)
}
