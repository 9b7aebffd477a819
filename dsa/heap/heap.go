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

package heap

import "github.com/tshur/go-dsa/dsa"

// A Heap is a binary heap container ordered by a Comparator. The top of
// the heap is the element that orders first under the comparator. The
// zero value is not usable; construct with New, NewMin, NewMax, or
// From.
type Heap[T any] struct {
	data []T
	cmp  dsa.Comparator[T]
}

// New returns an empty heap ordered by cmp.
func New[T any](cmp dsa.Comparator[T]) *Heap[T] {
	return &Heap[T]{cmp: cmp}
}

// NewMin returns an empty min-heap over a naturally ordered type: Pop
// yields the smallest element first.
func NewMin[T dsa.Ordered]() *Heap[T] {
	return New(dsa.Natural[T]())
}

// NewMax returns an empty max-heap over a naturally ordered type: Pop
// yields the largest element first.
func NewMax[T dsa.Ordered]() *Heap[T] {
	return New(dsa.Descending[T]())
}

// From returns a heap seeded with values. The values are copied and
// arranged in O(n) time, cheaper than pushing them one at a time.
func From[T any](values []T, cmp dsa.Comparator[T]) *Heap[T] {
	h := &Heap[T]{
		data: append([]T(nil), values...),
		cmp:  cmp,
	}
	Heapify(h.data, h.cmp)
	return h
}

// Len returns the number of elements on the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Push adds value to the heap in O(log n) time.
func (h *Heap[T]) Push(value T) {
	h.data = append(h.data, value)
	SiftUp(h.data, len(h.data)-1, h.cmp)
}

// Pop removes and returns the top element in O(log n) time. The second
// return is false when the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	top := ExtractTop(h.data, len(h.data), h.cmp)
	h.data = h.data[:len(h.data)-1]
	return top, true
}

// Peek returns the top element without removing it. The second return
// is false when the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Contains reports whether some element of the heap compares equal to
// value under the heap's comparator. It scans all elements in O(n).
func (h *Heap[T]) Contains(value T) bool {
	for _, v := range h.data {
		if h.cmp(v, value) == 0 {
			return true
		}
	}
	return false
}

// Drain removes every element in priority order and returns them,
// leaving the heap empty.
func (h *Heap[T]) Drain() []T {
	out := make([]T, 0, len(h.data))
	for len(h.data) > 0 {
		top, _ := h.Pop()
		out = append(out, top)
	}
	return out
}
