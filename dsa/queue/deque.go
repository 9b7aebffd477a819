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

package queue

import (
	"fmt"

	"github.com/tshur/go-dsa/dsa/algo"
)

// defaultCapacity is the ring buffer size a deque starts with.
const defaultCapacity = 16

// A Deque is a double-ended queue over a ring buffer: PushFront,
// PushBack, PopFront, and PopBack all run in O(1), pushes amortized
// over capacity doubling. The zero value is an empty deque ready to
// use.
//
// The buffer is addressed through a start index modulo its capacity, so
// the live elements may wrap around the physical end. Before the buffer
// grows it is normalized, rotating the start element back to index 0 so
// the live range is contiguous again.
type Deque[T any] struct {
	ring  []T
	start int
	size  int
}

// NewDeque returns an empty deque with the default capacity.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{ring: make([]T, defaultCapacity)}
}

// NewDequeWithCapacity returns an empty deque that can hold capacity
// elements before growing.
func NewDequeWithCapacity[T any](capacity int) *Deque[T] {
	capacity = max(capacity, 1)
	return &Deque[T]{ring: make([]T, capacity)}
}

// DequeFrom returns a deque holding values, first value at the front.
func DequeFrom[T any](values []T) *Deque[T] {
	d := NewDequeWithCapacity[T](max(len(values), defaultCapacity))
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// Cap returns the current ring buffer capacity.
func (d *Deque[T]) Cap() int {
	return len(d.ring)
}

// PushFront inserts value as the new front.
func (d *Deque[T]) PushFront(value T) {
	if d.size >= len(d.ring) {
		d.grow()
	}
	d.start = d.index(-1)
	d.ring[d.start] = value
	d.size++
}

// PushBack appends value as the new back.
func (d *Deque[T]) PushBack(value T) {
	if d.size >= len(d.ring) {
		d.grow()
	}
	d.ring[d.index(d.size)] = value
	d.size++
}

// PopFront removes and returns the front element. The second return is
// false when the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	value := d.ring[d.start]
	d.ring[d.start] = zero // drop the reference so the value can be collected
	d.start = d.index(1)
	d.size--
	return value, true
}

// PopBack removes and returns the back element. The second return is
// false when the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	d.size--
	i := d.index(d.size)
	value := d.ring[i]
	d.ring[i] = zero
	return value, true
}

// Front returns the first element without removing it. The second
// return is false when the deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.ring[d.start], true
}

// Back returns the last element without removing it. The second return
// is false when the deque is empty.
func (d *Deque[T]) Back() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.ring[d.index(d.size-1)], true
}

// Values returns the elements front to back. The deque is unchanged.
func (d *Deque[T]) Values() []T {
	out := make([]T, 0, d.size)
	for i := range d.size {
		out = append(out, d.ring[d.index(i)])
	}
	return out
}

// String renders the deque like a slice, front at the left end.
func (d *Deque[T]) String() string {
	return fmt.Sprint(d.Values())
}

// index maps a logical offset from the front to a ring buffer index,
// wrapping in both directions.
func (d *Deque[T]) index(offset int) int {
	n := len(d.ring)
	return ((d.start+offset)%n + n) % n
}

// normalize rotates the start element back to ring index 0, making the
// live range contiguous.
func (d *Deque[T]) normalize() {
	algo.Rotate(d.ring, -d.start)
	d.start = 0
}

// grow doubles the ring buffer. The buffer must be normalized first so
// a wrapped live range is not torn apart by the append.
func (d *Deque[T]) grow() {
	if len(d.ring) == 0 {
		d.ring = make([]T, defaultCapacity)
		return
	}
	d.normalize()
	d.ring = append(d.ring, make([]T, len(d.ring))...)
}

// DequeContains reports whether the deque holds value. It scans in
// O(n).
func DequeContains[T comparable](d *Deque[T], value T) bool {
	for i := range d.size {
		if d.ring[d.index(i)] == value {
			return true
		}
	}
	return false
}
