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

// Package stack provides a slice-backed LIFO stack.
//
//	s := stack.New[int]()
//	s.Push(1)
//	s.Push(2)
//	top, _ := s.Pop() // 2
//
// Push, Pop, and Peek are O(1) (Push amortized over slice growth).
package stack

import "fmt"

// A Stack is a last-in-first-out container. The zero value is an empty
// stack ready to use.
type Stack[T any] struct {
	buf []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// From returns a stack with values pushed in the order given, so the
// last value is on top.
func From[T any](values []T) *Stack[T] {
	return &Stack[T]{buf: append([]T(nil), values...)}
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.buf)
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.buf = append(s.buf, value)
}

// Pop removes and returns the top of the stack. The second return is
// false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.buf) == 0 {
		return zero, false
	}
	top := s.buf[len(s.buf)-1]
	// drop the reference so the value can be collected
	s.buf[len(s.buf)-1] = zero
	s.buf = s.buf[:len(s.buf)-1]
	return top, true
}

// Peek returns the top of the stack without removing it. The second
// return is false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.buf) == 0 {
		var zero T
		return zero, false
	}
	return s.buf[len(s.buf)-1], true
}

// Values returns the elements in pop order, top of the stack first. The
// stack is unchanged.
func (s *Stack[T]) Values() []T {
	out := make([]T, 0, len(s.buf))
	for i := len(s.buf) - 1; i >= 0; i-- {
		out = append(out, s.buf[i])
	}
	return out
}

// String renders the stack like a slice, bottom first and top at the
// right end.
func (s *Stack[T]) String() string {
	return fmt.Sprint(s.buf)
}

// Contains reports whether the stack holds value. It scans in O(n).
func Contains[T comparable](s *Stack[T], value T) bool {
	for _, v := range s.buf {
		if v == value {
			return true
		}
	}
	return false
}
