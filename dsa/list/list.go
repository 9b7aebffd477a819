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

// Package list provides singly and doubly linked lists with head and
// tail pointers.
//
// Both lists share the List surface. They differ only in cost: Singly
// pays O(n) for RemoveTail where Doubly pays O(1), in exchange for one
// pointer less per node.
package list

import "slices"

// A List is a linked list of values reachable from a head and a tail.
// Singly and Doubly implement it.
type List[T any] interface {
	// Len returns the number of elements in O(1).
	Len() int
	// PushHead inserts value as the new head.
	PushHead(value T)
	// PushTail appends value as the new tail.
	PushTail(value T)
	// RemoveHead removes and returns the head element. The second
	// return is false when the list is empty.
	RemoveHead() (T, bool)
	// RemoveTail removes and returns the tail element. The second
	// return is false when the list is empty.
	RemoveTail() (T, bool)
	// RemoveFunc removes the first element for which match returns
	// true, reporting whether one was removed.
	RemoveFunc(match func(T) bool) bool
	// Head returns the head element without removing it. The second
	// return is false when the list is empty.
	Head() (T, bool)
	// Tail returns the tail element without removing it. The second
	// return is false when the list is empty.
	Tail() (T, bool)
	// Find returns the first element for which match returns true. The
	// second return is false when no element matches.
	Find(match func(T) bool) (T, bool)
	// Values returns the elements head to tail. The list is unchanged.
	Values() []T
}

// Contains reports whether l holds value. It scans in O(n).
func Contains[T comparable](l List[T], value T) bool {
	return slices.Contains(l.Values(), value)
}

// Remove removes the first element equal to value, reporting whether
// one was removed.
func Remove[T comparable](l List[T], value T) bool {
	return l.RemoveFunc(func(v T) bool { return v == value })
}
