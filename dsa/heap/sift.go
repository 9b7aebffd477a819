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

// Heapify arranges data into a binary heap ordered by cmp, placing the
// element that orders first at index 0. It works in place and runs in
// O(n) time by sifting every internal node down, last parent first.
// Slices of length 0 or 1 are already heaps and are left untouched.
func Heapify[T any](data []T, cmp dsa.Comparator[T]) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		SiftDown(data, i, n, cmp)
	}
}

// SiftDown restores the heap ordering of data[:n] at root, assuming the
// subtrees below root already satisfy it. It iteratively swaps root
// with its first-ordering child until both children order at or after
// it. Indices at or beyond n are never touched, so a heap may occupy
// just a prefix of its backing slice.
func SiftDown[T any](data []T, root, n int, cmp dsa.Comparator[T]) {
	for {
		top := root
		left := 2*root + 1
		right := 2*root + 2
		if left < n && cmp(data[left], data[top]) < 0 {
			top = left
		}
		if right < n && cmp(data[right], data[top]) < 0 {
			top = right
		}
		if top == root {
			return
		}
		data[root], data[top] = data[top], data[root]
		root = top
	}
}

// SiftUp restores the heap ordering along the path from index i to the
// root, assuming data[:i] already satisfies it. It is the push-side
// dual of SiftDown, used after appending an element at index i.
func SiftUp[T any](data []T, i int, cmp dsa.Comparator[T]) {
	for i > 0 {
		parent := (i - 1) / 2
		if cmp(data[i], data[parent]) >= 0 {
			return
		}
		data[i], data[parent] = data[parent], data[i]
		i = parent
	}
}

// ExtractTop removes the top of the heap occupying data[:n], restoring
// the heap ordering over data[:n-1] and leaving the extracted element
// at the vacated slot data[n-1]. It returns that element. n must be at
// least 1 and at most len(data).
func ExtractTop[T any](data []T, n int, cmp dsa.Comparator[T]) T {
	data[0], data[n-1] = data[n-1], data[0]
	SiftDown(data, 0, n-1, cmp)
	return data[n-1]
}
