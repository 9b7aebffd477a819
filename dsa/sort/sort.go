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

package sort

import (
	"github.com/tshur/go-dsa/dsa"
	"github.com/tshur/go-dsa/dsa/heap"
)

// Sort sorts data in place into ascending natural order and returns the
// same slice. It is heapsort: O(n log n) worst case, O(1) auxiliary
// space, iterative sifting, and no stability guarantee. Slices of
// length 0 or 1 are returned untouched.
func Sort[T dsa.Ordered](data []T) []T {
	return SortFunc(data, dsa.Natural[T]())
}

// SortFunc sorts data in place by cmp and returns the same slice. See
// Sort for the algorithm's properties.
func SortFunc[T any](data []T, cmp dsa.Comparator[T]) []T {
	n := len(data)
	if n <= 1 {
		return data
	}

	// Heapify with the reversed comparator so the element that sorts
	// last sits at the root; extraction then fills the slice back to
	// front.
	rev := dsa.Reverse(cmp)
	heap.Heapify(data, rev)
	for i := n; i > 1; i-- {
		heap.ExtractTop(data, i, rev)
	}
	return data
}

// HeapSort is Sort under its algorithm name.
func HeapSort[T dsa.Ordered](data []T) []T {
	return SortFunc(data, dsa.Natural[T]())
}

// HeapSortFunc is SortFunc under its algorithm name.
func HeapSortFunc[T any](data []T, cmp dsa.Comparator[T]) []T {
	return SortFunc(data, cmp)
}

// IsSorted reports whether data is in ascending natural order.
func IsSorted[T dsa.Ordered](data []T) bool {
	return IsSortedFunc(data, dsa.Natural[T]())
}

// IsSortedFunc reports whether data is ordered by cmp.
func IsSortedFunc[T any](data []T, cmp dsa.Comparator[T]) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
