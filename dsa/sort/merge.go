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

import "github.com/tshur/go-dsa/dsa"

// MergeSort sorts data in place into ascending natural order and
// returns the same slice. The slice is split in half, each half sorted
// recursively, and the halves merged through a scratch buffer. Stable,
// O(n log n) time, O(n) auxiliary space.
func MergeSort[T dsa.Ordered](data []T) []T {
	return MergeSortFunc(data, dsa.Natural[T]())
}

// MergeSortFunc sorts data in place by cmp and returns the same slice.
func MergeSortFunc[T any](data []T, cmp dsa.Comparator[T]) []T {
	mergeSort(data, 0, len(data), cmp)
	return data
}

// mergeSort sorts the window data[left:right].
func mergeSort[T any](data []T, left, right int, cmp dsa.Comparator[T]) {
	if right-left < 2 {
		return
	}
	mid := left + (right-left)/2
	mergeSort(data, left, mid, cmp)
	mergeSort(data, mid, right, cmp)
	mergeRange(data, left, mid, right, cmp)
}

// mergeRange merges the adjacent sorted windows data[left:mid] and
// data[mid:right]. Ties take the left element, which is what keeps the
// sort stable.
func mergeRange[T any](data []T, left, mid, right int, cmp dsa.Comparator[T]) {
	a := append([]T(nil), data[left:mid]...)
	b := append([]T(nil), data[mid:right]...)

	i, j, k := 0, 0, left
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			data[k] = b[j]
			j++
		} else {
			data[k] = a[i]
			i++
		}
		k++
	}
	for ; i < len(a); i++ {
		data[k] = a[i]
		k++
	}
	for ; j < len(b); j++ {
		data[k] = b[j]
		k++
	}
}
