// Copyright 2025 The go-dsa Authors. SPDX-License-Identifier: Apache-2.0

package sort

import "github.com/tshur/go-dsa/dsa"

// QuickSort sorts data in place into ascending natural order and
// returns the same slice. The first element of each window is the
// pivot; the window is partitioned around it and both sides are sorted
// recursively. Unstable, O(n log n) average, O(n^2) worst case on
// already sorted input.
func QuickSort[T dsa.Ordered](data []T) []T {
	return QuickSortFunc(data, dsa.Natural[T]())
}

// QuickSortFunc sorts data in place by cmp and returns the same slice.
func QuickSortFunc[T any](data []T, cmp dsa.Comparator[T]) []T {
	quickSort(data, 0, len(data), cmp)
	return data
}

// quickSort sorts the window data[left:right].
func quickSort[T any](data []T, left, right int, cmp dsa.Comparator[T]) {
	if right-left < 2 {
		return
	}
	pivot := partition(data, left, right, cmp)
	quickSort(data, left, pivot, cmp)
	quickSort(data, pivot+1, right, cmp)
}

// partition partitions data[left:right] around its first element and
// returns the pivot's final index. Elements ordering at or before the
// pivot end up on its left, the rest on its right. The pivot walks
// right one slot per move: the element after it is displaced to the
// scanned position, then the pivot swaps into the freed slot.
func partition[T any](data []T, left, right int, cmp dsa.Comparator[T]) int {
	pivot := left
	for other := left + 1; other < right; other++ {
		if cmp(data[pivot], data[other]) < 0 {
			continue
		}
		data[pivot+1], data[other] = data[other], data[pivot+1]
		data[pivot], data[pivot+1] = data[pivot+1], data[pivot]
		pivot++
	}
	return pivot
}
