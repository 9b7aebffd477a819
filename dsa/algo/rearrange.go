// Copyright 2025 The go-dsa Authors. SPDX-License-Identifier: Apache-2.0

package algo

// Reverse reverses data in place and returns the same slice.
func Reverse[T any](data []T) []T {
	return ReverseRange(data, 0, len(data))
}

// ReverseRange reverses the window data[start:end] in place and returns
// the full slice. start is clamped to 0 and end to len(data); an empty
// or inverted window is a no-op.
func ReverseRange[T any](data []T, start, end int) []T {
	start = max(start, 0)
	end = min(end, len(data))
	for i, j := start, end-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
	return data
}

// Rotate rotates data in place by k positions and returns the same
// slice. Positive k carries elements toward higher indices with
// wraparound, so the last k elements become the first k; negative k
// rotates the other way. Any magnitude of k is reduced modulo the
// length. The rotation is three window reversals, O(n) time and O(1)
// space:
//
//	algo.Rotate([]int{1, 2, 3, 4}, 1)  // [4 1 2 3]
//	algo.Rotate([]int{1, 2, 3, 4}, -1) // [2 3 4 1]
func Rotate[T any](data []T, k int) []T {
	n := len(data)
	if n == 0 {
		return data
	}
	k = ((k % n) + n) % n
	pivot := n - k
	ReverseRange(data, 0, pivot)
	ReverseRange(data, pivot, n)
	return Reverse(data)
}
