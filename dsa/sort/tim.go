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

// timMinRunThreshold: runs shorter than this are insertion sorted.
const timMinRunThreshold = 32

// TimSort sorts data in place into ascending natural order and returns
// the same slice. The slice is cut into runs of at least minRun
// elements, each insertion sorted, then adjacent runs are merged in
// doubling passes. Stable, O(n log n) time, O(n) auxiliary space for
// the merges.
func TimSort[T dsa.Ordered](data []T) []T {
	return TimSortFunc(data, dsa.Natural[T]())
}

// TimSortFunc sorts data in place by cmp and returns the same slice.
func TimSortFunc[T any](data []T, cmp dsa.Comparator[T]) []T {
	n := len(data)
	if n < 2 {
		return data
	}

	run := minRun(n)
	for start := 0; start < n; start += run {
		insertionRange(data, start, min(start+run, n), cmp)
	}

	for size := run; size < n; size *= 2 {
		for left := 0; left < n; left += 2 * size {
			mid := min(left+size, n)
			right := min(left+2*size, n)
			if mid < right {
				mergeRange(data, left, mid, right, cmp)
			}
		}
	}
	return data
}

// minRun computes the initial run length: n reduced below the threshold
// by halving, plus one if any discarded bit was set. This keeps n/run
// at or just under a power of two, so the merge passes stay balanced.
func minRun(n int) int {
	r := 0
	for n >= timMinRunThreshold {
		r |= n & 1
		n >>= 1
	}
	return n + r
}
