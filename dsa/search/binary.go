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

// Package search provides binary and linear search over slices.
//
// The binary searches require data sorted ascending under the
// comparator in use. Binary reports some matching index; LowerBound and
// UpperBound bracket the half-open range data[LowerBound:UpperBound]
// holding every match.
package search

import "github.com/tshur/go-dsa/dsa"

// Binary searches sorted data for target in O(log n). It returns some
// index holding target and true, or the index where target would be
// inserted and false. With duplicates present the returned index is not
// necessarily the first match; use LowerBound for that.
func Binary[T dsa.Ordered](data []T, target T) (int, bool) {
	return BinaryFunc(data, target, dsa.Compare[T])
}

// BinaryFunc is Binary with an explicit comparator. The data must be
// sorted ascending under cmp.
func BinaryFunc[T any](data []T, target T, cmp dsa.Comparator[T]) (int, bool) {
	// The live search space is [low, high), exclusive end to match
	// slice bounds.
	low, high := 0, len(data)
	for low < high {
		mid := (low + high) / 2
		c := cmp(data[mid], target)
		if c == 0 {
			return mid, true
		}
		if c < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low, false
}

// LowerBound returns the smallest index where target could be inserted
// into sorted data keeping it sorted. If target is present this is the
// index of its first occurrence.
func LowerBound[T dsa.Ordered](data []T, target T) int {
	return LowerBoundFunc(data, target, dsa.Compare[T])
}

// LowerBoundFunc is LowerBound with an explicit comparator. The data
// must be sorted ascending under cmp.
func LowerBoundFunc[T any](data []T, target T, cmp dsa.Comparator[T]) int {
	low, high := 0, len(data)
	for low < high {
		mid := (low + high) / 2
		if cmp(data[mid], target) < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}

// UpperBound returns the largest index where target could be inserted
// into sorted data keeping it sorted. If target is present this is one
// past the index of its last occurrence.
func UpperBound[T dsa.Ordered](data []T, target T) int {
	return UpperBoundFunc(data, target, dsa.Compare[T])
}

// UpperBoundFunc is UpperBound with an explicit comparator. The data
// must be sorted ascending under cmp.
func UpperBoundFunc[T any](data []T, target T, cmp dsa.Comparator[T]) int {
	low, high := 0, len(data)
	for low < high {
		mid := (low + high) / 2
		if cmp(target, data[mid]) < 0 {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}
