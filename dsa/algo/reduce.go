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

package algo

import "github.com/tshur/go-dsa/dsa"

// Reduce folds data into a single value, strictly left to right: the
// accumulator starts at initial and combine is applied once per
// element, first to last. An empty slice returns initial unchanged. A
// panic raised by combine propagates to the caller.
func Reduce[T, R any](data []T, combine func(R, T) R, initial R) R {
	acc := initial
	for _, v := range data {
		acc = combine(acc, v)
	}
	return acc
}

// Sum returns the sum of all elements, zero for an empty slice.
func Sum[T dsa.Number](data []T) T {
	return Reduce(data, func(acc, v T) T { return acc + v }, 0)
}

// Min returns the smallest element. The second return is false when
// data is empty.
func Min[T dsa.Ordered](data []T) (T, bool) {
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	minVal := data[0]
	for _, v := range data[1:] {
		if v < minVal {
			minVal = v
		}
	}
	return minVal, true
}

// Max returns the largest element. The second return is false when
// data is empty.
func Max[T dsa.Ordered](data []T) (T, bool) {
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	maxVal := data[0]
	for _, v := range data[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal, true
}
