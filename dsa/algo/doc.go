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

// Package algo provides generic sequence algorithms over slices: folds,
// scans, in-place rearrangement, and sliding-window transforms.
//
// # Reductions
//
// Reduce is a strict left fold with an explicit seed; Sum, Min, and Max
// are the common special cases:
//
//	total := algo.Reduce([]int{1, 2, 3, 4, 5},
//		func(acc, v int) int { return acc + v }, 0) // 15
//	sum := algo.Sum([]float64{0.5, 1.5}) // 2.0
//
// # Scans
//
// Scan keeps every intermediate accumulator of the fold; PrefixSum is
// the in-place additive special case:
//
//	algo.Scan([]int{1, 2, 3}, add, 0)      // [0 1 3 6]
//	algo.PrefixSum([]int{1, 2, 3, 4, 5})   // [1 3 6 10 15]
//
// # Rearrangement
//
// Reverse, ReverseRange, and Rotate mutate the slice in place, use O(1)
// auxiliary space, and return the same slice for chaining.
//
// All functions run on the calling goroutine, perform no I/O, and keep
// no state between calls; distinct slices may be processed
// concurrently.
package algo
