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

// Package sort provides in-place, comparator-driven sorting for slices.
//
// Sort and SortFunc are the default entry points, implemented as
// heapsort over the engine in the heap package: O(n log n) worst case,
// O(1) auxiliary space, no stability guarantee.
//
// # Algorithms
//
// The classic algorithms are also exported under their own names, each
// with a natural-order form and a comparator form:
//
//   - HeapSort: the default; unstable, O(n log n), O(1) space
//   - MergeSort: stable, O(n log n), O(n) space
//   - QuickSort: unstable, O(n log n) average, first-element pivot
//   - TimSort: stable, O(n log n), insertion-sorted runs plus merges
//   - InsertionSort: stable, O(n^2), fast on nearly sorted input
//   - SelectionSort: unstable, O(n^2)
//   - BubbleSort: stable, O(n^2)
//   - TreeSort: O(n log n) average, via a binary search tree
//
// Every sort mutates the slice in place and returns the same slice so
// calls can be chained:
//
//	sorted := sort.Sort([]int{5, 1, 3, 2, 4}) // [1 2 3 4 5]
//
// For a descending order, pass dsa.Descending to the Func form; for
// struct slices, build a comparator with dsa.By.
package sort
