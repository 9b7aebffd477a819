package sort

import (
	"github.com/tshur/go-dsa/dsa"
	"github.com/tshur/go-dsa/dsa/tree"
)

// TreeSort sorts data in place into ascending natural order and returns
// the same slice. Every element is inserted into a binary search tree,
// then read back in order. O(n log n) average, O(n^2) when the tree
// degenerates on already sorted input, O(n) auxiliary space for the
// tree. Duplicates chain to the right of their first occurrence.
func TreeSort[T dsa.Ordered](data []T) []T {
	return TreeSortFunc(data, dsa.Natural[T]())
}

// TreeSortFunc sorts data in place by cmp and returns the same slice.
func TreeSortFunc[T any](data []T, cmp dsa.Comparator[T]) []T {
	if len(data) <= 1 {
		return data
	}
	bst := tree.From(data, cmp)
	copy(data, bst.InOrder())
	return data
}
