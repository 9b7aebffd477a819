package sort

import "github.com/tshur/go-dsa/dsa"

// The quadratic sorts. They stay useful as teaching tools, for tiny
// inputs, and as run builders inside TimSort.

// BubbleSort sorts data in place into ascending natural order and
// returns the same slice. Adjacent out-of-order pairs are swapped in
// repeated passes until a pass makes no swap. Stable, O(n^2).
func BubbleSort[T dsa.Ordered](data []T) []T {
	return BubbleSortFunc(data, dsa.Natural[T]())
}

// BubbleSortFunc sorts data in place by cmp and returns the same slice.
func BubbleSortFunc[T any](data []T, cmp dsa.Comparator[T]) []T {
	for swapped := true; swapped; {
		swapped = false
		for i := 0; i+1 < len(data); i++ {
			if cmp(data[i+1], data[i]) < 0 {
				data[i], data[i+1] = data[i+1], data[i]
				swapped = true
			}
		}
	}
	return data
}

// InsertionSort sorts data in place into ascending natural order and
// returns the same slice. Each element is shifted left into its place
// within the sorted prefix. Stable, O(n^2), and close to O(n) on nearly
// sorted input.
func InsertionSort[T dsa.Ordered](data []T) []T {
	return InsertionSortFunc(data, dsa.Natural[T]())
}

// InsertionSortFunc sorts data in place by cmp and returns the same
// slice.
func InsertionSortFunc[T any](data []T, cmp dsa.Comparator[T]) []T {
	insertionRange(data, 0, len(data), cmp)
	return data
}

// insertionRange insertion sorts the window data[left:right].
func insertionRange[T any](data []T, left, right int, cmp dsa.Comparator[T]) {
	for i := left + 1; i < right; i++ {
		key := data[i]
		j := i - 1
		for j >= left && cmp(key, data[j]) < 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// SelectionSort sorts data in place into ascending natural order and
// returns the same slice. Each pass selects the minimum of the unsorted
// suffix and swaps it into place. Unstable, O(n^2).
func SelectionSort[T dsa.Ordered](data []T) []T {
	return SelectionSortFunc(data, dsa.Natural[T]())
}

// SelectionSortFunc sorts data in place by cmp and returns the same
// slice.
func SelectionSortFunc[T any](data []T, cmp dsa.Comparator[T]) []T {
	for i := 0; i < len(data)-1; i++ {
		minIndex := i
		for j := i + 1; j < len(data); j++ {
			if cmp(data[j], data[minIndex]) < 0 {
				minIndex = j
			}
		}
		data[i], data[minIndex] = data[minIndex], data[i]
	}
	return data
}
