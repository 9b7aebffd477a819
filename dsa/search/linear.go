package search

// Linear scans data for target and returns the index of the first
// occurrence, or -1 when target is absent. The data need not be sorted.
func Linear[T comparable](data []T, target T) int {
	for i, v := range data {
		if v == target {
			return i
		}
	}
	return -1
}

// LinearBy scans data for the first element whose key equals target and
// returns its index, or -1 when no element matches.
func LinearBy[T any, K comparable](data []T, target K, key func(T) K) int {
	for i, v := range data {
		if key(v) == target {
			return i
		}
	}
	return -1
}
