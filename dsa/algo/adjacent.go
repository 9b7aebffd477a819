package algo

// AdjacentTransform calls fn on every run of window adjacent elements
// and collects the results: output i is fn(data[i : i+window]), so the
// result has len(data)-window+1 values. A window larger than the input,
// or smaller than one, yields nil. The window slice aliases data and
// must not be retained or grown by fn.
//
//	algo.AdjacentTransform([]int{15, 10, 6, 3, 1}, 3, algo.Sum[int]) // [31 19 10]
func AdjacentTransform[T, R any](data []T, window int, fn func([]T) R) []R {
	if window < 1 || window > len(data) {
		return nil
	}
	out := make([]R, 0, len(data)-window+1)
	for i := 0; i+window <= len(data); i++ {
		out = append(out, fn(data[i:i+window:i+window]))
	}
	return out
}

// PairwiseTransform calls fn on every adjacent pair: output i is
// fn(data[i], data[i+1]), and the result has len(data)-1 values. Fewer
// than two elements yield nil.
func PairwiseTransform[T, R any](data []T, fn func(a, b T) R) []R {
	if len(data) < 2 {
		return nil
	}
	out := make([]R, 0, len(data)-1)
	for i := 0; i+1 < len(data); i++ {
		out = append(out, fn(data[i], data[i+1]))
	}
	return out
}
