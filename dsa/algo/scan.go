package algo

import "github.com/tshur/go-dsa/dsa"

// Scan returns every intermediate accumulator of a left fold: element i
// of the result is the accumulator after folding data[:i]. The result
// starts with initial and has len(data)+1 values.
func Scan[T, R any](data []T, combine func(R, T) R, initial R) []R {
	out := make([]R, 0, len(data)+1)
	acc := initial
	out = append(out, acc)
	for _, v := range data {
		acc = combine(acc, v)
		out = append(out, acc)
	}
	return out
}

// ScanInclusive scans without a separate seed: the accumulator starts
// as the first element, so the result has len(data) values. An empty
// slice yields nil.
//
//	algo.ScanInclusive([]int{15, 10, 6, 3, 1}, sub) // [15 5 -1 -4 -5]
func ScanInclusive[T any](data []T, combine func(T, T) T) []T {
	if len(data) == 0 {
		return nil
	}
	out := make([]T, 0, len(data))
	acc := data[0]
	out = append(out, acc)
	for _, v := range data[1:] {
		acc = combine(acc, v)
		out = append(out, acc)
	}
	return out
}

// PrefixSum replaces data with its inclusive prefix sums in place and
// returns the same slice: [1 2 3 4 5] becomes [1 3 6 10 15].
func PrefixSum[T dsa.Number](data []T) []T {
	for i := 1; i < len(data); i++ {
		data[i] += data[i-1]
	}
	return data
}
