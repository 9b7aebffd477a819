// Package dsa provides generic data structures and algorithms built
// around a single comparator abstraction.
//
// Every ordered structure and algorithm in this module accepts either a
// natural ordering (via the Ordered constraint) or an explicit
// Comparator. A Comparator reports the relative order of two values with
// the sign of an int:
//
//	import "github.com/tshur/go-dsa/dsa"
//
//	// Natural ascending order for any ordered type.
//	cmp := dsa.Natural[int]()
//
//	// Order people by age, oldest first.
//	byAge := dsa.Reverse(dsa.By(func(p Person) int { return p.Age }))
//
// Subpackages provide the structures and algorithms themselves:
// sort, search, heap, algo, stack, queue, list, tree, trie, hashmap,
// and graph.
package dsa

// Comparator reports the relative order of a and b: negative when a
// orders before b, zero when the two are equivalent, and positive when a
// orders after b.
//
// A comparator must be pure and consistent for the duration of any call
// into this module. Algorithms only ever index their inputs within
// bounds, so an inconsistent comparator can misorder results but never
// corrupt memory. A panic raised by a comparator propagates to the
// caller unchanged.
type Comparator[T any] func(a, b T) int

// Compare returns the natural three-way ordering of a and b: -1 if
// a < b, +1 if a > b, and 0 otherwise.
func Compare[T Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Natural returns a Comparator ordering values ascending by their
// natural < relation. It is the default ordering used by the NewMin,
// NewOrdered, and Sort entry points of the subpackages.
func Natural[T Ordered]() Comparator[T] {
	return Compare[T]
}

// Descending returns a Comparator ordering values descending by their
// natural < relation.
func Descending[T Ordered]() Comparator[T] {
	return Reverse(Compare[T])
}

// Reverse returns a Comparator imposing the opposite order of cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// By returns a Comparator ordering values ascending by the given key.
// Combine with Reverse for a descending key order.
func By[T any, K Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return Compare(key(a), key(b))
	}
}
