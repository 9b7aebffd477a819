package hashmap

// A Set is a hash set of comparable values, backed by a Map with empty
// values. The zero value is an empty set ready to use.
type Set[T comparable] struct {
	m Map[T, struct{}]
}

// NewSet returns an empty set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{}
}

// SetFrom returns a set holding the distinct values of values.
func SetFrom[T comparable](values []T) *Set[T] {
	s := NewSet[T]()
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// Add inserts value. Adding a value twice leaves the set unchanged.
func (s *Set[T]) Add(value T) {
	s.m.Set(value, struct{}{})
}

// Remove deletes value, reporting whether it was present.
func (s *Set[T]) Remove(value T) bool {
	return s.m.Delete(value)
}

// Contains reports whether value is present.
func (s *Set[T]) Contains(value T) bool {
	return s.m.Contains(value)
}

// Values returns the set's values in arbitrary order.
func (s *Set[T]) Values() []T {
	return s.m.Keys()
}
