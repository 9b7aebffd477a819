package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackZeroValue(t *testing.T) {
	var s Stack[int]
	assert.Equal(t, 0, s.Len())

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push(1)
	assert.Equal(t, 1, s.Len())
}

func TestStackPushPop(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, s.Len())
}

func TestStackPeek(t *testing.T) {
	s := From([]int{1, 2})

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, top)
	assert.Equal(t, 2, s.Len(), "Peek must not remove the top")
}

func TestStackFrom(t *testing.T) {
	values := []int{1, 2, 3}
	s := From(values)

	// The seed slice is copied, not aliased.
	values[0] = 99
	assert.Equal(t, []int{3, 2, 1}, s.Values())
}

func TestStackValues(t *testing.T) {
	s := From([]string{"a", "b", "c"})
	assert.Equal(t, []string{"c", "b", "a"}, s.Values())
	assert.Equal(t, 3, s.Len(), "Values must not consume the stack")
}

func TestStackContains(t *testing.T) {
	s := From([]int{1, 2, 3})
	assert.True(t, Contains(s, 1))
	assert.True(t, Contains(s, 3))
	assert.False(t, Contains(s, 10))
}

func TestStackString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", From([]int{1, 2, 3}).String())
	assert.Equal(t, "[]", New[int]().String())
}
