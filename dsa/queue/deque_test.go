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

package queue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDequeZeroValue tests that an uninitialized deque works.
func TestDequeZeroValue(t *testing.T) {
	var d Deque[int]

	assert.Equal(t, 0, d.Len())
	_, ok := d.PopFront()
	assert.False(t, ok)
	_, ok = d.PopBack()
	assert.False(t, ok)

	d.PushBack(1)
	d.PushFront(2)
	assert.Equal(t, []int{2, 1}, d.Values())
}

// TestDequeFIFO tests back-to-front flow through the deque.
func TestDequeFIFO(t *testing.T) {
	d := NewDeque[int]()
	for i := 1; i <= 5; i++ {
		d.PushBack(i)
	}
	require.Equal(t, 5, d.Len())

	for i := 1; i <= 5; i++ {
		got, ok := d.PopFront()
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	assert.Equal(t, 0, d.Len())
}

// TestDequePushFront tests that front pushes stack up in reverse.
func TestDequePushFront(t *testing.T) {
	d := NewDeque[int]()
	for i := 1; i <= 3; i++ {
		d.PushFront(i)
	}
	assert.Equal(t, []int{3, 2, 1}, d.Values())

	got, ok := d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

// TestDequePeeks tests Front and Back without removal.
func TestDequePeeks(t *testing.T) {
	d := NewDeque[string]()
	_, ok := d.Front()
	assert.False(t, ok)
	_, ok = d.Back()
	assert.False(t, ok)

	d.PushBack("a")
	d.PushBack("b")
	d.PushBack("c")

	front, ok := d.Front()
	require.True(t, ok)
	assert.Equal(t, "a", front)
	back, ok := d.Back()
	require.True(t, ok)
	assert.Equal(t, "c", back)
	assert.Equal(t, 3, d.Len())
}

// TestDequeWraparound tests elements spanning the physical buffer end.
func TestDequeWraparound(t *testing.T) {
	d := NewDequeWithCapacity[int](4)
	for i := 1; i <= 4; i++ {
		d.PushBack(i)
	}
	for range 2 {
		d.PopFront()
	}
	d.PushBack(5)
	d.PushBack(6)

	assert.Equal(t, 4, d.Cap())
	assert.Equal(t, []int{3, 4, 5, 6}, d.Values())
}

// TestDequeGrowth tests that growing a wrapped buffer keeps the order.
func TestDequeGrowth(t *testing.T) {
	d := NewDequeWithCapacity[int](4)
	for i := 1; i <= 4; i++ {
		d.PushBack(i)
	}
	d.PopFront()
	d.PopFront()
	d.PushBack(5)
	d.PushBack(6)
	require.Equal(t, 4, d.Cap())

	d.PushBack(7)
	assert.Equal(t, 8, d.Cap())
	assert.Equal(t, []int{3, 4, 5, 6, 7}, d.Values())

	front, ok := d.Front()
	require.True(t, ok)
	assert.Equal(t, 3, front)
}

// TestDequeCapacity tests the constructors' capacity handling.
func TestDequeCapacity(t *testing.T) {
	assert.Equal(t, 16, NewDeque[int]().Cap())
	assert.Equal(t, 5, NewDequeWithCapacity[int](5).Cap())
	assert.Equal(t, 1, NewDequeWithCapacity[int](0).Cap())

	d := NewDequeWithCapacity[int](1)
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)
	assert.Equal(t, 4, d.Cap())
	assert.Equal(t, []int{1, 2, 3}, d.Values())
}

// TestDequeFrom tests construction from a slice.
func TestDequeFrom(t *testing.T) {
	values := []int{1, 2, 3}
	d := DequeFrom(values)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 16, d.Cap())
	assert.Equal(t, []int{1, 2, 3}, d.Values())

	values[0] = 99
	front, ok := d.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)
}

// TestDequeMatchesModel tests random operations against a slice model.
func TestDequeMatchesModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	d := NewDequeWithCapacity[int](2)
	model := []int{}

	for i := range 500 {
		switch rng.Intn(4) {
		case 0:
			d.PushBack(i)
			model = append(model, i)
		case 1:
			d.PushFront(i)
			model = append([]int{i}, model...)
		case 2:
			got, ok := d.PopFront()
			if len(model) == 0 {
				require.False(t, ok)
				break
			}
			require.True(t, ok)
			require.Equal(t, model[0], got)
			model = model[1:]
		case 3:
			got, ok := d.PopBack()
			if len(model) == 0 {
				require.False(t, ok)
				break
			}
			require.True(t, ok)
			require.Equal(t, model[len(model)-1], got)
			model = model[:len(model)-1]
		}
		require.Equal(t, len(model), d.Len())
		require.Equal(t, model, d.Values())
	}
}

// TestDequeString tests the slice-style rendering.
func TestDequeString(t *testing.T) {
	d := NewDeque[int]()
	assert.Equal(t, "[]", d.String())

	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	assert.Equal(t, "[1 2 3]", d.String())
}

// TestDequeContains tests membership scans.
func TestDequeContains(t *testing.T) {
	d := DequeFrom([]int{1, 2, 3})

	assert.True(t, DequeContains(d, 2))
	assert.False(t, DequeContains(d, 4))

	d.PopFront()
	assert.False(t, DequeContains(d, 1))
}
