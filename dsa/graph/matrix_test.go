package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrixAdd tests node insertion and matrix growth.
func TestMatrixAdd(t *testing.T) {
	m := NewMatrix[int]()
	m.Add(1)
	m.Add(2)
	m.Add(1)

	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Contains(1))
	assert.False(t, m.Contains(3))
	assert.False(t, m.HasEdge(1, 2))
}

// TestMatrixAddEdge tests directed edges and node creation.
func TestMatrixAddEdge(t *testing.T) {
	m := NewMatrix[int]()
	m.AddEdge(1, 2)

	assert.True(t, m.Contains(1))
	assert.True(t, m.Contains(2))
	assert.True(t, m.HasEdge(1, 2))
	assert.False(t, m.HasEdge(2, 1))

	m.AddEdge(3, 3)
	assert.True(t, m.HasEdge(3, 3))
}

// TestMatrixFromEdges tests the bulk construction path.
func TestMatrixFromEdges(t *testing.T) {
	m := MatrixFromEdges([]Edge[int]{{1, 2}, {3, 4}})

	assert.Equal(t, 4, m.Len())
	if diff := cmp.Diff([]int{1, 2, 3, 4}, m.Nodes()); diff != "" {
		t.Errorf("Nodes() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, m.HasEdge(1, 2))
	assert.True(t, m.HasEdge(3, 4))
	assert.False(t, m.HasEdge(1, 4))
}

// TestMatrixRemoveEdge tests edge removal leaves nodes behind.
func TestMatrixRemoveEdge(t *testing.T) {
	m := MatrixFromEdges([]Edge[int]{{1, 2}, {3, 4}})

	assert.True(t, m.RemoveEdge(3, 4))
	assert.False(t, m.HasEdge(3, 4))
	assert.True(t, m.Contains(4))

	assert.False(t, m.RemoveEdge(3, 4))
	assert.False(t, m.RemoveEdge(9, 1))
}

// TestMatrixRemove tests that later nodes renumber correctly after a
// removal.
func TestMatrixRemove(t *testing.T) {
	m := MatrixFromEdges([]Edge[int]{{1, 2}, {2, 3}, {3, 1}, {1, 3}})

	assert.True(t, m.Remove(2))
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Contains(2))

	// Surviving edges must follow their nodes to the new indices.
	assert.True(t, m.HasEdge(3, 1))
	assert.True(t, m.HasEdge(1, 3))
	assert.False(t, m.HasEdge(1, 2))
	assert.False(t, m.HasEdge(2, 3))

	m.AddEdge(4, 1)
	assert.True(t, m.HasEdge(4, 1))
	assert.Equal(t, 3, m.Len())

	assert.False(t, m.Remove(2))
}

// TestMatrixNeighbors tests id-ordered neighbor listing.
func TestMatrixNeighbors(t *testing.T) {
	m := MatrixFromEdges([]Edge[int]{{1, 2}, {3, 4}, {1, 4}})

	neighbors, ok := m.Neighbors(1)
	require.True(t, ok)
	if diff := cmp.Diff([]int{2, 4}, neighbors); diff != "" {
		t.Errorf("Neighbors(1) mismatch (-want +got):\n%s", diff)
	}

	_, ok = m.Neighbors(9)
	assert.False(t, ok)
}

// TestMatrixBFS tests breadth-first visit order.
func TestMatrixBFS(t *testing.T) {
	m := MatrixFromEdges([]Edge[int]{{1, 2}, {2, 3}, {3, 3}})

	if diff := cmp.Diff([]int{1, 2, 3}, m.BFS(1)); diff != "" {
		t.Errorf("BFS(1) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3}, m.BFS(3)); diff != "" {
		t.Errorf("BFS(3) mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, m.BFS(9))
}

// TestMatrixDFS tests depth-first visit order through the diamond.
func TestMatrixDFS(t *testing.T) {
	m := MatrixFromEdges([]Edge[int]{{1, 2}, {1, 3}, {2, 4}, {3, 4}})

	if diff := cmp.Diff([]int{1, 3, 4, 2}, m.DFS(1)); diff != "" {
		t.Errorf("DFS(1) mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, m.DFS(9))
}

// TestMatrixCycle tests that cycles terminate.
func TestMatrixCycle(t *testing.T) {
	m := MatrixFromEdges([]Edge[int]{{1, 2}, {2, 1}})

	if diff := cmp.Diff([]int{1, 2}, m.BFS(1)); diff != "" {
		t.Errorf("BFS(1) mismatch (-want +got):\n%s", diff)
	}
}

// TestMatrixString tests the sorted adjacency rendering.
func TestMatrixString(t *testing.T) {
	m := MatrixFromEdges([]Edge[int]{{1, 2}, {2, 3}, {4, 4}})

	want := "1 -> [2]\n2 -> [3]\n3 -> []\n4 -> [4]"
	assert.Equal(t, want, m.String())
}
