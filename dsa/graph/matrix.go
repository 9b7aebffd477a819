// Copyright 2025 go-dsa Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"slices"

	"github.com/tshur/go-dsa/dsa/hashmap"
	"github.com/tshur/go-dsa/dsa/queue"
	"github.com/tshur/go-dsa/dsa/stack"
)

// A Matrix is a directed graph backed by an adjacency matrix, with side
// mappings from node values to matrix indices. Edge operations run in
// O(1) once both nodes exist; Add costs O(V) to extend the matrix and
// Remove O(V^2) to cut a row and column. Best for dense graphs whose
// node set rarely changes.
type Matrix[T comparable] struct {
	nodes  []T
	ids    *hashmap.Map[T, int]
	matrix [][]bool
}

// NewMatrix returns an empty matrix graph.
func NewMatrix[T comparable]() *Matrix[T] {
	return &Matrix[T]{ids: hashmap.New[T, int]()}
}

// MatrixFromEdges returns a matrix graph holding every edge. Knowing
// the node set up front, it sizes the matrix once instead of growing it
// per Add. Nodes are numbered in first-appearance order.
func MatrixFromEdges[T comparable](edges []Edge[T]) *Matrix[T] {
	m := NewMatrix[T]()
	for _, e := range edges {
		m.enroll(e.From)
		m.enroll(e.To)
	}
	m.matrix = make([][]bool, len(m.nodes))
	for i := range m.matrix {
		m.matrix[i] = make([]bool, len(m.nodes))
	}
	for _, e := range edges {
		from, _ := m.ids.Get(e.From)
		to, _ := m.ids.Get(e.To)
		m.matrix[from][to] = true
	}
	return m
}

// enroll assigns node the next id without touching the matrix.
func (m *Matrix[T]) enroll(node T) {
	if m.ids.Contains(node) {
		return
	}
	m.ids.Set(node, len(m.nodes))
	m.nodes = append(m.nodes, node)
}

// Len returns the number of nodes in the graph.
func (m *Matrix[T]) Len() int {
	return len(m.nodes)
}

// Contains reports whether node is in the graph.
func (m *Matrix[T]) Contains(node T) bool {
	return m.ids.Contains(node)
}

// Add inserts a node with no edges, extending the matrix by one row and
// column. Adding an existing node leaves the graph unchanged.
func (m *Matrix[T]) Add(node T) {
	if m.ids.Contains(node) {
		return
	}
	m.enroll(node)
	for i := range m.matrix {
		m.matrix[i] = append(m.matrix[i], false)
	}
	m.matrix = append(m.matrix, make([]bool, len(m.nodes)))
}

// Remove deletes node and every edge from or to it, reporting whether
// the node was present. Later nodes shift down one id.
func (m *Matrix[T]) Remove(node T) bool {
	id, ok := m.ids.Get(node)
	if !ok {
		return false
	}
	m.matrix = slices.Delete(m.matrix, id, id+1)
	for i := range m.matrix {
		m.matrix[i] = slices.Delete(m.matrix[i], id, id+1)
	}
	m.nodes = slices.Delete(m.nodes, id, id+1)
	m.ids.Delete(node)
	for i := id; i < len(m.nodes); i++ {
		m.ids.Set(m.nodes[i], i)
	}
	return true
}

// AddEdge inserts the directed edge from -> to, creating either node as
// needed.
func (m *Matrix[T]) AddEdge(from, to T) {
	m.Add(from)
	m.Add(to)
	f, _ := m.ids.Get(from)
	t, _ := m.ids.Get(to)
	m.matrix[f][t] = true
}

// RemoveEdge deletes the directed edge from -> to, reporting whether it
// was present. The nodes themselves stay in the graph.
func (m *Matrix[T]) RemoveEdge(from, to T) bool {
	f, ok := m.ids.Get(from)
	if !ok {
		return false
	}
	t, ok := m.ids.Get(to)
	if !ok || !m.matrix[f][t] {
		return false
	}
	m.matrix[f][t] = false
	return true
}

// HasEdge reports whether the directed edge from -> to is present.
func (m *Matrix[T]) HasEdge(from, to T) bool {
	f, ok := m.ids.Get(from)
	if !ok {
		return false
	}
	t, ok := m.ids.Get(to)
	return ok && m.matrix[f][t]
}

// Nodes returns the nodes in insertion order.
func (m *Matrix[T]) Nodes() []T {
	return slices.Clone(m.nodes)
}

// Neighbors returns the outbound neighbors of node in node insertion
// order. The second return is false when node is not in the graph.
func (m *Matrix[T]) Neighbors(node T) ([]T, bool) {
	id, ok := m.ids.Get(node)
	if !ok {
		return nil, false
	}
	var neighbors []T
	for j, isNeighbor := range m.matrix[id] {
		if isNeighbor {
			neighbors = append(neighbors, m.nodes[j])
		}
	}
	return neighbors, true
}

// BFS returns the nodes reachable from start in breadth-first order,
// visiting each node's neighbors in node insertion order. It returns
// nil when start is not in the graph.
func (m *Matrix[T]) BFS(start T) []T {
	startID, ok := m.ids.Get(start)
	if !ok {
		return nil
	}
	var visited []T
	seen := hashmap.NewSet[int]()
	frontier := queue.From([]int{startID})
	for frontier.Len() > 0 {
		id, _ := frontier.Dequeue()
		if seen.Contains(id) {
			continue
		}
		seen.Add(id)
		visited = append(visited, m.nodes[id])

		for neighbor, isNeighbor := range m.matrix[id] {
			if isNeighbor {
				frontier.Enqueue(neighbor)
			}
		}
	}
	return visited
}

// DFS returns the nodes reachable from start in depth-first order,
// descending through the highest-numbered neighbor first. It returns
// nil when start is not in the graph.
func (m *Matrix[T]) DFS(start T) []T {
	startID, ok := m.ids.Get(start)
	if !ok {
		return nil
	}
	var visited []T
	seen := hashmap.NewSet[int]()
	frontier := stack.From([]int{startID})
	for frontier.Len() > 0 {
		id, _ := frontier.Pop()
		if seen.Contains(id) {
			continue
		}
		seen.Add(id)
		visited = append(visited, m.nodes[id])

		for neighbor, isNeighbor := range m.matrix[id] {
			if isNeighbor {
				frontier.Push(neighbor)
			}
		}
	}
	return visited
}

// String renders one "node -> [neighbors]" line per node, sorted
// lexicographically.
func (m *Matrix[T]) String() string {
	return renderAdjacency(m.nodes, func(node T) []T {
		neighbors, _ := m.Neighbors(node)
		return neighbors
	})
}
