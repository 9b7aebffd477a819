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

// Package graph provides directed graphs over comparable node values.
//
// Graph stores an adjacency list and suits sparse graphs with frequent
// node changes. Matrix stores an adjacency matrix and suits dense
// graphs with a stable node set. Both remember insertion order, so
// Nodes, Neighbors, and the traversals are deterministic for a given
// build sequence.
package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tshur/go-dsa/dsa/hashmap"
	"github.com/tshur/go-dsa/dsa/queue"
	"github.com/tshur/go-dsa/dsa/search"
	"github.com/tshur/go-dsa/dsa/sort"
	"github.com/tshur/go-dsa/dsa/stack"
)

// An Edge is a directed connection between two nodes.
type Edge[T comparable] struct {
	From T
	To   T
}

// adjacency tracks one node's outbound neighbors, keeping both
// insertion order and an O(1) membership set.
type adjacency[T comparable] struct {
	order []T
	set   hashmap.Set[T]
}

func (a *adjacency[T]) add(to T) bool {
	if a.set.Contains(to) {
		return false
	}
	a.set.Add(to)
	a.order = append(a.order, to)
	return true
}

func (a *adjacency[T]) remove(to T) bool {
	if !a.set.Remove(to) {
		return false
	}
	if i := search.Linear(a.order, to); i >= 0 {
		a.order = slices.Delete(a.order, i, i+1)
	}
	return true
}

// A Graph is a directed graph backed by an adjacency list. Node values
// are the nodes themselves, so duplicates collapse. Add, AddEdge,
// HasEdge, and Contains run in O(1) expected; Remove costs O(V) to
// clear inbound edges.
type Graph[T comparable] struct {
	order       []T
	adjacencies *hashmap.Map[T, *adjacency[T]]
}

// New returns an empty graph.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{adjacencies: hashmap.New[T, *adjacency[T]]()}
}

// FromEdges returns a graph built by adding every edge in order. Nodes
// are created on first appearance.
func FromEdges[T comparable](edges []Edge[T]) *Graph[T] {
	g := New[T]()
	for _, e := range edges {
		g.AddEdge(e.From, e.To)
	}
	return g
}

// Len returns the number of nodes in the graph.
func (g *Graph[T]) Len() int {
	return len(g.order)
}

// Contains reports whether node is in the graph. Edges are irrelevant;
// a node added without edges still counts.
func (g *Graph[T]) Contains(node T) bool {
	return g.adjacencies.Contains(node)
}

// Add inserts a node with no edges. Adding an existing node leaves the
// graph unchanged.
func (g *Graph[T]) Add(node T) {
	if g.adjacencies.Contains(node) {
		return
	}
	g.adjacencies.Set(node, &adjacency[T]{})
	g.order = append(g.order, node)
}

// Remove deletes node and every edge from or to it, reporting whether
// the node was present.
func (g *Graph[T]) Remove(node T) bool {
	if !g.adjacencies.Contains(node) {
		return false
	}
	for _, other := range g.order {
		if other != node {
			g.RemoveEdge(other, node)
		}
	}
	g.adjacencies.Delete(node)
	if i := search.Linear(g.order, node); i >= 0 {
		g.order = slices.Delete(g.order, i, i+1)
	}
	return true
}

// AddEdge inserts the directed edge from -> to, creating either node as
// needed. Re-adding an existing edge leaves the graph unchanged.
func (g *Graph[T]) AddEdge(from, to T) {
	g.Add(from)
	g.Add(to)
	adj, _ := g.adjacencies.Get(from)
	adj.add(to)
}

// RemoveEdge deletes the directed edge from -> to, reporting whether it
// was present. The nodes themselves stay in the graph.
func (g *Graph[T]) RemoveEdge(from, to T) bool {
	adj, ok := g.adjacencies.Get(from)
	if !ok {
		return false
	}
	return adj.remove(to)
}

// HasEdge reports whether the directed edge from -> to is present.
func (g *Graph[T]) HasEdge(from, to T) bool {
	adj, ok := g.adjacencies.Get(from)
	return ok && adj.set.Contains(to)
}

// Nodes returns the nodes in insertion order.
func (g *Graph[T]) Nodes() []T {
	return slices.Clone(g.order)
}

// Neighbors returns the outbound neighbors of node in edge insertion
// order. The second return is false when node is not in the graph.
func (g *Graph[T]) Neighbors(node T) ([]T, bool) {
	adj, ok := g.adjacencies.Get(node)
	if !ok {
		return nil, false
	}
	return slices.Clone(adj.order), true
}

// BFS returns the nodes reachable from start in breadth-first order,
// visiting each node's neighbors in edge insertion order. It returns
// nil when start is not in the graph. Cycles are visited once;
// unreachable nodes are skipped.
func (g *Graph[T]) BFS(start T) []T {
	if !g.Contains(start) {
		return nil
	}
	var visited []T
	seen := hashmap.NewSet[T]()
	frontier := queue.From([]T{start})
	for frontier.Len() > 0 {
		node, _ := frontier.Dequeue()
		if seen.Contains(node) {
			continue
		}
		seen.Add(node)
		visited = append(visited, node)

		adj, _ := g.adjacencies.Get(node)
		for _, neighbor := range adj.order {
			frontier.Enqueue(neighbor)
		}
	}
	return visited
}

// DFS returns the nodes reachable from start in depth-first order. A
// node's neighbors are pushed in edge insertion order, so the search
// descends through the most recently added edge first. It returns nil
// when start is not in the graph.
func (g *Graph[T]) DFS(start T) []T {
	if !g.Contains(start) {
		return nil
	}
	var visited []T
	seen := hashmap.NewSet[T]()
	frontier := stack.From([]T{start})
	for frontier.Len() > 0 {
		node, _ := frontier.Pop()
		if seen.Contains(node) {
			continue
		}
		seen.Add(node)
		visited = append(visited, node)

		adj, _ := g.adjacencies.Get(node)
		for _, neighbor := range adj.order {
			frontier.Push(neighbor)
		}
	}
	return visited
}

// String renders one "node -> [neighbors]" line per node, sorted
// lexicographically.
func (g *Graph[T]) String() string {
	return renderAdjacency(g.order, func(node T) []T {
		neighbors, _ := g.Neighbors(node)
		return neighbors
	})
}

func renderAdjacency[T comparable](nodes []T, neighbors func(T) []T) string {
	lines := make([]string, 0, len(nodes))
	for _, node := range nodes {
		adj := neighbors(node)
		if adj == nil {
			adj = []T{}
		}
		lines = append(lines, fmt.Sprintf("%v -> %v", node, adj))
	}
	sort.Sort(lines)
	return strings.Join(lines, "\n")
}
