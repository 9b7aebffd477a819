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

// Package tree provides an unbalanced binary search tree ordered by a
// comparator.
//
// For every node, values in the left subtree order strictly before the
// node and values in the right subtree order at or after it, so
// duplicates chain to the right of their first occurrence. The tree is
// not rebalanced: Insert, Remove, and Contains run in O(log n) on
// average and O(n) when insertions arrive in sorted order.
package tree

import (
	"github.com/tshur/go-dsa/dsa"
	"github.com/tshur/go-dsa/dsa/stack"
)

type node[T any] struct {
	data        T
	left, right *node[T]
}

// A BST is a binary search tree. The zero value is not usable;
// construct with New, NewOrdered, or From.
type BST[T any] struct {
	root *node[T]
	cmp  dsa.Comparator[T]
	size int
}

// New returns an empty tree ordered by cmp.
func New[T any](cmp dsa.Comparator[T]) *BST[T] {
	return &BST[T]{cmp: cmp}
}

// NewOrdered returns an empty tree over a naturally ordered type.
func NewOrdered[T dsa.Ordered]() *BST[T] {
	return New(dsa.Natural[T]())
}

// From returns a tree with values inserted in the order given.
func From[T any](values []T, cmp dsa.Comparator[T]) *BST[T] {
	t := New(cmp)
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Len returns the number of nodes in the tree.
func (t *BST[T]) Len() int {
	return t.size
}

// Insert adds value at the first open leaf that keeps the tree ordered.
// Duplicates are allowed and land in the right subtree of their equal.
func (t *BST[T]) Insert(value T) {
	var parent *node[T]
	current := t.root
	for current != nil {
		parent = current
		if t.cmp(value, current.data) < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}

	n := &node[T]{data: value}
	switch {
	case parent == nil:
		t.root = n
	case t.cmp(value, parent.data) < 0:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++
}

// Contains reports whether some node compares equal to value.
func (t *BST[T]) Contains(value T) bool {
	_, found := t.findWithParent(value)
	return found != nil
}

// Remove deletes one node comparing equal to value and reports whether
// one was found.
//
// A node with at most one child is spliced out directly. A node with
// two children first swaps its value with its in-order successor, the
// smallest node of the right subtree, which by construction has no left
// child and can then be spliced out the same way.
func (t *BST[T]) Remove(value T) bool {
	parent, target := t.findWithParent(value)
	if target == nil {
		return false
	}

	if target.left == nil || target.right == nil {
		t.spliceNearLeaf(parent, target)
	} else {
		succParent, succ := findSuccessor(target)
		target.data = succ.data
		t.spliceNearLeaf(succParent, succ)
	}
	t.size--
	return true
}

// spliceNearLeaf unlinks a node with at most one child, promoting that
// child (or nil) into its place. parent == nil means node is the root.
func (t *BST[T]) spliceNearLeaf(parent, n *node[T]) {
	child := n.right
	if n.left != nil {
		child = n.left
	}

	switch {
	case parent == nil:
		t.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}
}

// findSuccessor returns the in-order successor of n, the smallest node
// in its right subtree, together with that node's parent. n must have a
// right child.
func findSuccessor[T any](n *node[T]) (parent, succ *node[T]) {
	parent = n
	succ = n.right
	for succ.left != nil {
		parent, succ = succ, succ.left
	}
	return parent, succ
}

// findWithParent locates the first node comparing equal to value,
// returning it with its parent. Both are nil when value is absent; the
// parent is nil when the match is the root.
func (t *BST[T]) findWithParent(value T) (parent, found *node[T]) {
	current := t.root
	for current != nil {
		c := t.cmp(value, current.data)
		if c == 0 {
			return parent, current
		}
		parent = current
		if c < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	return nil, nil
}

// InOrder returns the values in ascending order. The traversal is
// iterative, holding the path to the current node on an explicit
// stack, so it uses O(h) space for a tree of height h.
func (t *BST[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	path := stack.New[*node[T]]()
	current := t.root
	for current != nil || path.Len() > 0 {
		for current != nil {
			path.Push(current)
			current = current.left
		}
		n, _ := path.Pop()
		out = append(out, n.data)
		current = n.right
	}
	return out
}

// Ascend calls fn for every value in ascending order, stopping early
// when fn returns false.
func (t *BST[T]) Ascend(fn func(T) bool) {
	ascend(t.root, fn)
}

func ascend[T any](n *node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.data) {
		return false
	}
	return ascend(n.right, fn)
}
