// Package heap provides a binary heap: a low-level slice engine, used
// by the sorting package, and a comparator-driven container built on
// top of it.
//
// # Slice engine
//
// Heapify, SiftDown, SiftUp, and ExtractTop operate on a caller-owned
// slice prefix, maintaining the invariant that every element orders at
// or before its two children under the supplied comparator. The element
// at index 0 is therefore the one that orders first: a min-heap under
// dsa.Natural, a max-heap under dsa.Descending. Layout is the implicit
// binary tree over indices, with the children of i at 2i+1 and 2i+2 and
// its parent at (i-1)/2.
//
// # Container
//
// Heap wraps the engine with a growable backing slice:
//
//	h := heap.NewMin[int]()
//	h.Push(3)
//	h.Push(1)
//	top, _ := h.Pop() // 1
//
// Engine functions and container methods use O(1) auxiliary space
// beyond the backing slice. Values of distinct Heap instances may be
// used concurrently; a single instance must not be.
package heap
