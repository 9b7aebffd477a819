package list

import (
	"fmt"
	"strings"
)

type dnode[T any] struct {
	data T
	prev *dnode[T]
	next *dnode[T]
}

// A Doubly is a doubly linked list. Pushes and removals at both ends
// run in O(1). The zero value is an empty list ready to use.
type Doubly[T any] struct {
	head *dnode[T]
	tail *dnode[T]
	size int
}

// NewDoubly returns an empty doubly linked list.
func NewDoubly[T any]() *Doubly[T] {
	return &Doubly[T]{}
}

// DoublyFrom returns a doubly linked list holding values, first value
// at the head.
func DoublyFrom[T any](values []T) *Doubly[T] {
	l := NewDoubly[T]()
	for _, v := range values {
		l.PushTail(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *Doubly[T]) Len() int {
	return l.size
}

// PushHead inserts value as the new head.
func (l *Doubly[T]) PushHead(value T) {
	node := &dnode[T]{data: value}
	if l.head == nil {
		l.head, l.tail = node, node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.size++
}

// PushTail appends value as the new tail.
func (l *Doubly[T]) PushTail(value T) {
	node := &dnode[T]{data: value}
	if l.tail == nil {
		l.head, l.tail = node, node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}
	l.size++
}

// RemoveHead removes and returns the head element. The second return is
// false when the list is empty.
func (l *Doubly[T]) RemoveHead() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	value := l.head.data
	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		l.head = l.head.next
		l.head.prev = nil
	}
	l.size--
	return value, true
}

// RemoveTail removes and returns the tail element. The second return is
// false when the list is empty.
func (l *Doubly[T]) RemoveTail() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	value := l.tail.data
	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		l.tail = l.tail.prev
		l.tail.next = nil
	}
	l.size--
	return value, true
}

// RemoveFunc removes the first element for which match returns true,
// reporting whether one was removed.
func (l *Doubly[T]) RemoveFunc(match func(T) bool) bool {
	for current := l.head; current != nil; current = current.next {
		if !match(current.data) {
			continue
		}
		switch {
		case current == l.head:
			l.RemoveHead()
		case current == l.tail:
			l.RemoveTail()
		default:
			current.prev.next = current.next
			current.next.prev = current.prev
			l.size--
		}
		return true
	}
	return false
}

// Head returns the head element without removing it. The second return
// is false when the list is empty.
func (l *Doubly[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.data, true
}

// Tail returns the tail element without removing it. The second return
// is false when the list is empty.
func (l *Doubly[T]) Tail() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.data, true
}

// Find returns the first element for which match returns true. The
// second return is false when no element matches.
func (l *Doubly[T]) Find(match func(T) bool) (T, bool) {
	for current := l.head; current != nil; current = current.next {
		if match(current.data) {
			return current.data, true
		}
	}
	var zero T
	return zero, false
}

// Values returns the elements head to tail. The list is unchanged.
func (l *Doubly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for current := l.head; current != nil; current = current.next {
		out = append(out, current.data)
	}
	return out
}

// String renders the list as a chain of links ending in nil, like
// "1->2->3->nil".
func (l *Doubly[T]) String() string {
	parts := make([]string, 0, l.size+1)
	for current := l.head; current != nil; current = current.next {
		parts = append(parts, fmt.Sprint(current.data))
	}
	parts = append(parts, "nil")
	return strings.Join(parts, "->")
}
