package list

import (
	"fmt"
	"strings"
)

type snode[T any] struct {
	data T
	next *snode[T]
}

// A Singly is a singly linked list. PushHead, PushTail, and RemoveHead
// run in O(1); RemoveTail costs O(n) because a node does not know its
// predecessor. The zero value is an empty list ready to use.
type Singly[T any] struct {
	head *snode[T]
	tail *snode[T]
	size int
}

// NewSingly returns an empty singly linked list.
func NewSingly[T any]() *Singly[T] {
	return &Singly[T]{}
}

// SinglyFrom returns a singly linked list holding values, first value
// at the head.
func SinglyFrom[T any](values []T) *Singly[T] {
	l := NewSingly[T]()
	for _, v := range values {
		l.PushTail(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *Singly[T]) Len() int {
	return l.size
}

// PushHead inserts value as the new head.
func (l *Singly[T]) PushHead(value T) {
	node := &snode[T]{data: value}
	if l.head == nil {
		l.head, l.tail = node, node
	} else {
		node.next = l.head
		l.head = node
	}
	l.size++
}

// PushTail appends value as the new tail.
func (l *Singly[T]) PushTail(value T) {
	node := &snode[T]{data: value}
	if l.tail == nil {
		l.head, l.tail = node, node
	} else {
		l.tail.next = node
		l.tail = node
	}
	l.size++
}

// RemoveHead removes and returns the head element. The second return is
// false when the list is empty.
func (l *Singly[T]) RemoveHead() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	value := l.head.data
	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		l.head = l.head.next
	}
	l.size--
	return value, true
}

// RemoveTail removes and returns the tail element in O(n). The second
// return is false when the list is empty.
func (l *Singly[T]) RemoveTail() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	value := l.tail.data
	if l.head == l.tail {
		l.head, l.tail = nil, nil
		l.size--
		return value, true
	}
	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	prev.next = nil
	l.tail = prev
	l.size--
	return value, true
}

// RemoveFunc removes the first element for which match returns true,
// reporting whether one was removed.
func (l *Singly[T]) RemoveFunc(match func(T) bool) bool {
	var prev *snode[T]
	for current := l.head; current != nil; prev, current = current, current.next {
		if !match(current.data) {
			continue
		}
		switch {
		case current == l.head:
			l.RemoveHead()
		case current == l.tail:
			prev.next = nil
			l.tail = prev
			l.size--
		default:
			prev.next = current.next
			l.size--
		}
		return true
	}
	return false
}

// Head returns the head element without removing it. The second return
// is false when the list is empty.
func (l *Singly[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.data, true
}

// Tail returns the tail element without removing it. The second return
// is false when the list is empty.
func (l *Singly[T]) Tail() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.data, true
}

// Find returns the first element for which match returns true. The
// second return is false when no element matches.
func (l *Singly[T]) Find(match func(T) bool) (T, bool) {
	for current := l.head; current != nil; current = current.next {
		if match(current.data) {
			return current.data, true
		}
	}
	var zero T
	return zero, false
}

// Values returns the elements head to tail. The list is unchanged.
func (l *Singly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for current := l.head; current != nil; current = current.next {
		out = append(out, current.data)
	}
	return out
}

// String renders the list as a chain of links ending in nil, like
// "1->2->3->nil".
func (l *Singly[T]) String() string {
	parts := make([]string, 0, l.size+1)
	for current := l.head; current != nil; current = current.next {
		parts = append(parts, fmt.Sprint(current.data))
	}
	parts = append(parts, "nil")
	return strings.Join(parts, "->")
}
