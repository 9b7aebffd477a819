package tree

import (
	"fmt"
	"strings"
)

// String renders the tree horizontally, right subtree above the root
// and left subtree below, so each node fits on its own line:
//
//	    +---10
//	    |   +---8
//	+---5
//
// Vertical bars mark where a deeper branch changes direction.
func (t *BST[T]) String() string {
	return strings.Join(renderLines(t.root, "", "    ", "    "), "\n")
}

// renderLines walks the tree reverse-in-order. prefix is the accumulated
// indentation for this subtree; rightPrefix and leftPrefix are the
// segments appended when descending to the respective child, swapped at
// each level so a direction change introduces a bar.
func renderLines[T any](n *node[T], prefix, rightPrefix, leftPrefix string) []string {
	if n == nil {
		return nil
	}

	lines := renderLines(n.right, prefix+rightPrefix, "    ", "|   ")
	lines = append(lines, fmt.Sprintf("%s+---%v", prefix, n.data))
	return append(lines, renderLines(n.left, prefix+leftPrefix, "|   ", "    ")...)
}
