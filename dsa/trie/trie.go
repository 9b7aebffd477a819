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

// Package trie provides a prefix tree over strings.
//
// Words sharing a prefix share the path spelling it, so Insert,
// Contains, and HasPrefix all run in O(m) for a word of m runes,
// independent of how many words the trie holds.
package trie

import (
	"slices"
	"strings"
)

type node struct {
	children map[rune]*node
	terminal bool
}

// A Trie stores a set of non-empty strings by their runes. The zero
// value is an empty trie ready to use.
type Trie struct {
	root node
	size int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{}
}

// From returns a trie holding every word in words.
func From(words []string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.size
}

// Insert adds word to the trie. Inserting a word twice or inserting the
// empty string leaves the trie unchanged.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	current := &t.root
	for _, r := range word {
		child, ok := current.children[r]
		if !ok {
			child = &node{}
			if current.children == nil {
				current.children = make(map[rune]*node)
			}
			current.children[r] = child
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// Contains reports whether word was inserted as a complete word. A
// stored word's proper prefixes do not count; see HasPrefix.
func (t *Trie) Contains(word string) bool {
	n, ok := t.walk(word)
	return ok && n.terminal
}

// HasPrefix reports whether any stored word starts with prefix. Every
// trie matches the empty prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	_, ok := t.walk(prefix)
	return ok
}

// Words returns the stored words in lexicographic rune order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.size)
	var path []rune
	var walk func(n *node)
	walk = func(n *node) {
		if n.terminal {
			words = append(words, string(path))
		}
		for _, r := range sortedKeys(n.children) {
			path = append(path, r)
			walk(n.children[r])
			path = path[:len(path)-1]
		}
	}
	walk(&t.root)
	return words
}

// walk follows s rune by rune from the root, reporting whether the
// whole path exists.
func (t *Trie) walk(s string) (*node, bool) {
	current := &t.root
	for _, r := range s {
		child, ok := current.children[r]
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

func sortedKeys(children map[rune]*node) []rune {
	keys := make([]rune, 0, len(children))
	for r := range children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

// String renders the trie as an indented tree, one rune per line, with
// "*" marking the end of a complete word:
//
//	Trie
//	`-- a
//	    `-- p
//	        `-- p
//	            |-- *
//	            `-- l
//	                `-- e
//	                    `-- *
func (t *Trie) String() string {
	lines := append([]string{"Trie"}, renderLines(&t.root, "")...)
	return strings.Join(lines, "\n")
}

func renderLines(n *node, prefix string) []string {
	type entry struct {
		label string
		child *node
	}
	entries := make([]entry, 0, len(n.children)+1)
	if n.terminal {
		entries = append(entries, entry{label: "*"})
	}
	for _, r := range sortedKeys(n.children) {
		entries = append(entries, entry{label: string(r), child: n.children[r]})
	}

	var lines []string
	for i, e := range entries {
		branch, extension := "|-- ", "|   "
		if i == len(entries)-1 {
			branch, extension = "`-- ", "    "
		}
		lines = append(lines, prefix+branch+e.label)
		if e.child != nil {
			lines = append(lines, renderLines(e.child, prefix+extension)...)
		}
	}
	return lines
}
