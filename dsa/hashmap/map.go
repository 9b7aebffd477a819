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

// Package hashmap provides a chained hash map and a hash set built on
// it.
//
// Collisions land in the same bucket and are resolved by a linear scan,
// so operations cost O(k) for a bucket of k entries, O(1) expected
// while the load factor keeps buckets short. Keys are hashed with a
// per-map random seed, so iteration order is arbitrary and varies
// between maps.
package hashmap

import (
	"hash/maphash"
	"slices"

	"github.com/tshur/go-dsa/dsa/search"
)

const (
	// defaultCapacity seeds the bucket count with a prime so that the
	// 2c+1 growth sequence stays odd.
	defaultCapacity = 31
	// loadFactor is the size to capacity ratio that triggers growth.
	loadFactor = 0.75
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

func entryKey[K comparable, V any](e entry[K, V]) K {
	return e.key
}

// An Item is one key and value pair of a map.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// A Map is a hash map from K to V with chained buckets. The zero value
// is an empty map ready to use.
type Map[K comparable, V any] struct {
	buckets [][]entry[K, V]
	seed    maphash.Seed
	size    int
}

// New returns an empty map with the default capacity.
func New[K comparable, V any]() *Map[K, V] {
	m := &Map[K, V]{}
	m.lazyInit()
	return m
}

// NewWithCapacity returns an empty map with capacity buckets.
func NewWithCapacity[K comparable, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		buckets: make([][]entry[K, V], max(capacity, 1)),
		seed:    maphash.MakeSeed(),
	}
}

// From returns a map holding every entry of items.
func From[K comparable, V any](items map[K]V) *Map[K, V] {
	m := New[K, V]()
	for k, v := range items {
		m.Set(k, v)
	}
	return m
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Cap returns the current bucket count.
func (m *Map[K, V]) Cap() int {
	return len(m.buckets)
}

// Get returns the value stored under key. The second return is false
// when key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m.size == 0 {
		var zero V
		return zero, false
	}
	bucket := m.buckets[m.hash(key)]
	i := search.LinearBy(bucket, key, entryKey[K, V])
	if i < 0 {
		var zero V
		return zero, false
	}
	return bucket[i].value, true
}

// Set stores value under key, replacing any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	m.lazyInit()
	b := m.hash(key)
	if i := search.LinearBy(m.buckets[b], key, entryKey[K, V]); i >= 0 {
		m.buckets[b][i].value = value
		return
	}
	m.buckets[b] = append(m.buckets[b], entry[K, V]{key: key, value: value})
	m.size++
	if float64(m.size) >= loadFactor*float64(len(m.buckets)) {
		m.grow()
	}
}

// Pop removes key and returns the value it held. The second return is
// false when key is absent.
func (m *Map[K, V]) Pop(key K) (V, bool) {
	if m.size == 0 {
		var zero V
		return zero, false
	}
	b := m.hash(key)
	i := search.LinearBy(m.buckets[b], key, entryKey[K, V])
	if i < 0 {
		var zero V
		return zero, false
	}
	value := m.buckets[b][i].value
	m.buckets[b] = slices.Delete(m.buckets[b], i, i+1)
	m.size--
	return value, true
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	_, ok := m.Pop(key)
	return ok
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in arbitrary order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Values returns the values in arbitrary order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			values = append(values, e.value)
		}
	}
	return values
}

// Items returns the entries in arbitrary order.
func (m *Map[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, m.size)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			items = append(items, Item[K, V]{Key: e.key, Value: e.value})
		}
	}
	return items
}

func (m *Map[K, V]) lazyInit() {
	if m.buckets == nil {
		m.buckets = make([][]entry[K, V], defaultCapacity)
		m.seed = maphash.MakeSeed()
	}
}

func (m *Map[K, V]) hash(key K) int {
	return int(maphash.Comparable(m.seed, key) % uint64(len(m.buckets)))
}

// grow roughly doubles the bucket count and rehashes every entry.
// Doubling and adding one keeps the count odd, which spreads hashes
// better than an even bucket count would.
func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([][]entry[K, V], 2*len(old)+1)
	m.size = 0
	for _, bucket := range old {
		for _, e := range bucket {
			m.Set(e.key, e.value)
		}
	}
}
