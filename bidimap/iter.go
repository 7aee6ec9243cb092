package bidimap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/raito-io/golang-set/set"
)

// Keys returns all keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	result := make([]K, 0, m.Len())

	m.Each(func(k K, _ V) {
		result = append(result, k)
	})

	return result
}

// Values returns the value of every key, in key order. Shared values are repeated.
func (m *Map[K, V]) Values() []V {
	result := make([]V, 0, m.Len())

	m.Each(func(_ K, v V) {
		result = append(result, v)
	})

	return result
}

// All returns an iterator over all key/value pairs in insertion order.
// The map must not be modified while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if !m.IsInitialized() {
			return
		}

		for pair := m.forward.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Each(f func(k K, v V)) {
	for k, v := range m.All() {
		f(k, v)
	}
}

// ForwardMap returns a copy of the key to value mapping.
func (m *Map[K, V]) ForwardMap() map[K]V {
	result := make(map[K]V, m.Len())

	m.Each(func(k K, v V) {
		result[k] = v
	})

	return result
}

// ReverseMap returns a copy of the reverse index. The key slices are in association order.
func (m *Map[K, V]) ReverseMap() map[V][]K {
	result := make(map[V][]K, m.Count())

	if m == nil {
		return result
	}

	for v := range m.reverse {
		result[v] = m.GetKeysOf(v)
	}

	return result
}

// DistinctValues returns the set of values referenced by at least one key.
func (m *Map[K, V]) DistinctValues() set.Set[V] {
	result := set.NewSet[V]()

	if m == nil {
		return result
	}

	for v := range m.reverse {
		result.Add(v)
	}

	return result
}

// Clone returns an independent copy.
// Replaying the keys in insertion order rebuilds the same association order, as both orders
// follow the last Set of every key.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := New[K, V]()

	m.Each(func(k K, v V) {
		c.Set(k, v)
	})

	return c
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder

	sb.WriteString("bidimap.Map[")

	first := true

	m.Each(func(k K, v V) {
		if !first {
			sb.WriteString(" ")
		}

		first = false

		fmt.Fprintf(&sb, "%v:%v", k, v)
	})

	sb.WriteString("]")

	return sb.String()
}
