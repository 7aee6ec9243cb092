package bidimap

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pair is a single key/value association, used to seed a Map.
type Pair[K, V comparable] struct {
	Key   K
	Value V
}

// P is a shorthand to create a Pair.
func P[K, V comparable](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Map is a key/value map with a reverse index from every value to the keys mapping to it.
// Keys iterate in insertion order. Setting an existing key moves it to the end.
//
// The zero value is an empty map ready to use. A nil *Map behaves like a nil Go map:
// reads return absent results, Set panics with ErrNotConstructed.
type Map[K, V comparable] struct {
	forward *orderedmap.OrderedMap[K, V]
	reverse map[V]*linkedhashset.Set // keys K in association order
}

// New creates a Map and applies the given pairs in order, as successive Set calls would.
func New[K, V comparable](pairs ...Pair[K, V]) *Map[K, V] {
	m := &Map[K, V]{}
	m.initialize()

	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}

	return m
}

// FromMap creates a Map holding all entries of m. The resulting key order is unspecified.
func FromMap[K, V comparable](m map[K]V) *Map[K, V] {
	bm := New[K, V]()
	for k, v := range m {
		bm.Set(k, v)
	}

	return bm
}

func (m *Map[K, V]) IsInitialized() bool {
	return m != nil && m.forward != nil
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	if !m.IsInitialized() {
		return 0
	}

	return m.forward.Len()
}

// Count returns the number of distinct values, not the number of keys.
// Keys sharing a value count once.
func (m *Map[K, V]) Count() int {
	if m == nil {
		return 0
	}

	return len(m.reverse)
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if !m.IsInitialized() {
		var zero V
		return zero, false
	}

	return m.forward.Get(key)
}

func (m *Map[K, V]) Has(key K) bool {
	if !m.IsInitialized() {
		return false
	}

	_, ok := m.forward.Get(key)

	return ok
}

// Set associates value with key and returns the map to allow chaining.
// An existing association of key is removed first, so key ends up last in both
// the key order and the key list of value.
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	if m == nil {
		panic(ErrNotConstructed)
	}

	m.initialize()
	m.Delete(key)

	m.forward.Set(key, value)

	keys, ok := m.reverse[value]
	if !ok {
		keys = linkedhashset.New()
		m.reverse[value] = keys
	}

	keys.Add(key)

	if logger.IsTrace() {
		logger.Trace(fmt.Sprintf("Set %v -> %v (%d keys for value)", key, value, keys.Size()))
	}

	return m
}

// Exists reports whether at least one key maps to value.
func (m *Map[K, V]) Exists(value V) bool {
	if m == nil {
		return false
	}

	_, ok := m.reverse[value]

	return ok
}

// GetKeyOf returns the first key associated with value.
func (m *Map[K, V]) GetKeyOf(value V) (K, bool) {
	var zero K

	if m == nil {
		return zero, false
	}

	keys, ok := m.reverse[value]
	if !ok {
		return zero, false
	}

	it := keys.Iterator()
	if !it.Next() {
		return zero, false
	}

	return as[K](it.Value()), true
}

// GetKeysOf returns a copy of all keys associated with value, in association order.
// The result is empty (not nil) if no key maps to value.
func (m *Map[K, V]) GetKeysOf(value V) []K {
	if m == nil {
		return []K{}
	}

	keys, ok := m.reverse[value]
	if !ok {
		return []K{}
	}

	result := make([]K, 0, keys.Size())
	for it := keys.Iterator(); it.Next(); {
		result = append(result, as[K](it.Value()))
	}

	return result
}

// Delete removes key and reports whether it was present.
// It panics with an *InvariantError if key is missing from the reverse index of its value.
func (m *Map[K, V]) Delete(key K) bool {
	if !m.IsInitialized() {
		return false
	}

	value, ok := m.forward.Get(key)
	if !ok {
		return false
	}

	keys, ok := m.reverse[value]

	switch {
	case !ok:
		m.bug("delete", key, fmt.Sprintf("no reverse entry for value %v", value))
	case keys.Size() == 1:
		if !keys.Contains(key) {
			m.bug("delete", key, fmt.Sprintf("reverse entry for value %v holds another key", value))
		}

		delete(m.reverse, value)
	default:
		if !keys.Contains(key) {
			m.bug("delete", key, fmt.Sprintf("key not found among %d keys of value %v", keys.Size(), value))
		}

		keys.Remove(key)
	}

	m.forward.Delete(key)

	if logger.IsTrace() {
		logger.Trace(fmt.Sprintf("Deleted %v (was %v)", key, value))
	}

	return true
}

// Clear removes all keys and values.
func (m *Map[K, V]) Clear() {
	if !m.IsInitialized() {
		return
	}

	m.forward = orderedmap.New[K, V]()
	clear(m.reverse)

	logger.Trace("Cleared map")
}

func (m *Map[K, V]) initialize() {
	if !m.IsInitialized() {
		m.forward = orderedmap.New[K, V]()
		m.reverse = make(map[V]*linkedhashset.Set)
	}
}

func (m *Map[K, V]) bug(op string, key K, reason string) {
	err := newInvariantError(op, key, reason)
	logger.Error(err.Error())

	panic(err)
}

// as converts a key stored in a gods set back to its type.
// A nil interface converts to the zero value.
func as[T any](raw interface{}) T {
	v, _ := raw.(T)
	return v
}
