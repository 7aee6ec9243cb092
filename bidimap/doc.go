// Package bidimap provides Map, a key/value map that can also be queried by value.
//
// Next to the usual forward lookup (key to value), a Map keeps a reverse index from every value
// to the keys currently pointing to it. Several keys may share the same value; the reverse index
// keeps those keys in the order they were associated with the value, so GetKeyOf returns the key
// that has held the value the longest.
//
//	m := bidimap.New(bidimap.P[any, string](1, "test"), bidimap.P[any, string]("foo", "bar"))
//	m.Get(1)            // "test", true
//	m.Exists("bar")     // true
//	m.GetKeyOf("test")  // 1, true
//
// A Map is not safe for concurrent use. Guard it with a mutex when it is shared between goroutines.
package bidimap
