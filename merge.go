package easysteam

import (
	"slices"
)

// Zip pairs as and bs positionally, building one result per pair with fn.
// If the lengths differ, pairing stops at the shorter one.
func Zip[A, B, R any](as []A, bs []B, fn func(A, B) R) []R {
	n := min(len(as), len(bs))
	out := make([]R, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(as[i], bs[i]))
	}
	return out
}

// Groups is a read-only, ordered grouping built by GroupBy.
// Keys keep the order in which they were first seen,
// and values keep their insertion order within each key.
type Groups[K comparable, V any] struct {
	keys   []K
	values map[K][]V
}

// GroupBy groups items by key(item), mapping each item with val.
// The grouping is stable.
func GroupBy[T any, K comparable, V any](items []T, key func(T) K, val func(T) V) *Groups[K, V] {
	g := &Groups[K, V]{values: make(map[K][]V)}
	for _, item := range items {
		k := key(item)
		vs, seen := g.values[k]
		if !seen {
			g.keys = append(g.keys, k)
		}
		g.values[k] = append(vs, val(item))
	}
	return g
}

// Len returns the number of keys.
func (g *Groups[K, V]) Len() int {
	return len(g.keys)
}

// Keys returns the keys in first-seen order.
func (g *Groups[K, V]) Keys() []K {
	return slices.Clone(g.keys)
}

// Get returns a copy of the values grouped under k.
func (g *Groups[K, V]) Get(k K) ([]V, bool) {
	vs, ok := g.values[k]
	if !ok {
		return nil, false
	}
	return slices.Clone(vs), true
}

// Range calls fn for each key in first-seen order with a copy of its values.
// Range stops if fn returns false.
func (g *Groups[K, V]) Range(fn func(k K, vs []V) bool) {
	for _, k := range g.keys {
		if !fn(k, slices.Clone(g.values[k])) {
			return
		}
	}
}
