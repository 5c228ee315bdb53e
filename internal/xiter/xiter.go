package xiter

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Slice exposes a slice as an iterator sequence.
func Slice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// SortedKeys returns map keys in sorted order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// ValuesBySortedKeys yields map values following sorted key order.
func ValuesBySortedKeys[K cmp.Ordered, V any](m map[K]V) iter.Seq[V] {
	keys := SortedKeys(m)
	return func(yield func(V) bool) {
		for _, key := range keys {
			if !yield(m[key]) {
				return
			}
		}
	}
}

// Find returns the first value of seq accepted by match.
func Find[T any](seq iter.Seq[T], match func(T) bool) (T, bool) {
	for item := range seq {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
