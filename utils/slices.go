// Package utils implements generic helpers shared by the other packages.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}
