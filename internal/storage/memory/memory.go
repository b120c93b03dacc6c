// Package memory implements the storage interfaces over mutex-guarded maps.
// Ids come from per-store monotonic counters, never from collection size.
package memory

import (
	"sort"
	"strconv"
)

// sortByNumericID orders entities by numeric id, which equals insertion
// order since ids come from a monotonic counter.
func sortByNumericID[T any](items []T, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		a, _ := strconv.Atoi(id(items[i]))
		b, _ := strconv.Atoi(id(items[j]))
		return a < b
	})
}
