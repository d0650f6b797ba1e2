package searchtree

import "golang.org/x/exp/constraints"

// LinearContains reports whether key occurs in items. O(n).
func LinearContains[T comparable](items []T, key T) bool {
	for _, item := range items {
		if item == key {
			return true
		}
	}

	return false
}

// BinaryContains reports whether key occurs in sorted, which must be in
// ascending order. O(log n).
func BinaryContains[T constraints.Ordered](sorted []T, key T) bool {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case sorted[mid] < key:
			low = mid + 1
		case sorted[mid] > key:
			high = mid - 1
		default:
			return true
		}
	}

	return false
}
