package bsearch

import "errors"

// ErrEmptySequence indicates a variant that must inspect at least one element
// was given none.
var ErrEmptySequence = errors.New("bsearch: empty sequence")

// Search — classic binary search
//
// Description:
//
//	Locate target in values, sorted non-decreasing, by repeatedly halving
//	the candidate window [low, high].
//
// Algorithm Outline:
//  1. low = 0, high = len(values)-1.
//  2. While low <= high:
//     a. mid = low + (high-low)/2   (floor division).
//     b. values[mid] == target → return mid.
//     c. values[mid] <  target → low = mid + 1.
//     d. otherwise             → high = mid - 1.
//  3. Return -1.
//
// Complexity:
//
//	Time   = O(log n)
//	Memory = O(1)

// Search returns an index m with values[m] == target, or -1 when target is
// absent. values must be sorted in non-decreasing order. With duplicates any
// matching index may be returned; use FirstIndex or LastIndex for bounds.
// An empty slice returns -1 immediately.
func Search(values []int, target int) int {
	low, high := 0, len(values)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case values[mid] == target:
			return mid
		case values[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return -1
}

// FirstIndex returns the smallest index m with values[m] == target, or -1.
// values must be sorted non-decreasing.
func FirstIndex(values []int, target int) int {
	low, high := 0, len(values)-1
	found := -1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case values[mid] == target:
			found = mid
			high = mid - 1 // keep probing left
		case values[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return found
}

// LastIndex returns the largest index m with values[m] == target, or -1.
// values must be sorted non-decreasing.
func LastIndex(values []int, target int) int {
	low, high := 0, len(values)-1
	found := -1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case values[mid] == target:
			found = mid
			low = mid + 1 // keep probing right
		case values[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return found
}

// SearchFunc searches an abstract sorted collection of n elements through a
// comparator. cmp(i) must return a negative value when element i sorts before
// the target, zero on a match, and a positive value after. It returns the
// matching index and true, or the insertion point (the index where the target
// would be placed to keep the collection sorted) and false.
func SearchFunc(n int, cmp func(int) int) (int, bool) {
	low, high := 0, n
	for low < high {
		mid := low + (high-low)/2
		c := cmp(mid)
		switch {
		case c == 0:
			return mid, true
		case c < 0:
			low = mid + 1
		default:
			high = mid
		}
	}

	return low, false
}
