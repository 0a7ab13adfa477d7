package pairsum

// Search — hash-indexed pair search
//
// Description:
//
//	Scan values once, left to right, keeping a map from each distinct value
//	to the index of its first occurrence. At position k with value v, the
//	pair is complete iff target-v has already been seen; the stored index
//	and k form the result.
//
// Algorithm Outline:
//  1. seen = empty map[int]int.
//  2. For k = 0..len(values)-1, v = values[k]:
//     a. If seen contains target-v, return Pair{seen[target-v], k}.
//     b. If seen does not contain v, record seen[v] = k.
//  3. Return ErrNoPair.
//
// Only the first index of each distinct value is recorded, so a value never
// pairs with a later occurrence of itself unless its complement appeared
// first at a different index.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)

// Search returns the indices of two distinct positions in values whose
// elements sum to target, scanning once from the left. The returned Pair has
// the smallest possible second index; ties on the second index resolve to the
// earliest occurrence of the complement. Inputs shorter than two elements
// always yield ErrNoPair.
func Search(values []int, target int) (Pair, error) {
	seen := make(map[int]int, len(values))
	for k, v := range values {
		if i, ok := seen[target-v]; ok {
			return Pair{I: i, J: k}, nil
		}
		// keep the earliest index for each distinct value
		if _, ok := seen[v]; !ok {
			seen[v] = k
		}
	}

	return Pair{}, ErrNoPair
}

// SearchSorted returns the indices of two distinct positions in an ascending
// slice whose elements sum to target, converging a pointer from each end.
// Requires values sorted in non-decreasing order; behavior on unsorted input
// is unspecified. Among all valid pairs it returns the one with the smallest
// first index, then the largest second index for that first index.
func SearchSorted(values []int, target int) (Pair, error) {
	lo, hi := 0, len(values)-1
	for lo < hi {
		sum := values[lo] + values[hi]
		switch {
		case sum == target:
			return Pair{I: lo, J: hi}, nil
		case sum < target:
			lo++
		default:
			hi--
		}
	}

	return Pair{}, ErrNoPair
}
