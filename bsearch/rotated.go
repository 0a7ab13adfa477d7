package bsearch

// SearchRotated — membership in a rotated ascending array
//
// Description:
//
//	values was sorted ascending with distinct elements, then rotated at an
//	unknown pivot (e.g. [4,5,6,7,0,1,2]). At every midpoint at least one of
//	the two halves is itself sorted; the target either lies inside that
//	sorted half's range or it does not, which discards half the window.
//
// Complexity:
//
//	Time   = O(log n)
//	Memory = O(1)

// SearchRotated returns the index of target in a rotated ascending slice of
// distinct elements, or -1 when absent. An unrotated slice is a valid input.
func SearchRotated(values []int, target int) int {
	low, high := 0, len(values)-1
	for low <= high {
		mid := low + (high-low)/2
		if values[mid] == target {
			return mid
		}
		if values[low] <= values[mid] {
			// left half sorted
			if values[low] <= target && target < values[mid] {
				high = mid - 1
			} else {
				low = mid + 1
			}
		} else {
			// right half sorted
			if values[mid] < target && target <= values[high] {
				low = mid + 1
			} else {
				high = mid - 1
			}
		}
	}

	return -1
}

// MinRotated returns the minimum element of a rotated ascending slice of
// distinct elements. The pivot is found by converging onto the only position
// whose element is smaller than its right boundary. Returns ErrEmptySequence
// on empty input; -1 is a legitimate element value here, so the numeric
// sentinel convention does not apply.
func MinRotated(values []int) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptySequence
	}
	low, high := 0, len(values)-1
	if values[low] <= values[high] {
		// not rotated (or single element)
		return values[low], nil
	}
	for low < high {
		mid := low + (high-low)/2
		if values[mid] > values[high] {
			low = mid + 1
		} else {
			high = mid
		}
	}

	return values[low], nil
}
