package pairsum

import "sort"

// Triplets returns every unique triplet of values (not indices) summing to
// target. Each triplet is sorted ascending, and triplets appear in ascending
// lexicographic order. Returns nil when no triplet exists or the input has
// fewer than three elements.
//
// The input is never mutated; the sweep runs over a sorted copy.
//
// Complexity: O(n²) time after an O(n log n) sort, O(n) memory for the copy.
func Triplets(values []int, target int) [][3]int {
	if len(values) < 3 {
		return nil
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	var out [][3]int
	for a := 0; a < len(sorted)-2; a++ {
		// skip duplicate anchors: each distinct anchor value is swept once
		if a > 0 && sorted[a] == sorted[a-1] {
			continue
		}
		lo, hi := a+1, len(sorted)-1
		for lo < hi {
			sum := sorted[a] + sorted[lo] + sorted[hi]
			switch {
			case sum < target:
				lo++
			case sum > target:
				hi--
			default:
				out = append(out, [3]int{sorted[a], sorted[lo], sorted[hi]})
				lo++
				for lo < hi && sorted[lo] == sorted[lo-1] {
					lo++
				}
			}
		}
	}

	return out
}
