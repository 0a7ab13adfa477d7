package hashing

// ContainsDuplicate reports whether any value occurs more than once.
// O(n) time, O(n) memory.
func ContainsDuplicate(values []int) bool {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}

	return false
}

// LongestConsecutive returns the length of the longest run of consecutive
// integers contained in values, regardless of their order. Duplicates count
// once. Returns 0 for empty input.
//
// Runs are only expanded from their left endpoint (a value whose predecessor
// is absent), so each element is visited a constant number of times: O(n)
// time, O(n) memory.
func LongestConsecutive(values []int) int {
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	best := 0
	for v := range set {
		if _, ok := set[v-1]; ok {
			continue // not a run start
		}
		length := 1
		for next := v + 1; ; next++ {
			if _, ok := set[next]; !ok {
				break
			}
			length++
		}
		if length > best {
			best = length
		}
	}

	return best
}

// TopKFrequent returns the k distinct values with the highest occurrence
// counts, most frequent first; ties keep first-seen order. k larger than the
// number of distinct values returns them all; k <= 0 returns nil.
//
// Counts are bucketed by frequency (a count can never exceed len(values)),
// so no sorting is needed: O(n) time, O(n) memory.
func TopKFrequent(values []int, k int) []int {
	if k <= 0 || len(values) == 0 {
		return nil
	}
	counts := make(map[int]int, len(values))
	order := make([]int, 0, len(values)) // distinct values, first-seen order
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	buckets := make([][]int, len(values)+1)
	for _, v := range order {
		c := counts[v]
		buckets[c] = append(buckets[c], v)
	}

	if k > len(order) {
		k = len(order)
	}
	out := make([]int, 0, k)
	for c := len(buckets) - 1; c >= 1 && len(out) < k; c-- {
		for _, v := range buckets[c] {
			if len(out) == k {
				break
			}
			out = append(out, v)
		}
	}

	return out
}

// ProductExceptSelf returns a slice where index i holds the product of every
// element except values[i], computed as a prefix-product pass followed by a
// suffix-product pass. No division is used, so zeros in the input are fine.
// Returns nil for empty input. O(n) time, O(1) memory beyond the result.
func ProductExceptSelf(values []int) []int {
	n := len(values)
	if n == 0 {
		return nil
	}
	out := make([]int, n)

	out[0] = 1
	for i := 1; i < n; i++ {
		out[i] = out[i-1] * values[i-1]
	}
	right := 1
	for i := n - 1; i >= 0; i-- {
		out[i] *= right
		right *= values[i]
	}

	return out
}
