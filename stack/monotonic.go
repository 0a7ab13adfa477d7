package stack

// DailyTemperatures returns, for each position i, the number of positions
// until the next strictly greater value, or 0 when no greater value follows.
// A monotonic stack of pending indices resolves each entry exactly once:
// O(n) time, O(n) memory. Returns nil for empty input.
func DailyTemperatures(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	out := make([]int, len(values))
	pending := make([]int, 0, len(values)) // indices with no greater value seen yet
	for i, v := range values {
		for len(pending) > 0 && values[pending[len(pending)-1]] < v {
			j := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			out[j] = i - j
		}
		pending = append(pending, i)
	}

	return out
}

// LargestRectangle — largest rectangle under a histogram
//
// Description:
//
//	Sweep the bars keeping a stack of (start index, height) pairs with
//	strictly increasing heights. A bar lower than the stack top closes every
//	taller pending rectangle; the new bar then extends left to the earliest
//	index it displaced. Pending rectangles close against the right edge.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)

// LargestRectangle returns the area of the largest axis-aligned rectangle
// that fits under the histogram described by heights (bar width 1).
// Returns 0 for empty input.
func LargestRectangle(heights []int) int {
	type bar struct {
		start  int
		height int
	}
	pending := make([]bar, 0, len(heights))
	best := 0

	for i, h := range heights {
		start := i
		for len(pending) > 0 && pending[len(pending)-1].height > h {
			top := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			if area := top.height * (i - top.start); area > best {
				best = area
			}
			start = top.start // the new bar extends back over the popped span
		}
		pending = append(pending, bar{start: start, height: h})
	}
	for _, top := range pending {
		if area := top.height * (len(heights) - top.start); area > best {
			best = area
		}
	}

	return best
}
