package bsearch

// SearchMatrix reports whether target occurs in a row-major sorted matrix:
// every row sorted ascending, and each row's first element greater than the
// previous row's last. The matrix is searched as a virtual flattened slice of
// m·n elements, mapping index k to cell [k/n][k%n].
//
// Empty matrices (no rows, or rows of zero width) never contain anything.
//
// Complexity: O(log(m·n)) time, O(1) memory.
func SearchMatrix(matrix [][]int, target int) bool {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return false
	}
	rows, cols := len(matrix), len(matrix[0])
	low, high := 0, rows*cols-1
	for low <= high {
		mid := low + (high-low)/2
		cell := matrix[mid/cols][mid%cols]
		switch {
		case cell == target:
			return true
		case cell < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return false
}
