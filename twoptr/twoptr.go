package twoptr

// IsPalindrome reports whether the alphanumeric characters of s, compared
// case-insensitively, read the same forwards and backwards. Non-alphanumeric
// bytes are skipped, so phrases and punctuation are handled naturally; the
// empty string (or one with no alphanumerics) is a palindrome.
func IsPalindrome(s string) bool {
	l, r := 0, len(s)-1
	for l < r {
		for l < r && !isAlnum(s[l]) {
			l++
		}
		for l < r && !isAlnum(s[r]) {
			r--
		}
		if toLower(s[l]) != toLower(s[r]) {
			return false
		}
		l++
		r--
	}

	return true
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}

// MaxArea returns the largest rectangular water area held between two lines
// of the profile: min(heights[l], heights[r]) * (r - l) over all pairs.
// The pointer at the lower line moves inward each step; keeping it could
// never beat the current area, since width only shrinks. Returns 0 for
// fewer than two lines.
func MaxArea(heights []int) int {
	best := 0
	l, r := 0, len(heights)-1
	for l < r {
		h := heights[l]
		if heights[r] < h {
			h = heights[r]
		}
		if area := h * (r - l); area > best {
			best = area
		}
		if heights[l] < heights[r] {
			l++
		} else {
			r--
		}
	}

	return best
}

// TrapWater returns the total volume of rain water trapped by the elevation
// profile. The pointer on the side with the lower running maximum advances;
// water above it is bounded by that maximum, because a taller wall is known
// to exist on the far side. Returns 0 for profiles shorter than three bars.
func TrapWater(heights []int) int {
	if len(heights) == 0 {
		return 0
	}
	l, r := 0, len(heights)-1
	maxL, maxR := 0, 0
	total := 0
	for l < r {
		if heights[l] < heights[r] {
			if heights[l] >= maxL {
				maxL = heights[l]
			} else {
				total += maxL - heights[l]
			}
			l++
		} else {
			if heights[r] >= maxR {
				maxR = heights[r]
			} else {
				total += maxR - heights[r]
			}
			r--
		}
	}

	return total
}
