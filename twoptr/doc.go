// Package twoptr implements converging-pointer scans: one cursor from each
// end of a slice or string, moved inward by a rule that preserves the answer.
//
// What
//
//   - IsPalindrome(s) — case-insensitive palindrome test over the
//     alphanumeric characters of s, ignoring everything else.
//   - MaxArea(heights) — the largest water area between any two vertical
//     lines, area = min(height) × distance.
//   - TrapWater(heights) — total rain water trapped between bars of an
//     elevation profile.
//
// Why
//
//	Each problem has an exchange argument showing the pointer on the smaller
//	boundary can be advanced without discarding the optimum, turning an
//	O(n²) pair enumeration into one linear pass with O(1) memory.
//
// Complexity
//
//	All functions: O(n) time, O(1) memory.
//
// No errors: every input, including empty, has a well-defined answer.
package twoptr
