// Package bsearch provides binary search over sorted integer data: the
// classic membership search, occurrence bounds, comparator-driven search,
// rotated-array variants, and a row-major sorted matrix lookup.
//
// What
//
//   - Search(values, target) — classic halving search; any matching index,
//     or -1.
//   - FirstIndex / LastIndex — leftmost / rightmost occurrence, or -1.
//   - SearchFunc(n, cmp) — comparator search over any indexed collection;
//     reports the insertion point when absent.
//   - SearchRotated(values, target) — membership in an ascending array
//     rotated at an unknown pivot (distinct elements).
//   - MinRotated(values) — minimum element of a rotated ascending array.
//   - SearchMatrix(matrix, target) — membership in a matrix whose rows are
//     sorted and consecutive, treated as one flattened sorted slice.
//
// Why
//
//   - O(log n) lookups are the payoff for keeping data sorted; every helper
//     here is a different framing of the same halving invariant.
//
// Conventions
//
//	All index-returning functions use -1 for "not present" — safe because
//	valid indices are non-negative. MinRotated returns an element value, for
//	which -1 would be ambiguous, so it reports the empty-input case through
//	ErrEmptySequence instead.
//
//	Midpoints are computed as low + (high-low)/2: floor division on
//	non-negative operands, immune to int overflow.
//
//	Sortedness is a precondition, not a checked input. Passing unsorted data
//	yields unspecified results, never a panic.
//
// Complexity
//
//   - Search, FirstIndex, LastIndex, SearchFunc, SearchRotated, MinRotated:
//     O(log n) time, O(1) memory
//   - SearchMatrix: O(log(m·n)) time, O(1) memory
//
// Errors
//
//   - ErrEmptySequence — MinRotated called with an empty slice.
package bsearch
