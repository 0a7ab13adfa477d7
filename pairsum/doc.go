// Package pairsum finds positions and values in an integer slice that sum to
// a caller-supplied target: an indexed pair via hashing, a pair in a sorted
// slice via two pointers, and all unique triplets via an anchored sweep.
//
// What
//
//   - Search(values, target) — single hash-indexed pass over an arbitrary
//     slice; returns the Pair of indices (first seen, current) whose values
//     sum to target, or ErrNoPair.
//   - SearchSorted(values, target) — converging two-pointer scan over an
//     ascending slice; same Pair contract, O(1) auxiliary space.
//   - Triplets(values, target) — every unique value triplet summing to
//     target, each triplet ascending, in deterministic order.
//
// Why
//
//   - Pair search is the canonical use of a value→index map: one pass,
//     no sorting, stable earliest-match semantics.
//   - The sorted variant trades the map for pointer convergence when the
//     caller already holds sorted data.
//
// Determinism
//
//	Search returns the pair with the smallest possible second index; among
//	candidates for that second index, the first index is the earliest
//	occurrence of the complement, because only the first index of each
//	distinct value is recorded.
//
// Complexity (n = len(values))
//
//   - Search:       O(n) time, O(n) memory
//   - SearchSorted: O(n) time, O(1) memory
//   - Triplets:     O(n²) time, O(n) memory (sorted copy)
//
// Errors
//
//   - ErrNoPair — no two distinct positions sum to target. Absence is an
//     expected outcome, reported as a distinguished error rather than a
//     sentinel index pair that could collide with real positions.
//
// See also: bsearch for position lookups in sorted data.
package pairsum
