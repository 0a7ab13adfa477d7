// Package hashing analyzes sequences with maps and sets: duplicate and
// anagram detection, frequency ranking, consecutive-run measurement,
// prefix/suffix products, and a length-prefix string codec.
//
// What
//
//   - ContainsDuplicate(values) — any value appearing twice.
//   - IsAnagram(s, t) — byte-frequency equality of two strings.
//   - GroupAnagrams(words) — bucket words by byte-frequency signature.
//   - TopKFrequent(values, k) — the k most frequent values, by count.
//   - ProductExceptSelf(values) — per-index product of all other elements,
//     without division.
//   - LongestConsecutive(values) — length of the longest run of consecutive
//     integers, in any order.
//   - Join(items) / Split(s) — reversible flattening of a string slice into
//     one string via length prefixes.
//
// Why
//
//	A map or set turns "have I seen this before" into O(1), which collapses
//	each of these scans to a single linear pass (two for the codec).
//
// Determinism
//
//	GroupAnagrams preserves first-seen order of groups and input order of
//	members. TopKFrequent orders by descending count; ties break by
//	first-seen order within a count bucket.
//
// Errors
//
//   - ErrBadEncoding — Split input that was not produced by Join.
package hashing
