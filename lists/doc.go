// Package lists provides a minimal singly-linked integer list and a stable
// merge of two ascending lists.
//
// What
//
//   - Node — one list cell: a value and a next pointer. A list is a *Node;
//     nil is the empty list.
//   - Merge(a, b) — splice two ascending lists into one ascending list,
//     reusing the existing nodes (no allocation).
//   - FromSlice / ToSlice — conversions for construction and inspection.
//
// Why
//
//	Merging by pointer splice keeps the operation O(1) in memory and makes
//	it the building block for merge sort over lists and k-way merges.
//
// Determinism
//
//	The merge is stable: on equal values the node from a precedes the node
//	from b.
//
// Complexity
//
//	Merge:   O(len(a)+len(b)) time, O(1) memory.
//	FromSlice, ToSlice: O(n) time and memory.
//
// Merge rewires Next pointers, so a and b must not be used as independent
// lists afterwards; the returned head owns every node.
package lists
