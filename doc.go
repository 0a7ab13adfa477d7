// Package lvlseq is your in-memory toolbox for searching, scanning, and
// transforming sequences — integer slices, strings, and the small structures
// built on top of them.
//
// 🚀 What is lvlseq?
//
//	A companion library to lvlath (graphs) that brings together the classic
//	sequence techniques:
//		• Pair sums: hash-indexed pair search, sorted two-pointer, 3-sum
//		• Binary search: classic, occurrence bounds, rotated arrays, matrices
//		• Hash analysis: duplicates, anagrams, frequencies, consecutive runs
//		• Two pointers: palindromes, container area, trapped water
//		• Stacks: min-stack, parentheses, RPN, monotonic-stack scans
//		• Linked lists: sorted merge
//		• Versioned maps: timestamp-floor lookups via binary search
//
// ✨ Why choose lvlseq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, in-code docs, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – every function documents its complexity and edge cases
//
// Everything is organized under flat subpackages, one per technique:
//
//	pairsum/  — pair and triplet sums over integer slices
//	bsearch/  — binary search: classic, bounds, rotated, matrix, predicate
//	binstr/   — arithmetic over binary digit strings
//	hashing/  — map/set-based sequence analysis and a length-prefix codec
//	twoptr/   — converging-pointer scans over slices and strings
//	stack/    — LIFO structures and monotonic-stack algorithms
//	lists/    — sorted singly-linked lists
//	timemap/  — timestamp-versioned key-value store
//
// Quick taste:
//
//	p, err := pairsum.Search([]int{2, 7, 11, 15}, 9) // → Pair{I:0, J:1}
//	i := bsearch.Search([]int{-1, 0, 3, 5, 9, 12}, 9) // → 4
//	s, _ := binstr.Add("11", "1")                     // → "100"
//
// Every algorithm is a pure, synchronous function over caller-owned inputs;
// results never alias the input. The one stateful type (timemap.Map) locks
// itself and is safe for concurrent use.
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
