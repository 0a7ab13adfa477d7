// Package pairsum result types and error definitions.
package pairsum

import "errors"

// ErrNoPair indicates that no two distinct positions in the input sum to the
// target. Callers must treat this as an expected outcome, not a failure.
var ErrNoPair = errors.New("pairsum: no pair sums to target")

// Pair is an ordered pair of distinct indices into the input slice.
// I is always strictly less than J.
type Pair struct {
	// I is the index of the earlier element (the stored complement).
	I int

	// J is the index of the later element (the position that closed the pair).
	J int
}
