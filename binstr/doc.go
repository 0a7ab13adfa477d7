// Package binstr performs arithmetic on binary digit strings — numbers
// written as '0'/'1' text of arbitrary length, most significant bit first.
//
// What
//
//   - Add(a, b) — ripple-carry addition of two binary strings.
//   - Normalize(s) — strip redundant leading zeros, keeping at least one
//     digit.
//
// Why
//
//	Text-encoded binary integers have no width limit, so addition must walk
//	the digits itself instead of round-tripping through machine integers.
//
// Conventions
//
//	Operands are validated: any byte outside '0'/'1' yields ErrNotBinary.
//	An empty operand contributes no digits and is treated as zero.
//	Results carry no leading zeros beyond those present in the wider operand;
//	use Normalize for a canonical form.
//
// Complexity
//
//	Add: O(max(len(a), len(b))) time and memory.
//
// Errors
//
//   - ErrNotBinary — an operand contains a byte other than '0' or '1'.
package binstr
