package binstr

import (
	"errors"
	"fmt"
)

// ErrNotBinary indicates an operand byte outside '0'/'1'.
var ErrNotBinary = errors.New("binstr: operand is not a binary string")

// Add — ripple-carry binary addition
//
// Description:
//
//	Walk both operands right to left, summing one digit from each plus the
//	incoming carry. Each step emits total%2 and carries total/2 forward;
//	the loop runs until both operands and the carry are exhausted.
//
//	Truth table per digit:
//	  a b   sum carry
//	  0 0   0   0
//	  0 1   1   0
//	  1 0   1   0
//	  1 1   0   1
//
// Complexity:
//
//	Time   = O(max(len(a), len(b)))
//	Memory = O(max(len(a), len(b)))

// Add returns the binary sum of a and b, most significant bit first.
// Operands are validated up front; an empty operand is treated as zero.
// Add("11", "1") == "100".
func Add(a, b string) (string, error) {
	if err := validate(a); err != nil {
		return "", err
	}
	if err := validate(b); err != nil {
		return "", err
	}

	// result has at most one digit more than the wider operand
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	buf := make([]byte, 0, n+1)

	carry := 0
	for i, j := len(a)-1, len(b)-1; i >= 0 || j >= 0 || carry > 0; {
		total := carry
		if i >= 0 {
			total += int(a[i] - '0')
			i--
		}
		if j >= 0 {
			total += int(b[j] - '0')
			j--
		}
		buf = append(buf, byte('0'+total%2))
		carry = total / 2
	}
	if len(buf) == 0 {
		// both operands empty
		return "0", nil
	}

	// digits were emitted least significant first
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf), nil
}

// Normalize strips redundant leading zeros from a binary string, keeping a
// single "0" for zero. An empty operand normalizes to "0".
func Normalize(s string) (string, error) {
	if err := validate(s); err != nil {
		return "", err
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			return s[i:], nil
		}
	}

	return "0", nil
}

// validate rejects any byte outside '0'/'1'.
func validate(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return fmt.Errorf("%w: byte %q at position %d", ErrNotBinary, s[i], i)
		}
	}

	return nil
}
