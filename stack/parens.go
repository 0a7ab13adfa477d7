package stack

// ValidParens reports whether s consists of correctly matched and nested
// (), [], {} brackets. Any other byte invalidates the string. The empty
// string is valid.
func ValidParens(s string) bool {
	open := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '[', '{':
			open = append(open, c)
		case ')', ']', '}':
			if len(open) == 0 || open[len(open)-1] != opener(c) {
				return false
			}
			open = open[:len(open)-1]
		default:
			return false
		}
	}

	return len(open) == 0
}

// opener maps a closing bracket to its opening partner.
func opener(c byte) byte {
	switch c {
	case ')':
		return '('
	case ']':
		return '['
	default:
		return '{'
	}
}

// GenerateParens returns every balanced sequence of n pairs of round
// brackets, in the order produced by always extending with '(' before ')'
// (lexicographic for this alphabet). n <= 0 yields nil.
//
// Backtracking invariant: a '(' may be added while fewer than n are open in
// total, a ')' only while some '(' is unclosed.
func GenerateParens(n int) []string {
	if n <= 0 {
		return nil
	}
	var out []string
	buf := make([]byte, 0, 2*n)

	var extend func(opened, closed int)
	extend = func(opened, closed int) {
		if len(buf) == 2*n {
			out = append(out, string(buf))

			return
		}
		if opened < n {
			buf = append(buf, '(')
			extend(opened+1, closed)
			buf = buf[:len(buf)-1]
		}
		if closed < opened {
			buf = append(buf, ')')
			extend(opened, closed+1)
			buf = buf[:len(buf)-1]
		}
	}
	extend(0, 0)

	return out
}
