package hashing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadEncoding indicates Split input that does not follow the Join format.
var ErrBadEncoding = errors.New("hashing: malformed length-prefix encoding")

// Join flattens items into a single string, prefixing each item with its
// byte length and a '#': "3#foo0#5#ab#cd". The payload may contain any bytes,
// including '#' and further digits, because decoding always consumes exactly
// the declared length. Join(nil) == "".
func Join(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(strconv.Itoa(len(item)))
		b.WriteByte('#')
		b.WriteString(item)
	}

	return b.String()
}

// Split reverses Join. It returns ErrBadEncoding when a length prefix is
// missing, non-numeric, or declares more bytes than remain. Split("") yields
// an empty (nil) slice.
func Split(s string) ([]string, error) {
	var out []string
	for i := 0; i < len(s); {
		sep := strings.IndexByte(s[i:], '#')
		if sep <= 0 {
			return nil, fmt.Errorf("%w: missing length prefix at offset %d", ErrBadEncoding, i)
		}
		length, err := strconv.Atoi(s[i : i+sep])
		if err != nil || length < 0 {
			return nil, fmt.Errorf("%w: bad length prefix at offset %d", ErrBadEncoding, i)
		}
		start := i + sep + 1
		if start+length > len(s) {
			return nil, fmt.Errorf("%w: truncated payload at offset %d", ErrBadEncoding, start)
		}
		out = append(out, s[start:start+length])
		i = start + length
	}

	return out, nil
}
