package hashing

// sig is the byte-frequency signature of a string: one counter per possible
// byte value. Comparable, so it can key a map directly.
type sig [256]int

func signatureOf(s string) sig {
	var f sig
	for i := 0; i < len(s); i++ {
		f[s[i]]++
	}

	return f
}

// IsAnagram reports whether t is a rearrangement of the bytes of s.
// Comparison is byte-wise and case-sensitive. O(len(s)+len(t)) time.
func IsAnagram(s, t string) bool {
	if len(s) != len(t) {
		return false
	}

	return signatureOf(s) == signatureOf(t)
}

// GroupAnagrams partitions words into groups of mutual anagrams. Groups
// appear in order of their first member; members keep their input order.
// Returns nil for empty input. O(total bytes) time.
func GroupAnagrams(words []string) [][]string {
	if len(words) == 0 {
		return nil
	}
	index := make(map[sig]int, len(words))
	var groups [][]string
	for _, w := range words {
		key := signatureOf(w)
		g, ok := index[key]
		if !ok {
			g = len(groups)
			index[key] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], w)
	}

	return groups
}
