package hashing_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContainsDuplicate covers hit, miss, and degenerate inputs.
func TestContainsDuplicate(t *testing.T) {
	assert.True(t, hashing.ContainsDuplicate([]int{1, 2, 3, 1}))
	assert.False(t, hashing.ContainsDuplicate([]int{1, 2, 3, 4}))
	assert.False(t, hashing.ContainsDuplicate(nil))
	assert.False(t, hashing.ContainsDuplicate([]int{7}))
	assert.True(t, hashing.ContainsDuplicate([]int{0, 0}))
}

// TestIsAnagram covers matches, mismatches, and length short-circuit.
func TestIsAnagram(t *testing.T) {
	assert.True(t, hashing.IsAnagram("anagram", "nagaram"))
	assert.False(t, hashing.IsAnagram("rat", "car"))
	assert.True(t, hashing.IsAnagram("", ""))
	assert.False(t, hashing.IsAnagram("ab", "abb"), "length mismatch")
	assert.False(t, hashing.IsAnagram("aA", "aa"), "comparison is case-sensitive")
}

// TestGroupAnagrams verifies grouping, group order, and member order.
func TestGroupAnagrams(t *testing.T) {
	got := hashing.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"})
	want := [][]string{
		{"eat", "tea", "ate"},
		{"tan", "nat"},
		{"bat"},
	}
	assert.Equal(t, want, got)

	assert.Nil(t, hashing.GroupAnagrams(nil))
	assert.Equal(t, [][]string{{""}}, hashing.GroupAnagrams([]string{""}))
}

// TestTopKFrequent verifies count ordering, tie handling, and clamping.
func TestTopKFrequent(t *testing.T) {
	got := hashing.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2)
	assert.Equal(t, []int{1, 2}, got)

	// ties keep first-seen order inside a count bucket
	got = hashing.TopKFrequent([]int{5, 9, 5, 9, 4}, 3)
	assert.Equal(t, []int{5, 9, 4}, got)

	assert.Equal(t, []int{7}, hashing.TopKFrequent([]int{7}, 10), "k clamps to distinct count")
	assert.Nil(t, hashing.TopKFrequent([]int{1, 2}, 0))
	assert.Nil(t, hashing.TopKFrequent(nil, 3))
}

// TestProductExceptSelf covers the standard case, zeros, and negatives.
func TestProductExceptSelf(t *testing.T) {
	assert.Equal(t, []int{24, 12, 8, 6}, hashing.ProductExceptSelf([]int{1, 2, 3, 4}))
	assert.Equal(t, []int{0, 0, -9, 0, 0}, hashing.ProductExceptSelf([]int{1, 1, 0, -3, 3}))
	assert.Equal(t, []int{0, 0}, hashing.ProductExceptSelf([]int{0, 0}), "two zeros zero everything")
	assert.Equal(t, []int{-6, 2, -3}, hashing.ProductExceptSelf([]int{1, -3, 2}))
	assert.Equal(t, []int{1}, hashing.ProductExceptSelf([]int{42}), "empty product is 1")
	assert.Nil(t, hashing.ProductExceptSelf(nil))
}

// TestLongestConsecutive covers scattered runs, duplicates, and empties.
func TestLongestConsecutive(t *testing.T) {
	assert.Equal(t, 4, hashing.LongestConsecutive([]int{100, 4, 200, 1, 3, 2}), "run 1..4")
	assert.Equal(t, 9, hashing.LongestConsecutive([]int{0, 3, 7, 2, 5, 8, 4, 6, 0, 1}), "run 0..8, duplicate 0")
	assert.Equal(t, 1, hashing.LongestConsecutive([]int{10}))
	assert.Equal(t, 0, hashing.LongestConsecutive(nil))
	assert.Equal(t, 3, hashing.LongestConsecutive([]int{-2, -3, -1}), "negative runs count too")
}

// TestJoinSplit_RoundTrip verifies the codec over hostile payloads.
func TestJoinSplit_RoundTrip(t *testing.T) {
	cases := [][]string{
		{"neet", "code", "love", "you"},
		{"we", "say", ":", "yes"},
		{""},
		{"", "", ""},
		{"3#foo", "#", "12#"}, // payloads that mimic the wire format
		{"péché", "\x00\xff"}, // multi-byte and non-UTF8 payloads
		nil,
	}
	for _, items := range cases {
		got, err := hashing.Split(hashing.Join(items))
		require.NoError(t, err, "items %q", items)
		if len(items) == 0 {
			assert.Nil(t, got)
			continue
		}
		assert.Equal(t, items, got, "items %q", items)
	}
}

// TestSplit_Malformed verifies ErrBadEncoding on inputs Join cannot produce.
func TestSplit_Malformed(t *testing.T) {
	for _, s := range []string{
		"abc",      // no length prefix
		"#abc",     // empty prefix
		"5#ab",     // truncated payload
		"2x#ab",    // non-numeric prefix
		"3#foo4#x", // trailing truncation after a valid item
	} {
		_, err := hashing.Split(s)
		assert.ErrorIs(t, err, hashing.ErrBadEncoding, "input %q", s)
	}
}
