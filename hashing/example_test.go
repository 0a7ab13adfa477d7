package hashing_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/hashing"
)

// ExampleGroupAnagrams buckets words by their byte-frequency signature.
func ExampleGroupAnagrams() {
	groups := hashing.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"})
	for _, g := range groups {
		fmt.Println(g)
	}
	// Output:
	// [eat tea ate]
	// [tan nat]
	// [bat]
}

// ExampleTopKFrequent ranks values by occurrence count.
func ExampleTopKFrequent() {
	fmt.Println(hashing.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2))
	// Output:
	// [1 2]
}

// ExampleProductExceptSelf computes all-but-self products without division.
func ExampleProductExceptSelf() {
	fmt.Println(hashing.ProductExceptSelf([]int{1, 2, 3, 4}))
	// Output:
	// [24 12 8 6]
}

// ExampleLongestConsecutive measures the longest run hidden in an unsorted
// slice.
func ExampleLongestConsecutive() {
	fmt.Println(hashing.LongestConsecutive([]int{100, 4, 200, 1, 3, 2}))
	// Output:
	// 4
}

// ExampleJoin shows the reversible length-prefix encoding, safe even when
// payloads contain the delimiter.
func ExampleJoin() {
	encoded := hashing.Join([]string{"we", "say", ":", "yes"})
	fmt.Println(encoded)

	decoded, err := hashing.Split(encoded)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(decoded)
	// Output:
	// 2#we3#say1#:3#yes
	// [we say : yes]
}
