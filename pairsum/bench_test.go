package pairsum_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/pairsum"
)

// benchSlice builds an ascending slice of n elements whose only matching pair
// sits at the far end, forcing a full scan.
func benchSlice(n int) ([]int, int) {
	values := make([]int, n)
	for i := range values {
		values[i] = 2 * i // even values, ascending
	}
	// target hit only by the last two elements
	return values, values[n-2] + values[n-1]
}

// BenchmarkSearch_1k benchmarks the hash pass on 1 000 elements.
func BenchmarkSearch_1k(b *testing.B) {
	values, target := benchSlice(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pairsum.Search(values, target); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkSearch_100k benchmarks the hash pass on 100 000 elements.
func BenchmarkSearch_100k(b *testing.B) {
	values, target := benchSlice(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pairsum.Search(values, target); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkSearchSorted_100k benchmarks the two-pointer pass on sorted input.
func BenchmarkSearchSorted_100k(b *testing.B) {
	values, target := benchSlice(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pairsum.SearchSorted(values, target); err != nil {
			b.Fatalf("SearchSorted failed: %v", err)
		}
	}
}

// BenchmarkTriplets_1k benchmarks the quadratic sweep on 1 000 elements.
func BenchmarkTriplets_1k(b *testing.B) {
	values, _ := benchSlice(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pairsum.Triplets(values, 0)
	}
}
