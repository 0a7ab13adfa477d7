package bsearch_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/bsearch"
)

// benchmarkSearch runs Search over n ascending elements, alternating between
// a present and an absent target so both exit paths are measured.
func benchmarkSearch(b *testing.B, n int) {
	values := make([]int, n)
	for i := range values {
		values[i] = 2 * i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bsearch.Search(values, 2*(i%n))   // hit
		_ = bsearch.Search(values, 2*(i%n)+1) // miss
	}
}

// BenchmarkSearch_1k benchmarks membership search on 1 000 elements.
func BenchmarkSearch_1k(b *testing.B) { benchmarkSearch(b, 1_000) }

// BenchmarkSearch_1M benchmarks membership search on 1 000 000 elements.
func BenchmarkSearch_1M(b *testing.B) { benchmarkSearch(b, 1_000_000) }

// BenchmarkSearchRotated_1M benchmarks the rotated variant at the same scale.
func BenchmarkSearchRotated_1M(b *testing.B) {
	const n = 1_000_000
	values := make([]int, n)
	for i := range values {
		values[i] = (i + n/3) % n // distinct, rotated by n/3
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bsearch.SearchRotated(values, i%n)
	}
}
