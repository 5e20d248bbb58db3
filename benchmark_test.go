package kdtree

import (
	"math/rand"
	"testing"
)

func generateFlatData(n, dims int) []float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n*dims)
	for i := range data {
		data[i] = rng.Float64() * 100
	}
	return data
}

// --- Construction ---

func benchBuild(b *testing.B, n int, reorder bool) {
	b.Helper()
	dims := 3
	data := generateFlatData(n, dims)
	cfg := DefaultConfig()
	cfg.Reorder = reorder
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// The input is never modified, so it is reused across iterations.
		if _, err := NewFromFlat(data, dims, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_1000(b *testing.B)            { benchBuild(b, 1000, true) }
func BenchmarkBuild_10000(b *testing.B)           { benchBuild(b, 10000, true) }
func BenchmarkBuild_100000(b *testing.B)          { benchBuild(b, 100000, true) }
func BenchmarkBuild_10000_NoReorder(b *testing.B) { benchBuild(b, 10000, false) }

// --- Queries ---

func benchKNN(b *testing.B, n, k int, reorder bool) {
	b.Helper()
	dims := 3
	cfg := DefaultConfig()
	cfg.Reorder = reorder
	tree, err := NewFromFlat(generateFlatData(n, dims), dims, cfg)
	if err != nil {
		b.Fatal(err)
	}
	queries := generateFlatData(256, dims)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := queries[(i%256)*dims : (i%256+1)*dims]
		if _, err := tree.KNN(q, k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKNN_10000_k1(b *testing.B)            { benchKNN(b, 10000, 1, true) }
func BenchmarkKNN_10000_k10(b *testing.B)           { benchKNN(b, 10000, 10, true) }
func BenchmarkKNN_100000_k10(b *testing.B)          { benchKNN(b, 100000, 10, true) }
func BenchmarkKNN_10000_k10_NoReorder(b *testing.B) { benchKNN(b, 10000, 10, false) }

func benchInRange(b *testing.B, n int, radius float64) {
	b.Helper()
	dims := 3
	tree, err := NewFromFlat(generateFlatData(n, dims), dims, DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	queries := generateFlatData(256, dims)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := queries[(i%256)*dims : (i%256+1)*dims]
		if _, err := tree.InRange(q, radius); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInRange_10000_r5(b *testing.B)  { benchInRange(b, 10000, 5) }
func BenchmarkInRange_10000_r20(b *testing.B) { benchInRange(b, 10000, 20) }
