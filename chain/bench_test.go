package chain_test

import (
	"math/rand"
	"testing"

	"github.com/caveofjulian/markov/chain"
)

// benchmarkChain builds an n-state chain with uniform rows and a fixed seed.
// It fails the benchmark on construction errors instead of skipping.
func benchmarkChain(b *testing.B, n int) *chain.Chain {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1 / float64(n) // uniform distribution per row
		}
	}
	c, err := chain.NewFrom2D(rows, chain.WithSeed(1))
	if err != nil {
		b.Fatalf("NewFrom2D failed: %v", err)
	}

	return c
}

// BenchmarkSample_Small benchmarks single draws over a 10-state chain.
func BenchmarkSample_Small(b *testing.B) {
	c := benchmarkChain(b, 10)
	b.ResetTimer()
	state := 0
	for i := 0; i < b.N; i++ {
		state = c.Sample(state)
	}
}

// BenchmarkSample_Large benchmarks single draws over a 1000-state chain,
// exercising the O(N) row scan.
func BenchmarkSample_Large(b *testing.B) {
	c := benchmarkChain(b, 1000)
	b.ResetTimer()
	state := 0
	for i := 0; i < b.N; i++ {
		state = c.Sample(state)
	}
}

// BenchmarkSampleSteps benchmarks 100-step walks over a 100-state chain.
func BenchmarkSampleSteps(b *testing.B) {
	c := benchmarkChain(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.SampleSteps(i%100, 100)
	}
}

// BenchmarkPathProbability benchmarks scoring a 100-state path.
func BenchmarkPathProbability(b *testing.B) {
	c := benchmarkChain(b, 100)
	r := rand.New(rand.NewSource(2))
	path := make([]int, 100)
	for i := range path {
		path[i] = r.Intn(100)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.PathProbability(path); err != nil {
			b.Fatalf("PathProbability failed: %v", err)
		}
	}
}
