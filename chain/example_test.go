// File: chain/example_test.go
package chain_test

import (
	"fmt"

	"github.com/caveofjulian/markov/chain"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Sample
////////////////////////////////////////////////////////////////////////////////

// ExampleChain_Sample demonstrates deterministic next-state sampling on a
// two-state flip-flop chain.
// Scenario:
//
//   - Matrix [[0,1],[1,0]]: state 0 always moves to 1, state 1 back to 0.
//   - Whatever the random draw, the successor is forced.
//
// Complexity: O(N) per draw, Memory: O(1)
func ExampleChain_Sample() {
	c, _ := chain.NewFrom2D([][]float64{
		{0, 1},
		{1, 0},
	}, chain.WithSeed(1))

	fmt.Println("from 0:", c.Sample(0))
	fmt.Println("from 1:", c.Sample(1))
	fmt.Println("after 5 steps from 0:", c.SampleSteps(0, 5))

	// Output:
	// from 0: 1
	// from 1: 0
	// after 5 steps from 0: 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: PathProbability
////////////////////////////////////////////////////////////////////////////////

// ExampleChain_PathProbability demonstrates scoring a known state
// sequence under a weather chain.
// Scenario:
//
//   - States: 0 = Sunny, 1 = Rainy.
//   - Sunny→Sunny 0.9, Sunny→Rainy 0.1, Rainy→Rainy 0.5.
//   - The three-day forecast Sunny→Sunny→Rainy costs 0.9 × 0.1.
func ExampleChain_PathProbability() {
	c, _ := chain.NewFrom2D([][]float64{
		{0.9, 0.1},
		{0.5, 0.5},
	}, chain.WithSeed(1))

	p, _ := c.PathProbability([]int{0, 0, 1})
	fmt.Printf("P(Sunny,Sunny,Rainy) = %.2f\n", p)

	// An empty continuation is the certain zero-step walk.
	one, _ := c.PathProbabilityFrom(0, nil)
	fmt.Println("P(stay put, no steps) =", one)

	// Output:
	// P(Sunny,Sunny,Rainy) = 0.09
	// P(stay put, no steps) = 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: Normalize
////////////////////////////////////////////////////////////////////////////////

// ExampleChain_Normalize demonstrates turning raw transition counts into a
// proper probability matrix.
// Scenario:
//
//   - Row 0 holds observation counts {6, 2}; Normalize rescales to {0.75, 0.25}.
//   - The all-zero row 1 is a deliberate dead end and stays unchanged.
func ExampleChain_Normalize() {
	c, _ := chain.NewFrom2D([][]float64{
		{6, 2},
		{0, 0},
	}, chain.WithSeed(1))

	_ = c.Normalize()
	fmt.Print(c.Matrix())

	// Output:
	// [0.75, 0.25]
	// [0, 0]
}
