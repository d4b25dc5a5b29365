// Package chain: Chain construction and the sampling engine.
package chain

import (
	"github.com/caveofjulian/markov/matrix"
)

// Chain binds a square transition matrix to a uniform random source.
//
// T[i][j] holds the probability of moving from state i to state j; rows
// conceptually sum to 1 (enforced only by Normalize, never by
// construction — sub-stochastic rows are a legal dead-end device).
//
// A Chain is not safe for concurrent use.
type Chain struct {
	m   *matrix.Dense // transition probabilities, owned by the chain
	src Source        // uniform [0,1) draws, owned by the chain
}

// New constructs a Chain over m.
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Prepare): resolve options onto defaults.
// Stage 3 (Finalize): return the assembled chain.
// Returns ErrNilMatrix or matrix.ErrNonSquare.
// Complexity: O(len(opts)) time, O(1) space.
func New(m *matrix.Dense, opts ...Option) (*Chain, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return nil, matrix.ErrNonSquare
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Chain{m: m, src: o.Src}, nil
}

// NewFrom2D constructs a Chain directly from a 2D probability slice.
// The slice is deep-copied (see matrix.From2D); later mutations of values
// never reflect into the chain.
// Returns matrix.ErrEmptyMatrix, matrix.ErrNonRectangular or
// matrix.ErrNonSquare.
// Complexity: O(n²) time and memory.
func NewFrom2D(values [][]float64, opts ...Option) (*Chain, error) {
	m, err := matrix.From2D(values)
	if err != nil {
		return nil, err
	}

	return New(m, opts...)
}

// Matrix returns the chain's transition matrix. The chain retains
// ownership: mutating it mid-walk is legal but races with nothing only
// because chains are single-goroutine by contract.
func (c *Chain) Matrix() *matrix.Dense { return c.m }

// States returns the number of states N; valid indices are [0, N).
func (c *Chain) States() int { return c.m.Rows() }

// TrySample draws the next state from the given one.
//
// Inverse-CDF scan: draw r ∈ [0,1), then walk the row keeping a running
// sum; the first column whose cumulative mass exceeds r is the successor.
// Returns (next, true) on success, or (state, false) when the row's mass
// is exhausted before covering the draw — no feasible transition.
//
// No bounds check on state: out-of-range panics (fatal index fault).
// Complexity: O(N) time, O(1) space.
func (c *Chain) TrySample(state int) (int, bool) {
	r := c.src.Float64()
	var sum float64
	for j, p := range c.m.Row(state) {
		sum += p
		if r < sum {
			return j, true
		}
	}

	// Row mass exhausted: sub-stochastic row or floating shortfall.
	return state, false
}

// Sample draws the next state from the given one, without a failure
// signal: when no feasible transition exists the input state is handed
// back unchanged. Callers who must distinguish a dead end from a
// self-loop use TrySample.
// Complexity: O(N) time, O(1) space.
func (c *Chain) Sample(state int) int {
	next, _ := c.TrySample(state)

	return next
}

// SampleSteps applies Sample repeatedly, `steps` times, and returns the
// final state reached. If some intermediate step has no feasible
// transition the walk silently stops advancing and the latest
// successfully reached state is returned — the last state is always
// handed back, even if the walk ended prematurely. Use TrySampleSteps
// for the strict form.
// Complexity: O(steps·N) time, O(1) space.
func (c *Chain) SampleSteps(state, steps int) int {
	cur := state
	var next int
	var ok bool
	for i := 0; i < steps; i++ {
		if next, ok = c.TrySample(cur); !ok {
			return cur
		}
		cur = next
	}

	return cur
}

// TrySampleSteps applies TrySample repeatedly, `steps` times.
// Unlike SampleSteps it aborts the whole sequence on the first exhausted
// row: it returns (lastReached, false) and the partial progress is not
// meant to be trusted. On success it returns (final, true).
// Complexity: O(steps·N) time, O(1) space.
func (c *Chain) TrySampleSteps(state, steps int) (int, bool) {
	cur := state
	var next int
	var ok bool
	for i := 0; i < steps; i++ {
		if next, ok = c.TrySample(cur); !ok {
			return cur, false
		}
		cur = next
	}

	return cur, true
}
