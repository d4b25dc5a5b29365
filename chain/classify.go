// Package chain: state classification.
package chain

import "math"

// IsAbsorbing reports whether state is absorbing: its self-transition
// probability is 1 within DefaultTolerance. An absorbing state still
// transitions (to itself) on every step — it is not a dead end.
// Panics on an out-of-range state.
// Complexity: O(1).
func (c *Chain) IsAbsorbing(state int) bool {
	return c.IsAbsorbingTol(state, DefaultTolerance)
}

// IsAbsorbingTol reports whether |T[state][state] - 1| < tol.
// Panics on an out-of-range state.
// Complexity: O(1).
func (c *Chain) IsAbsorbingTol(state int, tol float64) bool {
	return math.Abs(c.m.Row(state)[state]-1) < tol
}

// IsRecurrent reports whether the chain returns to state with probability 1.
//
// Not implemented: no algorithm is settled here yet (the standard route is
// communicating-class analysis). Fails explicitly with ErrNotImplemented
// rather than guessing.
func (c *Chain) IsRecurrent(state int) (bool, error) {
	return false, ErrNotImplemented
}

// IsTransient reports whether the chain may leave state forever.
//
// Not implemented: see IsRecurrent. Fails with ErrNotImplemented.
func (c *Chain) IsTransient(state int) (bool, error) {
	return false, ErrNotImplemented
}

// MeanStepsToAbsorption returns the expected number of steps from state
// until an absorbing state is reached.
//
// Not implemented: the standard route is the fundamental matrix
// N = (I - Q)⁻¹ of the absorbing-chain canonical form. Fails with
// ErrNotImplemented.
func (c *Chain) MeanStepsToAbsorption(state int) (float64, error) {
	return 0, ErrNotImplemented
}
