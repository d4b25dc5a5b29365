// Package chain: path-probability scoring.
package chain

// PathProbability returns the probability of observing the exact state
// sequence states[0] → states[1] → … → states[k]: the product of the
// consecutive one-step transition probabilities.
//
// A single-state sequence yields 1.0 (the empty product). An empty
// sequence is a structurally invalid request and fails with ErrEmptyPath.
// State indices are not bounds-checked: out-of-range panics.
// Complexity: O(k) time, O(1) space.
func (c *Chain) PathProbability(states []int) (float64, error) {
	if len(states) < 1 {
		return 0, ErrEmptyPath
	}

	p := 1.0
	for i := 0; i < len(states)-1; i++ {
		p *= c.m.Row(states[i])[states[i+1]]
	}

	return p, nil
}

// PathProbabilityFrom returns the probability of walking the continuation
// sequence starting from start: start → continuation[0] → … .
//
// An empty continuation yields exactly 1.0 — the walk of zero steps is
// certain. This form never fails on emptiness; the asymmetry with
// PathProbability is deliberate, since here the starting state is always
// present.
// Complexity: O(len(continuation)) time, O(1) space.
func (c *Chain) PathProbabilityFrom(start int, continuation []int) (float64, error) {
	p := 1.0
	prev := start
	for _, next := range continuation {
		p *= c.m.Row(prev)[next]
		prev = next
	}

	return p, nil
}
