// Package walk: the walk loops.
//
// All three loops share the same skeleton: sample, stop on an exhausted
// row, dispatch the edge action, advance. They are written out separately
// rather than funneled through one generic runner so each hot loop stays
// monomorphic and allocation-free.
package walk

import "github.com/caveofjulian/markov/chain"

// Run executes a bare walk from start: repeated sampling with no action
// dispatch, terminating when no feasible transition exists. Returns the
// final state reached.
//
// A chain with no dead-end rows never terminates a bare walk; prefer
// chain.SampleSteps when a step budget is wanted.
// Complexity: O(steps·N) time, O(1) space.
func Run(c *chain.Chain, start int) int {
	cur := start
	for {
		next, ok := c.TrySample(cur)
		if !ok {
			return cur
		}
		cur = next
	}
}

// Run executes a side-effect walk from start over c: every transition
// i→j fires a[i][j] (when non-nil) for its effect. Terminates only when
// no feasible transition exists; returns the final state.
// Complexity: O(steps·N) time plus action cost, O(1) space.
func (a Actions) Run(c *chain.Chain, start int) int {
	cur := start
	for {
		next, ok := c.TrySample(cur)
		if !ok {
			return cur
		}
		if fn := a[cur][next]; fn != nil {
			fn()
		}
		cur = next
	}
}

// Run executes an accumulator walk from start over c, seeded with init.
//
// Before every step the stopping predicate is evaluated against the
// current accumulator — after the previous action fired, before the next
// transition is sampled — and a true result ends the walk without taking
// that step. On each transition i→j the accumulator is replaced by
// f[i][j](acc). Returns the final accumulator and final state.
//
// stop may be nil, in which case only an exhausted row terminates the walk.
// Complexity: O(steps·N) time plus action cost, O(1) space.
func (f Fold[T]) Run(c *chain.Chain, start int, init T, stop StopFunc[T]) (T, int) {
	acc := init
	cur := start
	for {
		if stop != nil && stop(acc) {
			return acc, cur
		}
		next, ok := c.TrySample(cur)
		if !ok {
			return acc, cur
		}
		if fn := f[cur][next]; fn != nil {
			acc = fn(acc)
		}
		cur = next
	}
}

// Run executes a dynamically typed accumulator walk from start over c.
// The accumulator begins as nil — the first action fired in a walk
// receives the absent-value marker and establishes the concrete type for
// the rest of the run. Stopping semantics match Fold.Run.
// Complexity: O(steps·N) time plus action cost, O(1) space.
func (d Dynamic) Run(c *chain.Chain, start int, stop StopFunc[any]) (any, int) {
	var acc any
	cur := start
	for {
		if stop != nil && stop(acc) {
			return acc, cur
		}
		next, ok := c.TrySample(cur)
		if !ok {
			return acc, cur
		}
		if fn := d[cur][next]; fn != nil {
			acc = fn(acc)
		}
		cur = next
	}
}
