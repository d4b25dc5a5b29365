// SPDX-License-Identifier: MIT

// Package chain: core types, options and sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Exhausted transition rows are NOT errors: they surface as a false
//     comma-ok result from the Try* sampling forms.
//   - Out-of-range state indices are fatal native index faults, never
//     typed errors; the hot sampling path carries no bounds checks.

package chain

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors returned by the chain package.
var (
	// ErrNilMatrix indicates that a nil transition matrix was passed to New.
	ErrNilMatrix = errors.New("chain: nil transition matrix")

	// ErrEmptyPath indicates that a path-probability request carried no states.
	ErrEmptyPath = errors.New("chain: state path must contain at least one state")

	// ErrNegativeProbability indicates that Normalize found a negative entry.
	// The matrix is left unmodified when this is returned.
	ErrNegativeProbability = errors.New("chain: negative transition probability")

	// ErrNotImplemented marks classification operations whose algorithms are
	// intentionally unsettled (recurrence, transience, absorption time).
	// They fail explicitly rather than return a wrong answer.
	ErrNotImplemented = errors.New("chain: operation not implemented")
)

// DefaultTolerance is the floating tolerance used by IsAbsorbing when no
// explicit tolerance is supplied.
const DefaultTolerance = 1e-7

// Source supplies uniform draws in [0,1). It is the single operation the
// sampling engine consumes; *math/rand.Rand satisfies it directly.
// Implementations are expected to be cheap and are called once per step.
type Source interface {
	Float64() float64
}

// Options configures a Chain at construction.
//
// Src – the uniform random source used by every sampling operation.
//
//	Defaults to a wall-clock-seeded *rand.Rand; inject a fixed seed
//	via WithSeed for reproducible runs.
type Options struct {
	Src Source
}

// Option represents a functional option for configuring a Chain.
type Option func(*Options)

// WithSource attaches an explicit random source.
// Panics on nil; a chain without a source cannot sample.
// Complexity: O(1) time, O(1) space.
func WithSource(src Source) Option {
	if src == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("chain: WithSource(nil)")
	}
	return func(o *Options) {
		o.Src = src
	}
}

// WithRand attaches an explicit *rand.Rand.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("chain: WithRand(nil)")
	}
	return func(o *Options) {
		o.Src = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		// Seeded source → reproducible draws.
		o.Src = rand.New(rand.NewSource(seed))
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
// Use this as a starting point for further functional-option overrides.
//
// Defaults:
//   - Src: *rand.Rand seeded from the wall clock (non-reproducible).
func DefaultOptions() Options {
	return Options{
		Src: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
