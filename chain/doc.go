// Package chain implements the stochastic state-transition engine for
// discrete-time, discrete-state Markov chains: next-state sampling from a
// transition matrix, multi-step traversal, path-probability scoring,
// absorbing-state detection and row normalization.
//
// 🚀 What is chain?
//
//	A Chain binds a square matrix of one-step transition probabilities to a
//	uniform random source. States are plain zero-based row/column indices.
//	Given any current state, the chain draws the next one by inverse-CDF
//	sampling over that state's row:
//
//	    r ← U[0,1); sum ← 0
//	    for each column j: sum += T[state][j]; if r < sum → j
//
//	If the row's mass is exhausted before the draw is covered (a
//	sub-stochastic row), there is no feasible transition. That outcome is
//	reported as a boolean, never as an error — dead-end rows are a normal
//	modeling device, not a fault.
//
// ✨ Key features:
//
//   - Sample / SampleSteps — non-failable forms that always hand back the
//     last state reached, even when a walk ends prematurely
//   - TrySample / TrySampleSteps — comma-ok forms that signal exhaustion
//   - PathProbability / PathProbabilityFrom — score a known state sequence
//   - IsAbsorbing — self-loop detection within a configurable tolerance
//   - Normalize — rescale rows into proper probability distributions
//
// ⚙️ Determinism:
//
//	The random source is injected at construction (WithSeed, WithRand or
//	WithSource); tests lock outcomes with a fixed seed. Without an option
//	the chain seeds itself from the wall clock.
//
// Errors (sentinel):
//
//   - ErrNilMatrix            — nil transition matrix at construction.
//   - ErrEmptyPath            — PathProbability on an empty state sequence.
//   - ErrNegativeProbability  — Normalize on a matrix with a negative entry.
//   - ErrNotImplemented       — recurrence/transience/absorption-time
//     classification, which has no settled algorithm here yet.
//
// State indices are never bounds-checked on the sampling and scoring hot
// paths: an out-of-range state is a fatal index fault, by design.
//
// A Chain is NOT safe for concurrent use: it owns its matrix and random
// source exclusively and assumes a single goroutine. Guard it externally
// if you must share one; the zero-overhead sampling path stays lock-free.
//
// See examples in example_test.go.
package chain
