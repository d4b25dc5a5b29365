// Package markov is an in-memory toolkit for discrete-time, discrete-state
// Markov chains — from transition-matrix primitives to random walks with
// per-edge action dispatch.
//
// 🚀 What is markov?
//
//	A small, deterministic-by-request library that brings together:
//		• Matrix primitives: dense row-major storage, row views, determinant
//		• Sampling: inverse-CDF next-state draws from any transition row
//		• Path scoring: probability of a known state sequence
//		• Classification: absorbing-state detection with tolerance
//		• Normalization: rescale rows into proper probability distributions
//		• Walks: repeated sampling with optional per-edge actions and
//		  caller-owned stopping predicates
//
// ✨ Why choose markov?
//
//   - Beginner-friendly – minimal API, states are plain row/column indices
//   - Reproducible – inject any random source (WithSeed / WithRand) for
//     deterministic tests and replays
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – attach side-effecting, value-folding, or dynamically
//     typed actions to any transition edge
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — dense transition-matrix storage, validation & algebra helpers
//	chain/  — sampling, path probability, absorbing detection, normalization
//	walk/   — random walks with per-edge action chains and accumulators
//
// Quick ASCII example:
//
//	    ┌─0.9─┐            ┌─1.0─┐
//	    ▼     │            ▼     │
//	   Sunny ─┴─0.1─▶ Rainy ─────┘
//
//	a two-state weather chain where Rainy is absorbing.
//
// Chains are not safe for concurrent use: a chain owns its random source
// and transition matrix exclusively, and every operation runs on the
// caller's goroutine. Wrap access externally if you must share one.
//
//	go get github.com/caveofjulian/markov
package markov
