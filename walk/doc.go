// Package walk drives random walks over a markov chain and dispatches
// caller-supplied actions on every transition edge taken.
//
// 🚀 What is walk?
//
//	A walk repeatedly asks the chain for the next state and stops when no
//	feasible transition exists (an exhausted row) or, for accumulator
//	walks, when a caller-supplied stopping predicate fires. Actions live
//	in an N×N table aligned index-for-index with the transition matrix:
//	Actions[i][j] runs if and only if the walk moves from i to j.
//
// Three chain flavors, by what each edge dispatch does:
//
//   - Actions       — zero-argument procedures, invoked for effect only.
//   - Fold[T]       — functions T → T folding a typed accumulator; the
//     caller seeds the initial value and owns the stopping predicate.
//   - Dynamic       — functions any → any threading an opaque value; the
//     first invocation of a walk receives nil.
//
// ⚙️ Stopping semantics (Fold and Dynamic):
//
//	The predicate is evaluated against the current accumulator BEFORE each
//	step is taken — that is, after the previous action fired and before
//	the next transition is sampled. When it signals true the walk stops
//	immediately without taking that step.
//
// There is no step budget and no cycle limit: a chain whose graph cycles
// with no dead end, driven with a predicate that never fires, runs
// forever. The caller owns termination policy.
//
// Action tables are NOT validated against the matrix dimensions at
// construction; a mismatched table surfaces as a fatal index fault at
// dispatch time, consistent with the chain's no-bounds-checking policy.
// Nil entries are legal and simply skipped.
//
// See examples in example_test.go.
package walk
