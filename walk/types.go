// Package walk: action-table and predicate types.
package walk

// EdgeFunc is a zero-argument action attached to a transition edge,
// invoked for its side effects only.
type EdgeFunc func()

// StopFunc inspects the current accumulator and reports whether the walk
// should stop before taking the next step. A nil StopFunc never stops.
type StopFunc[T any] func(acc T) bool

// Actions is an N×N table of side-effect actions aligned with the
// transition matrix: Actions[i][j] fires when a walk moves from i to j.
// Nil entries are skipped. Dimensions are not validated; a short table
// panics at dispatch (fatal index fault).
type Actions [][]EdgeFunc

// Fold is an N×N table of accumulator-folding actions: on the edge i→j
// the accumulator is replaced by Fold[i][j](acc). Nil entries leave the
// accumulator unchanged.
type Fold[T any] [][]func(T) T

// Dynamic is an N×N table of opaquely typed actions threading an `any`
// accumulator. The first action invoked in a walk receives nil; each
// action's return value feeds the next. Nil entries leave the value
// unchanged.
type Dynamic [][]func(any) any
