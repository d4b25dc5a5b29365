// Package matrix provides the dense transition-matrix storage used by the
// markov chain and walk packages, plus the small set of algebra and
// validation helpers a stochastic matrix needs.
//
// 🚀 What is matrix?
//
//	A row-major float64 matrix with:
//	  • Safe indexed access (At/Set return errors, never panic)
//	  • No-copy row views for hot sampling loops (Row)
//	  • Square-matrix construction from 2D slices (From2D)
//	  • Stochastic helpers: HasNegative, RowSum, ScaleRow
//	  • Determinant via LU elimination with partial pivoting
//
// ✨ Design notes:
//
//   - The public indexers At/Set validate bounds and return ErrOutOfRange.
//     Row deliberately does not: it hands out the backing row slice so the
//     sampling hot path pays zero overhead, and an out-of-range state is a
//     fatal native index fault — fail fast, never clamp.
//   - Storage is a single flat slice, offset = i*cols + j, for cache
//     friendliness and deterministic iteration order.
//   - Clone is a deep copy; mutations on a clone never reflect back.
//
// Performance:
//
//   - At/Set/Row: O(1)
//   - From2D/Clone: O(r·c)
//   - Determinant: O(n³)
//
// See examples in example_test.go.
package matrix
