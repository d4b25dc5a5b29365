// Package matrix: determinant via LU elimination.
package matrix

import "math"

// detPivotEps treats pivots below this magnitude as zero (singular matrix).
const detPivotEps = 1e-12

// Determinant computes det(m) by Gaussian elimination with partial
// pivoting on a scratch copy; m itself is never modified.
// Stage 1 (Validate): require a square matrix.
// Stage 2 (Prepare): copy the backing storage.
// Stage 3 (Execute): eliminate column by column, tracking row swaps.
// Stage 4 (Finalize): multiply the diagonal, apply swap parity.
// Returns ErrNonSquare on a non-square receiver; a singular matrix yields
// determinant 0 with no error.
// Complexity: O(n³) time, O(n²) memory.
func (m *Dense) Determinant() (float64, error) {
	// Validate shape
	if m.r != m.c {
		return 0, ErrNonSquare
	}
	n := m.r

	// Scratch copy: elimination is destructive
	a := make([]float64, len(m.data))
	copy(a, m.data)

	det := 1.0
	var i, j, k, pivot int
	for k = 0; k < n; k++ {
		// Partial pivoting: pick the largest magnitude in column k
		pivot = k
		for i = k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[pivot*n+k]) {
				pivot = i
			}
		}
		if math.Abs(a[pivot*n+k]) < detPivotEps {
			// Zero pivot column: singular
			return 0, nil
		}
		if pivot != k {
			// Swap rows; each swap flips the determinant sign
			for j = 0; j < n; j++ {
				a[k*n+j], a[pivot*n+j] = a[pivot*n+j], a[k*n+j]
			}
			det = -det
		}
		det *= a[k*n+k]
		// Eliminate below the pivot
		for i = k + 1; i < n; i++ {
			factor := a[i*n+k] / a[k*n+k]
			for j = k; j < n; j++ {
				a[i*n+j] -= factor * a[k*n+j]
			}
		}
	}

	return det, nil
}
