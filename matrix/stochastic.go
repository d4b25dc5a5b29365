// Package matrix: stochastic-matrix helpers.
// These are the primitives the chain package builds Normalize and
// classification on: negativity scan, row sums, in-place row scaling.
package matrix

// HasNegative reports whether any entry of the matrix is negative.
// A transition matrix must be non-negative; this is the scan Normalize
// performs before touching any row.
// Complexity: O(r*c).
func (m *Dense) HasNegative() bool {
	for _, v := range m.data {
		if v < 0 {
			return true
		}
	}

	return false
}

// RowSum returns the sum of all entries in row i.
// Panics on an out-of-range i (native index fault, same policy as Row).
// Complexity: O(c).
func (m *Dense) RowSum(i int) float64 {
	var sum float64
	for _, v := range m.Row(i) {
		sum += v
	}

	return sum
}

// ScaleRow divides every entry of row i by div, in place.
// Division (rather than multiplication by 1/div) keeps rows of equal
// entries exact after rescaling. Panics on an out-of-range i.
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, div float64) {
	row := m.Row(i)
	for j := range row {
		row[j] /= div
	}
}
