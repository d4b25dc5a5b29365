// Package chain: row normalization.
package chain

// Normalize rescales every row of the transition matrix so its entries
// sum to 1, in place.
//
// Stage 1 (Validate): scan the whole matrix for negative entries; if any
// is found, fail with ErrNegativeProbability and leave the matrix
// untouched — validation strictly precedes the first write.
// Stage 2 (Execute): divide each row by its sum.
//
// Rows summing to zero are left unchanged: an all-zero row is the
// dead-end (no feasible transition) modeling device, and there is no
// distribution to rescale it into. Applying Normalize twice is
// idempotent — rows already summing to 1 divide by 1.
// Complexity: O(N²) time, O(1) space.
func (c *Chain) Normalize() error {
	if c.m.HasNegative() {
		return ErrNegativeProbability
	}

	var i int
	var sum float64
	for i = 0; i < c.m.Rows(); i++ {
		if sum = c.m.RowSum(i); sum == 0 {
			continue
		}
		c.m.ScaleRow(i, sum)
	}

	return nil
}
