package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveofjulian/markov/chain"
)

// TestNormalize_RescalesRows verifies rows are divided by their mass.
func TestNormalize_RescalesRows(t *testing.T) {
	c := mustChain(t, [][]float64{{2, 2}, {1, 3}})

	require.NoError(t, c.Normalize())

	assert.Equal(t, []float64{0.5, 0.5}, c.Matrix().Row(0))
	assert.Equal(t, []float64{0.25, 0.75}, c.Matrix().Row(1))
}

// TestNormalize_Idempotent verifies rows already summing to 1 are
// unchanged by a second call.
func TestNormalize_Idempotent(t *testing.T) {
	c := mustChain(t, [][]float64{{0.5, 0.5}, {0.25, 0.75}})

	require.NoError(t, c.Normalize())
	require.NoError(t, c.Normalize())

	assert.Equal(t, []float64{0.5, 0.5}, c.Matrix().Row(0))
	assert.Equal(t, []float64{0.25, 0.75}, c.Matrix().Row(1))
}

// TestNormalize_NegativeEntry verifies the scan-before-write contract:
// a negative entry fails with ErrNegativeProbability and the matrix is
// left fully unmodified, including rows before the offending one.
func TestNormalize_NegativeEntry(t *testing.T) {
	c := mustChain(t, [][]float64{{2, 2}, {-1, 1}})

	err := c.Normalize()
	assert.ErrorIs(t, err, chain.ErrNegativeProbability)

	assert.Equal(t, []float64{2, 2}, c.Matrix().Row(0), "row 0 must be untouched")
	assert.Equal(t, []float64{-1, 1}, c.Matrix().Row(1), "row 1 must be untouched")
}

// TestNormalize_ZeroRowUnchanged verifies the documented zero-row policy:
// an all-zero row has no distribution to rescale into and stays a
// dead-end row.
func TestNormalize_ZeroRowUnchanged(t *testing.T) {
	c := mustChain(t, [][]float64{{1, 3}, {0, 0}})

	require.NoError(t, c.Normalize())

	assert.Equal(t, []float64{0.25, 0.75}, c.Matrix().Row(0))
	assert.Equal(t, []float64{0, 0}, c.Matrix().Row(1), "zero row survives normalization")

	_, ok := c.TrySample(1)
	assert.False(t, ok, "normalized dead-end row still reports no transition")
}
