// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and callers MUST check them via errors.Is. Context
// is attached at the boundary with fmt.Errorf("ctx: %w", ErrX); sentinels
// are never wrapped at definition site.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmptyMatrix indicates the input 2D slice has no rows or no columns.
	ErrEmptyMatrix = errors.New("matrix: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths in a 2D input.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")
)
