// Package matrix: Dense storage (row-major) & accessors.
// Dense is the concrete implementation of the Matrix interface, storing
// elements in a flat slice with the explicit index formula i*cols + j.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// From2D builds a square Dense matrix from a 2D slice, deep-copying the
// input so later mutations of values never reflect into the matrix.
// Stage 1 (Validate): non-empty, rectangular, square.
// Stage 2 (Prepare): allocate flat storage.
// Stage 3 (Execute): copy row by row.
// Returns ErrEmptyMatrix, ErrNonRectangular or ErrNonSquare.
// Complexity: O(n²) time and memory.
func From2D(values [][]float64) (*Dense, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := len(values)
	for _, row := range values {
		if len(row) != len(values[0]) {
			return nil, ErrNonRectangular
		}
	}
	// Transition matrices are square by definition: one row and one column
	// per state.
	if len(values[0]) != n {
		return nil, ErrNonSquare
	}

	m := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i, row := range values {
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols) in a single call.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped) on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange (wrapped) on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns the backing slice of row i without copying.
//
// This is the sampling hot path: no bounds check beyond the native slice
// fault, no allocation. An out-of-range i panics — callers own index
// validity. Mutating the returned slice mutates the matrix.
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
