// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Allocation plumbing shared by the shortest-path engines: deep copy of an
//     input distance matrix and a renewal (predecessor) matrix pre-filled with
//     NoPredecessor.
//
// Contract:
//   - Both helpers return freshly owned *Dense values; nothing aliases the input.

package matrix

const (
	opCopyOf             = "CopyOf"
	opPrepareRenewMatrix = "PrepareRenewMatrix"
)

// CopyOf returns a deep copy of the square matrix m as a *Dense.
//
// Implementation:
//   - Stage 1: ValidateSquare (nil, empty, non-square rejected).
//   - Stage 2: allocate n×n storage (ErrAllocation on exhaustion).
//   - Stage 3: fast-path copy for *Dense; At-loop for any other Matrix.
//
// Complexity: Time O(n²), Space O(n²).
func CopyOf(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCopyOf, err)
	}
	n := m.Rows()

	out, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opCopyOf, err)
	}

	// Fast path: one bulk copy over the flat buffer.
	if d, ok := m.(*Dense); ok {
		copy(out.data, d.data)

		return out, nil
	}

	// Generic interface fallback.
	var (
		i, j int
		v    int64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opCopyOf, err)
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}

// PrepareRenewMatrix allocates an n×n renewal matrix with every cell set to
// NoPredecessor, so untouched cells are distinguishable from deliberately set
// predecessors.
//
// Errors: ErrInvalidDimensions (n<=0), ErrAllocation.
// Complexity: Time O(n²), Space O(n²).
func PrepareRenewMatrix(n int) (*Dense, error) {
	p, err := NewFilled(n, n, NoPredecessor)
	if err != nil {
		return nil, matrixErrorf(opPrepareRenewMatrix, err)
	}

	return p, nil
}
