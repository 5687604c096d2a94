// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Dantzig engine: the solved submatrix grows by one bordering row and
//     column per step instead of Floyd's fixed intermediate-vertex order.
//
// Contract:
//   - Same input/output contract as Floyd; the final distances agree with
//     Floyd on every input without negative cycles.

package apsp

import "github.com/katalvlaran/apsp/matrix"

// dantzigInPlace grows the settled set {0..r-1} to {0..r} for r = 1..n-1.
//
// Step r:
//  1. border: i→r and r→i via every settled j (i, j < r);
//  2. diagonal: r→r via every settled i (a negative value is kept for the corrector);
//  3. consistency: every settled pair i→j via the new vertex r.
//
// Returns the number of successful relaxations.
func dantzigInPlace(d, p []int64, n int) int {
	var (
		r, i, j int
		updates int
	)
	for r = 1; r < n; r++ {
		// 1) new row and column of the border.
		for i = 0; i < r; i++ {
			for j = 0; j < r; j++ {
				if relax(d, p, n, i, j, r) { // i → j → r
					updates++
				}
				if relax(d, p, n, r, j, i) { // r → j → i
					updates++
				}
			}
		}

		// 2) closed walks through r and the settled set.
		for i = 0; i < r; i++ {
			if relax(d, p, n, r, i, r) {
				updates++
			}
		}

		// 3) propagate r into every previously settled pair.
		for i = 0; i < r; i++ {
			if d[i*n+r] == matrix.NoEdge {
				continue
			}
			for j = 0; j < r; j++ {
				if relax(d, p, n, i, r, j) {
					updates++
				}
			}
		}
	}

	return updates
}

// Dantzig computes all-pairs shortest paths of d0 with Dantzig's incremental
// dynamic program. d0 is not modified; the raw result is not cycle-corrected.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions,
// matrix.ErrNonSquare, matrix.ErrAllocation.
//
// Complexity: Time O(n³), Space O(n²).
func Dantzig(d0 matrix.Matrix) (*Result, error) {
	d, p, err := prepare(opDantzig, d0)
	if err != nil {
		return nil, err
	}
	updates := dantzigInPlace(d.RawData(), p.RawData(), d.Rows())

	return &Result{Dist: d, Pred: p, Algorithm: AlgorithmDantzig, Relaxations: updates}, nil
}
