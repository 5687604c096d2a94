// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Floyd–Warshall engine with a renewal matrix and deterministic loop order.
//
// Contract:
//   - Square input; matrix.NoEdge means "no edge"; the diagonal is usually 0.
//   - The raw result is NOT cycle-corrected; see NegativeLoopCheck / Solve.

package apsp

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const (
	opFloyd   = "Floyd"
	opDantzig = "Dantzig"
)

// prepare copies d0 and allocates a fresh renewal matrix of the same order.
func prepare(op string, d0 matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	d, err := matrix.CopyOf(d0)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	p, err := matrix.PrepareRenewMatrix(d.Rows())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, p, nil
}

// floydInPlace runs the k → i → j triple loop over flat buffers of order n.
// Returns the number of successful relaxations.
//
// k MUST stay outermost: after pass k, d[i][j] is the shortest i→j walk whose
// intermediates all lie in {0..k}.
func floydInPlace(d, p []int64, n int) int {
	var (
		k, i, j int
		updates int
	)
	for k = 0; k < n; k++ { // outer: intermediate vertex
		for i = 0; i < n; i++ { // middle: source
			if d[i*n+k] == matrix.NoEdge { // i cannot reach k, nothing routes through it
				continue
			}
			for j = 0; j < n; j++ { // inner: destination
				if relax(d, p, n, i, k, j) {
					updates++
				}
			}
		}
	}

	return updates
}

// Floyd computes all-pairs shortest paths of d0 with the Floyd–Warshall
// dynamic program. d0 is not modified.
//
// The returned distances may be contaminated by negative cycles (values on
// and behind such cycles are finite but meaningless); pass Result.Dist to
// NegativeLoopCheck, or use Solve, for the corrected form.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions,
// matrix.ErrNonSquare, matrix.ErrAllocation.
//
// Complexity: Time O(n³), Space O(n²).
func Floyd(d0 matrix.Matrix) (*Result, error) {
	d, p, err := prepare(opFloyd, d0)
	if err != nil {
		return nil, err
	}
	updates := floydInPlace(d.RawData(), p.RawData(), d.Rows())

	return &Result{Dist: d, Pred: p, Algorithm: AlgorithmFloyd, Relaxations: updates}, nil
}
