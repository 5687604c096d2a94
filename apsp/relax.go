// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - The single relaxation primitive shared by both engines.
//
// Contract:
//   - Strict improvement only: ties keep the earlier-found path.
//   - A NoEdge operand never forms a candidate, so saturated "no edge" sums
//     cannot masquerade as routes.

package apsp

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const opRelaxPath = "RelaxPath"

// relax is the unchecked kernel over flat row-major buffers of order n.
// Callers guarantee that from, through, to ∈ [0,n) and len(d)==len(p)==n*n.
func relax(d, p []int64, n, from, through, to int) bool {
	ft := d[from*n+through]
	if ft == matrix.NoEdge { // from cannot reach through
		return false
	}
	tt := d[through*n+to]
	if tt == matrix.NoEdge { // through cannot reach to
		return false
	}

	cand := matrix.Sum(ft, tt) // saturating; never wraps
	idx := from*n + to
	if cand < d[idx] {
		d[idx] = cand
		p[idx] = int64(through)

		return true
	}

	return false
}

// RelaxPath tries to shorten from → to by routing through `through`.
// If Sum(d[from][through], d[through][to]) < d[from][to], the distance cell is
// overwritten with that sum and p[from][to] is set to through. Otherwise
// neither matrix changes.
//
// Returns whether an update happened.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
//     for malformed matrices.
//   - matrix.ErrOutOfRange if any vertex index is outside [0,n).
//
// Complexity: O(1).
func RelaxPath(from, through, to int, d, p *matrix.Dense) (bool, error) {
	if err := matrix.ValidateSameOrder(d, p); err != nil {
		return false, fmt.Errorf("%s: %w", opRelaxPath, err)
	}
	n := d.Rows()
	for _, v := range [...]int{from, through, to} {
		if err := matrix.ValidateIndex(v, n); err != nil {
			return false, fmt.Errorf("%s: %w", opRelaxPath, err)
		}
	}

	return relax(d.RawData(), p.RawData(), n, from, through, to), nil
}
