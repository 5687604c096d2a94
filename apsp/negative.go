// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Post-process raw engine distances so that every pair whose route can
//     loop through a negative-weight cycle reports matrix.NegInf.
//
// Contract:
//   - A vertex v is "negative" iff d[v][v] < 0 in the input.
//   - d[i][j] := NegInf iff some negative v has d[i][v] != NoEdge and d[v][j] != NoEdge.
//   - No negative vertex → input untouched. Applying twice equals applying once.

package apsp

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const opNegativeLoopCheck = "NegativeLoopCheck"

// negativeVertices collects every v with d[v][v] < 0, ascending.
func negativeVertices(d []int64, n int) []int {
	var out []int
	for v := 0; v < n; v++ {
		if d[v*n+v] < 0 {
			out = append(out, v)
		}
	}

	return out
}

// contaminate marks every pair reachable through one of the given vertices.
func contaminate(d []int64, n int, neg []int) {
	var (
		i, j, base int
	)
	for _, v := range neg {
		for i = 0; i < n; i++ {
			if d[i*n+v] == matrix.NoEdge { // i does not reach the cycle
				continue
			}
			base = i * n
			for j = 0; j < n; j++ {
				if d[v*n+j] == matrix.NoEdge { // the cycle does not reach j
					continue
				}
				d[base+j] = matrix.NegInf
			}
		}
	}
}

// NegativeLoopCheck rewrites d in place, replacing every distance routed
// through a negative-weight cycle by matrix.NegInf, and returns the vertices
// whose diagonal was negative (ascending). Those vertices are collected
// before any write, so the result does not depend on processing order.
//
// d is expected to hold shortest-path estimates from Floyd or Dantzig: the
// reachability encoded by NoEdge must already be transitively closed.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions,
// matrix.ErrNonSquare, plus any At/Set error of a non-*Dense Matrix.
//
// Complexity: Time O(|V⁻|·n²) after an O(n) diagonal scan; no allocation
// besides the returned slice (and a working copy for non-*Dense inputs).
func NegativeLoopCheck(d matrix.Matrix) ([]int, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("%s: %w", opNegativeLoopCheck, err)
	}
	n := d.Rows()

	// Fast path: operate on the flat buffer directly.
	if dense, ok := d.(*matrix.Dense); ok {
		buf := dense.RawData()
		neg := negativeVertices(buf, n)
		contaminate(buf, n, neg)

		return neg, nil
	}

	// Generic fallback: work on a dense copy, then write back changed cells.
	work, err := matrix.CopyOf(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNegativeLoopCheck, err)
	}
	buf := work.RawData()
	neg := negativeVertices(buf, n)
	if len(neg) == 0 {
		return nil, nil
	}
	contaminate(buf, n, neg)

	var (
		i, j int
		old  int64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if old, err = d.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opNegativeLoopCheck, err)
			}
			if old == buf[i*n+j] {
				continue
			}
			if err = d.Set(i, j, buf[i*n+j]); err != nil {
				return nil, fmt.Errorf("%s: %w", opNegativeLoopCheck, err)
			}
		}
	}

	return neg, nil
}
