// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Interop with gonum's float64 matrices for callers that post-process
//     distances with linear-algebra routines.
//
// Mapping:
//   - NoEdge <-> +Inf, NegInf <-> -Inf, finite weights <-> float64(w).
//   - Finite weights beyond ±2^53 lose precision in float64; FromGonum rejects
//     anything fractional or outside int64.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToGonum exports m into a newly allocated *mat.Dense.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, plus any At error of m.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf("ToGonum", ErrInvalidDimensions)
	}

	out := mat.NewDense(r, c, nil)
	var (
		i, j int
		v    int64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToGonum", err)
			}
			out.Set(i, j, WeightToFloat(v))
		}
	}

	return out, nil
}

// FromGonum imports any gonum mat.Matrix as a *Dense.
//
// Errors: ErrInvalidDimensions for an empty source, ErrNonIntegral for a cell
// that is NaN, fractional, or outside int64.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	var (
		i, j int
		w    int64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if w, err = FloatToWeight(src.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: cell (%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = w
		}
	}

	return out, nil
}

// WeightToFloat maps a weight to float64 with the sentinels as ±Inf.
func WeightToFloat(w int64) float64 {
	switch w {
	case NoEdge:
		return math.Inf(1)
	case NegInf:
		return math.Inf(-1)
	default:
		return float64(w)
	}
}

// FloatToWeight is the inverse of WeightToFloat for integral values.
func FloatToWeight(v float64) (int64, error) {
	switch {
	case math.IsInf(v, 1):
		return NoEdge, nil
	case math.IsInf(v, -1):
		return NegInf, nil
	case math.IsNaN(v), v != math.Trunc(v), v >= 0x1p63, v < -0x1p63:
		return 0, fmt.Errorf("%v: %w", v, ErrNonIntegral)
	}

	return int64(v), nil
}
