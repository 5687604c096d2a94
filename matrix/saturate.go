// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Overflow-free addition for relaxation steps.
//
// Contract:
//   - Sum never wraps: results outside int64 clamp to math.MinInt64/math.MaxInt64.

package matrix

import "math"

// Sum returns a+b clamped to [math.MinInt64, math.MaxInt64].
//
// Two's-complement overflow can only happen when both operands share a sign,
// and then the wrapped result has the opposite sign; that is the detection rule.
//
//	Sum(math.MaxInt64, 5)  == math.MaxInt64
//	Sum(math.MinInt64, -5) == math.MinInt64
//	Sum(3, 4)              == 7
//
// Complexity: O(1), no allocations.
func Sum(a, b int64) int64 {
	s := a + b
	if a > 0 && b > 0 && s < 0 {
		return math.MaxInt64 // overflow above
	}
	if a < 0 && b < 0 && s >= 0 {
		return math.MinInt64 // overflow below
	}

	return s
}
