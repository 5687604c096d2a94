// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every exported function returns one of these sentinels (possibly
// wrapped with call-site context) and tests match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("Op: %w", ErrX).
//
// ERROR CLASSES:
//   - invalid argument: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrRagged
//   - resource exhaustion: ErrAllocation
//   - indexing: ErrOutOfRange, ErrDimensionMismatch
//   - interop: ErrNonIntegral

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a distance and a renewal matrix of different order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged indicates that a row-slice input has rows of different length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrAllocation indicates that the backing buffer for a matrix could not
	// be obtained (cell count overflows int or the runtime refused the request).
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrNonIntegral indicates that a foreign float value cannot be represented
	// as an int64 weight (fractional, NaN, or out of int64 range).
	ErrNonIntegral = errors.New("matrix: value is not an integral weight")
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
