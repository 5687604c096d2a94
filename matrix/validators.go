// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep engines minimal by delegating shape/nil checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil detects both an untyped nil interface and a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (untyped, or a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (0 rows), ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateIndex checks that v is a vertex index of an n×n matrix.
func ValidateIndex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("ValidateIndex: %d not in [0,%d): %w", v, n, ErrOutOfRange)
	}

	return nil
}

// ValidateSameOrder checks that a and b are square matrices of one order.
func ValidateSameOrder(a, b Matrix) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSameOrder", err)
	}
	if err := ValidateSquare(b); err != nil {
		return validatorErrorf("ValidateSameOrder", err)
	}
	if a.Rows() != b.Rows() {
		return fmt.Errorf("ValidateSameOrder: %d vs %d: %w", a.Rows(), b.Rows(), ErrDimensionMismatch)
	}

	return nil
}
