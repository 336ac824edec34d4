// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the checks a distance matrix must pass.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and tests can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - ValidateDistance runs O(n²) over the upper triangle plus the diagonal.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateDistance checks that m is a symmetric distance table:
// square, finite, non-negative, |d[i][i]| ≤ eps and |d[i][j] − d[j][i]| ≤ eps.
//
// Sequence: Square → per-cell finite/negative → diagonal → symmetry.
// Complexity: O(n²).
func ValidateDistance(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateDistance", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateDistance", err)
			}
			if isNonFinite(aij) || isNonFinite(aji) {
				return validatorErrorf("ValidateDistance", ErrNaNInf)
			}
			if i == j {
				if math.Abs(aij) > eps {
					return validatorErrorf("ValidateDistance", ErrNonZeroDiagonal)
				}

				continue
			}
			if aij < 0 || aji < 0 {
				return validatorErrorf("ValidateDistance", ErrNegativeDistance)
			}
			if math.Abs(aij-aji) > eps {
				return validatorErrorf("ValidateDistance", ErrAsymmetry)
			}
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
