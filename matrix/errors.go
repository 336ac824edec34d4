// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels, optionally
// wrapped with method context via fmt.Errorf("Method: %w", ErrX). Callers and
// tests match with errors.Is. Nothing panics on user-triggered conditions;
// option constructors (WithX) panic on nonsensical values only.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that d[i][j] and d[j][i] differ by more than eps.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a diagonal entry farther than eps from zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf value (or coordinate) where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeDistance signals a negative off-diagonal distance.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEmptyInput indicates a distance matrix was requested for zero points.
	ErrEmptyInput = errors.New("matrix: empty point set")

	// ErrReadOnly is returned by Set on a Distance, which is immutable once built.
	ErrReadOnly = errors.New("matrix: distance matrix is read-only")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
