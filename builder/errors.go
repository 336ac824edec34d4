// SPDX-License-Identifier: MIT
// Package: tourlath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w via builderErrorf.
//   • Option constructors panic on meaningless values; generators never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that a size parameter (n, rows, cols, k, per)
// is smaller than the allowed minimum.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrTooManyPoints indicates that the requested point count overflows
// MaxPoints.
var ErrTooManyPoints = errors.New("builder: too many points")

// builderErrorf prefixes a formatted message with the generator name and
// wraps the sentinel: "<Method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
