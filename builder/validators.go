// Package builder provides validation helpers that enforce parameter
// contracts of the generators.
package builder

// validateMin ensures that got ≥ min.
// Returns "<Method>: <name> must be ≥ <min>, got <got>: ErrTooFewPoints".
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewPoints, "%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}

// validateTotal ensures that a×b points fit under MaxPoints. Both factors
// must already be ≥ 1.
func validateTotal(method string, a, b int) error {
	if a > MaxPoints || b > MaxPoints || a*b > MaxPoints {
		return builderErrorf(method, ErrTooManyPoints, "%d×%d exceeds %d", a, b, MaxPoints)
	}

	return nil
}
