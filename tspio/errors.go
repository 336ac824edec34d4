package tspio

import "errors"

// Sentinel errors. Readers wrap them with the offending line or element.
var (
	// ErrNoPoints is returned when an input holds a header but no rows.
	ErrNoPoints = errors.New("tspio: no points")

	// ErrBadHeader is returned when a CSV header lacks a required column.
	ErrBadHeader = errors.New("tspio: missing or malformed header")

	// ErrBadRecord is returned for a row or element that cannot be parsed.
	ErrBadRecord = errors.New("tspio: malformed record")

	// ErrUnknownFormat is returned when a file extension maps to no codec.
	ErrUnknownFormat = errors.New("tspio: unknown file format")
)
