package cert

import "errors"

// Arithmetic never returns errors; these belong to the text, record and
// sample-statistics boundaries.
var (
	// ErrSyntax is returned when a textual uncertainty cannot be parsed.
	ErrSyntax = errors.New("cert: invalid uncertainty syntax")

	// ErrNotFinite is returned when encoding a NaN or infinite component into
	// a format that has no representation for it.
	ErrNotFinite = errors.New("cert: value is not finite")

	// ErrEmptySample is returned by the sample statistics when given no data.
	ErrEmptySample = errors.New("cert: empty sample")

	// ErrLengthMismatch is returned when samples and weights differ in length.
	ErrLengthMismatch = errors.New("cert: samples and weights differ in length")

	// ErrInvalidConfig is returned by FormatConfig.Validate.
	ErrInvalidConfig = errors.New("cert: invalid format config")
)
