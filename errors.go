package ndt

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
// Each is wrapped with detail (sequence name, index, offending value) at the
// point of detection; check with errors.Is.
var (
	// ErrLengthMismatch indicates the true and predicted label sequences
	// differ in length.
	ErrLengthMismatch = errors.New("ndt: label sequences differ in length")

	// ErrLabelDomain indicates a label outside the configured
	// positive/negative pair under strict validation.
	ErrLabelDomain = errors.New("ndt: label outside configured domain")

	// ErrNonIntegerLabel indicates a sequence element that is not
	// representable as an integer label.
	ErrNonIntegerLabel = errors.New("ndt: non-integer label value")
)
