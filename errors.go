package varuint

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("varuint")

var (
	// ErrTruncated is returned when the source runs out of bytes before
	// the count promised by the header byte.
	ErrTruncated = Error.New("truncated input")

	// ErrUnsupported is returned when the reserved header byte is
	// encountered.
	ErrUnsupported = Error.New("unsupported encoding")

	// ErrOverflow is returned when a decoded value does not fit the
	// requested integer type.
	ErrOverflow = Error.New("value out of range")
)
