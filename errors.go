package polymate

import (
	"errors"
	"fmt"
)

// Errors returned by the codec, the interpolator and the polygon binding.
var (
	// ErrMalformedPoint indicates a point token that is not "<x>,<y>".
	ErrMalformedPoint = errors.New("malformed point")

	// ErrMissingTarget indicates that no target points were supplied.
	ErrMissingTarget = errors.New("missing target points")

	// ErrLengthMismatch indicates that the from and to sequences differ in length.
	ErrLengthMismatch = errors.New("point sequences differ in length")

	// ErrOutOfRange indicates a progress value outside [0, 1].
	ErrOutOfRange = errors.New("progress out of range")

	// ErrInvalidArgument indicates a non-numeric operand.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrElementType indicates that a bound element is not a polygon.
	ErrElementType = errors.New("not a polygon element")

	// ErrNotFound indicates that a document has no element with the requested id.
	ErrNotFound = errors.New("element not found")
)

// PointError describes a token that could not be decoded into a Point.
type PointError struct {
	Index int    // position of the token in the vertex list
	Token string // offending token
	Err   error  // parse failure, if any
}

func (e *PointError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q at index %d: %s", ErrMalformedPoint, e.Token, e.Index, e.Err)
	}
	return fmt.Sprintf("%s %q at index %d", ErrMalformedPoint, e.Token, e.Index)
}

// Is reports ErrMalformedPoint so callers can match on the sentinel.
func (e *PointError) Is(target error) bool {
	return target == ErrMalformedPoint
}

func (e *PointError) Unwrap() error {
	return e.Err
}
