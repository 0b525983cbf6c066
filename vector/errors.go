package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a vector cannot be built from the given coordinates
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDimensionMismatch is returned when a binary operation gets vectors of different dimensions
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDegenerateVector is returned when an operation is undefined for the zero vector
	ErrDegenerateVector = errors.New("degenerate vector")
)

var (
	errEmptyCoordinates = fmt.Errorf("%w: coordinates must be nonempty", ErrInvalidArgument)
	errNoCoordinates    = fmt.Errorf("%w: vector has no coordinates", ErrInvalidArgument)
	errCannotNormalize  = fmt.Errorf("%w: cannot normalize the zero vector", ErrDegenerateVector)
	errZeroVectorAngle  = fmt.Errorf("%w: cannot compute an angle with the zero vector", ErrDegenerateVector)
)

/*
CoordinateError reports a coordinate that could not be converted to a decimal.
It matches ErrInvalidArgument with errors.Is.
*/
type CoordinateError struct {
	Index int
	Value any
	cause error
}

func (e *CoordinateError) Error() string {
	msg := fmt.Sprintf("coordinates must be an iterable of numeric values: index %d: %v (%T)", e.Index, e.Value, e.Value)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *CoordinateError) Is(target error) bool { return target == ErrInvalidArgument }

func (e *CoordinateError) Unwrap() error { return e.cause }

/*
DimensionMismatchError reports the dimensions of the two operands of a binary
operation. It matches ErrDimensionMismatch with errors.Is.
*/
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }
