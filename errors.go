package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the point set handed to a constructor
	// is empty, zero-dimensional, ragged, or contains non-finite coordinates.
	ErrInvalidInput = errors.New("kdtree: invalid input")

	// ErrInvalidArgument is returned for out-of-range parameters: k < 1,
	// negative radius, leaf size < 1, or an invalid Minkowski exponent.
	ErrInvalidArgument = errors.New("kdtree: invalid argument")

	// ErrDimensionMismatch is matched by every *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("kdtree: dimension mismatch")
)

// DimensionMismatchError reports a query whose dimensionality differs from
// the tree's. It matches ErrDimensionMismatch under errors.Is.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("kdtree: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
