package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when an operand is not a vector of the same
	// element type, or a non-numeric value is supplied where a scalar is required.
	ErrTypeMismatch = errors.New("vector: type mismatch")

	// ErrDimensionMismatch is returned when two vectors have different lengths.
	ErrDimensionMismatch = errors.New("vector: dimensions are unequal")

	// ErrUnsupportedDimension is returned by Cross for vectors that are not 2D or 3D.
	ErrUnsupportedDimension = errors.New("vector: cross product can only be calculated for 2d and 3d vectors")

	// ErrAmbiguousOperation is returned when two vectors are multiplied.
	ErrAmbiguousOperation = errors.New("vector: type of multiplication unspecified")

	// ErrIndexOutOfRange is returned by Get and Set for an invalid index.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrDivisionByZero is returned when an operation divides by a zero magnitude.
	ErrDivisionByZero = errors.New("vector: division by zero magnitude")

	// ErrNotFound is returned by stores for an unknown id.
	ErrNotFound = errors.New("vector: not found")
)

// TypeError describes an unexpected operand or component type.
//
// errors.Is(err, ErrTypeMismatch) reports true for every TypeError.
type TypeError struct {
	Expected string
	Got      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("vector: expected %s, got %s", e.Expected, e.Got)
}

func (e *TypeError) Unwrap() error { return ErrTypeMismatch }

// DimensionError indicates a dimensionality mismatch between two operands.
type DimensionError struct {
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("vector: dimensions are unequal: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// IndexError indicates an index outside [-Len, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index %d out of range for dimension %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func typeName(x any) string {
	if x == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", x)
}
