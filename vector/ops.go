package vector

import (
	"fmt"
	"math"
)

// checkShape verifies other is a non-nil vector with the same dimension as v.
func (v *Vector[T]) checkShape(other *Vector[T]) error {
	if other == nil {
		return &TypeError{Expected: fmt.Sprintf("%T", v), Got: "nil"}
	}
	if len(v.values) != len(other.values) {
		return &DimensionError{Expected: len(v.values), Actual: len(other.values)}
	}
	return nil
}

func (v *Vector[T]) combine(other *Vector[T], f func(a, b T) T) (*Vector[T], error) {
	if err := v.checkShape(other); err != nil {
		return nil, err
	}
	out := make([]T, len(v.values))
	for i, a := range v.values {
		out[i] = f(a, other.values[i])
	}
	return &Vector[T]{values: out}, nil
}

// Add returns the component-wise sum v + other.
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	return v.combine(other, func(a, b T) T { return a + b })
}

// Sub returns the component-wise difference v - other.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	return v.combine(other, func(a, b T) T { return a - b })
}

// Neg returns -v.
func (v *Vector[T]) Neg() *Vector[T] {
	out := make([]T, len(v.values))
	for i, a := range v.values {
		out[i] = -a
	}
	return &Vector[T]{values: out}
}

// Pos returns v itself.
func (v *Vector[T]) Pos() *Vector[T] { return v }

// SquaredMagnitude returns the sum of squared components.
func (v *Vector[T]) SquaredMagnitude() T {
	var s T
	for _, a := range v.values {
		s += a * a
	}
	return s
}

// Magnitude returns the Euclidean norm of v.
func (v *Vector[T]) Magnitude() float64 {
	var s float64
	for _, a := range v.values {
		f := float64(a)
		s += f * f
	}
	return math.Sqrt(s)
}

// Scale returns v with every component multiplied by k.
func (v *Vector[T]) Scale(k T) *Vector[T] {
	out := make([]T, len(v.values))
	for i, a := range v.values {
		out[i] = a * k
	}
	return &Vector[T]{values: out}
}

// Mul multiplies v by op. Only scalar operands are supported: a vector operand
// fails with ErrAmbiguousOperation because neither the dot nor the
// element-wise product is implied.
func (v *Vector[T]) Mul(op Operand[T]) (*Vector[T], error) {
	switch op.kind {
	case operandScalar:
		return v.Scale(op.scalar), nil
	case operandVector:
		return nil, ErrAmbiguousOperation
	default:
		return nil, &TypeError{Expected: "scalar operand", Got: op.describe()}
	}
}

// Dot returns the sum of pairwise products of v and other.
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	if err := v.checkShape(other); err != nil {
		return 0, err
	}
	var s T
	for i, a := range v.values {
		s += a * other.values[i]
	}
	return s, nil
}

// Cross returns the 3D cross product of v and other. 2D operands are treated
// as 3D with a zero third component; neither operand is modified.
func (v *Vector[T]) Cross(other *Vector[T]) (*Vector[T], error) {
	if err := v.checkShape(other); err != nil {
		return nil, err
	}
	if n := len(v.values); n < 2 || n > 3 {
		return nil, fmt.Errorf("%w: got %d components", ErrUnsupportedDimension, n)
	}
	a, b := promote(v.values), promote(other.values)
	return New(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

func promote[T Scalar](values []T) [3]T {
	var p [3]T
	copy(p[:], values)
	return p
}

// Angle returns the angle between v and other in radians. The cosine is
// computed in float64 and clamped to [-1, 1] before arccos.
func (v *Vector[T]) Angle(other *Vector[T]) (float64, error) {
	dot, err := v.floatDot(other)
	if err != nil {
		return 0, err
	}
	m := v.Magnitude() * other.Magnitude()
	if m == 0 {
		return 0, fmt.Errorf("%w: angle with zero vector", ErrDivisionByZero)
	}
	return math.Acos(clamp(dot/m, -1, 1)), nil
}

// Project returns the vector projection of v onto b.
func (v *Vector[T]) Project(b *Vector[T]) (*Vector[float64], error) {
	dot, err := v.floatDot(b)
	if err != nil {
		return nil, err
	}
	sq, _ := b.floatDot(b)
	if sq == 0 {
		return nil, fmt.Errorf("%w: projection onto zero vector", ErrDivisionByZero)
	}
	return Cast[T, float64](b).Scale(dot / sq), nil
}

// floatDot is Dot accumulated in float64, so integer components cannot
// overflow T.
func (v *Vector[T]) floatDot(other *Vector[T]) (float64, error) {
	if err := v.checkShape(other); err != nil {
		return 0, err
	}
	var s float64
	for i, a := range v.values {
		s += float64(a) * float64(other.values[i])
	}
	return s, nil
}

// Normalize returns the unit vector in the direction of v.
func (v *Vector[T]) Normalize() (*Vector[float64], error) {
	m := v.Magnitude()
	if m == 0 {
		return nil, fmt.Errorf("%w: normalize zero vector", ErrDivisionByZero)
	}
	return Cast[T, float64](v).Scale(1 / m), nil
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
