package vector

import (
	"fmt"
	"iter"
	"math"
	"reflect"
	"slices"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types a Vector can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vector is a fixed-dimension, mutable sequence of numeric components.
//
// A Vector is owned by a single goroutine; Set and Convert mutate it in place
// without synchronization.
type Vector[T Scalar] struct {
	values []T
}

// New creates a vector holding a copy of values.
func New[T Scalar](values ...T) *Vector[T] {
	return &Vector[T]{values: slices.Clone(values)}
}

// From creates a vector by passing every value through convert. The first
// conversion error is returned unchanged.
func From[S any, T Scalar](values []S, convert func(S) (T, error)) (*Vector[T], error) {
	out := make([]T, len(values))
	for i, s := range values {
		t, err := convert(s)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return &Vector[T]{values: out}, nil
}

// FromValues creates a vector from untyped values. Every value must be a Go
// numeric type exactly representable as T: fractional or out-of-range values
// are rejected for integer T.
func FromValues[T Scalar](values ...any) (*Vector[T], error) {
	out := make([]T, len(values))
	for i, x := range values {
		t, ok := numeric[T](x)
		if !ok {
			return nil, scalarError[T](x, "numeric component (all components must be numeric)")
		}
		out[i] = t
	}
	return &Vector[T]{values: out}, nil
}

// Assert returns x as a *Vector[T], or a TypeError naming the type of x.
func Assert[T Scalar](x any) (*Vector[T], error) {
	if v, ok := x.(*Vector[T]); ok && v != nil {
		return v, nil
	}
	return nil, &TypeError{Expected: fmt.Sprintf("%T", (*Vector[T])(nil)), Got: typeName(x)}
}

// Cast converts every component of v to U.
func Cast[T, U Scalar](v *Vector[T]) *Vector[U] {
	out := make([]U, len(v.values))
	for i, x := range v.values {
		out[i] = U(x)
	}
	return &Vector[U]{values: out}
}

// Len returns the dimension of v.
func (v *Vector[T]) Len() int { return len(v.values) }

// Kind returns the element kind of v.
func (v *Vector[T]) Kind() Kind { return KindFor[T]() }

// Get returns the component at index i. Negative indexes count from the end.
func (v *Vector[T]) Get(i int) (T, error) {
	j, err := v.resolve(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.values[j], nil
}

// Set replaces the component at index i. Negative indexes count from the end.
func (v *Vector[T]) Set(i int, val T) error {
	j, err := v.resolve(i)
	if err != nil {
		return err
	}
	v.values[j] = val
	return nil
}

// SetValue is Set for an untyped value, which must be a Go numeric type
// exactly representable as T.
func (v *Vector[T]) SetValue(i int, val any) error {
	t, ok := numeric[T](val)
	if !ok {
		return scalarError[T](val, "numeric component")
	}
	return v.Set(i, t)
}

func (v *Vector[T]) resolve(i int) (int, error) {
	j := i
	if j < 0 {
		j += len(v.values)
	}
	if j < 0 || j >= len(v.values) {
		return 0, &IndexError{Index: i, Len: len(v.values)}
	}
	return j, nil
}

// Convert replaces every component with f(component). When f fails v is left
// unchanged.
func (v *Vector[T]) Convert(f func(T) (T, error)) error {
	out := make([]T, len(v.values))
	for i, x := range v.values {
		t, err := f(x)
		if err != nil {
			return err
		}
		out[i] = t
	}
	copy(v.values, out)
	return nil
}

// Values iterates over the components in index order.
func (v *Vector[T]) Values() iter.Seq[T] { return slices.Values(v.values) }

// All iterates over index/component pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] { return slices.All(v.values) }

// Slice returns a copy of the components.
func (v *Vector[T]) Slice() []T { return slices.Clone(v.values) }

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] { return New(v.values...) }

// Contains reports whether x equals any component.
func (v *Vector[T]) Contains(x T) bool { return slices.Contains(v.values, x) }

// Sum returns the sum of all components.
func (v *Vector[T]) Sum() T {
	var s T
	for _, x := range v.values {
		s += x
	}
	return s
}

// Truthy reports whether the component sum is positive. A vector such as
// (1, -1) is not truthy even though it has non-zero components.
func (v *Vector[T]) Truthy() bool { return v.Sum() > 0 }

// IsZero reports whether every component is zero.
func (v *Vector[T]) IsZero() bool {
	for _, x := range v.values {
		if x != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether v and other have identical components.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if other == nil {
		return false
	}
	return slices.Equal(v.values, other.values)
}

// ApproxEqual reports whether v and other have the same dimension and every
// pair of components differs by at most eps.
func (v *Vector[T]) ApproxEqual(other *Vector[T], eps float64) bool {
	if other == nil || len(v.values) != len(other.values) {
		return false
	}
	for i, x := range v.values {
		if math.Abs(float64(x)-float64(other.values[i])) > eps {
			return false
		}
	}
	return true
}

// numeric converts x to T. It fails for non-numeric x and, when T is an
// integer type, for values that would be truncated or wrapped.
func numeric[T Scalar](x any) (T, bool) {
	switch n := x.(type) {
	case int:
		return fromInt[T](int64(n))
	case int8:
		return fromInt[T](int64(n))
	case int16:
		return fromInt[T](int64(n))
	case int32:
		return fromInt[T](int64(n))
	case int64:
		return fromInt[T](n)
	case uint:
		return fromUint[T](uint64(n))
	case uint8:
		return fromUint[T](uint64(n))
	case uint16:
		return fromUint[T](uint64(n))
	case uint32:
		return fromUint[T](uint64(n))
	case uint64:
		return fromUint[T](n)
	case float32:
		return fromFloat[T](float64(n))
	case float64:
		return fromFloat[T](n)
	case T:
		return n, true
	}
	return 0, false
}

// isInteger reports whether T is an integer type.
func isInteger[T Scalar]() bool {
	half := 0.5
	return T(half) == 0
}

func fromInt[T Scalar](n int64) (T, bool) {
	t := T(n)
	if isInteger[T]() && (int64(t) != n || (t < 0) != (n < 0)) {
		return 0, false
	}
	return t, true
}

func fromUint[T Scalar](n uint64) (T, bool) {
	t := T(n)
	if isInteger[T]() && (uint64(t) != n || t < 0) {
		return 0, false
	}
	return t, true
}

func fromFloat[T Scalar](f float64) (T, bool) {
	if !isInteger[T]() {
		return T(f), true
	}
	switch {
	case f != math.Trunc(f):
		return 0, false
	case f < 0:
		if f < math.MinInt64 {
			return 0, false
		}
		return fromInt[T](int64(f))
	case f >= 1<<64:
		return 0, false
	}
	return fromUint[T](uint64(f))
}

// scalarError reports why x could not become a T. Numeric values that are
// not representable are named with their value.
func scalarError[T Scalar](x any, expected string) *TypeError {
	if isNumber(x) {
		var zero T
		return &TypeError{Expected: fmt.Sprintf("value representable as %T", zero), Got: fmt.Sprintf("%T %v", x, x)}
	}
	return &TypeError{Expected: expected, Got: typeName(x)}
}

func isNumber(x any) bool {
	if x == nil {
		return false
	}
	switch reflect.ValueOf(x).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
