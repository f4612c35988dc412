package vector

type operandKind uint8

const (
	operandInvalid operandKind = iota
	operandScalar
	operandVector
)

// Operand is the right-hand side of Mul: either a scalar or a vector.
// The zero Operand is invalid.
type Operand[T Scalar] struct {
	kind   operandKind
	scalar T
	vector *Vector[T]
	got    string
}

// ScalarOf wraps k as a scalar operand.
func ScalarOf[T Scalar](k T) Operand[T] {
	return Operand[T]{kind: operandScalar, scalar: k}
}

// VectorOf wraps v as a vector operand. A nil v yields an invalid operand.
func VectorOf[T Scalar](v *Vector[T]) Operand[T] {
	if v == nil {
		return Operand[T]{got: "nil"}
	}
	return Operand[T]{kind: operandVector, vector: v}
}

// OperandOf classifies an untyped value. Go numeric values exactly
// representable as T become scalar operands and *Vector[T] becomes a vector
// operand. Anything else, including fractional values for integer T and
// vectors of another element type, is a TypeError.
func OperandOf[T Scalar](x any) (Operand[T], error) {
	if v, ok := x.(*Vector[T]); ok && v != nil {
		return VectorOf(v), nil
	}
	if k, ok := numeric[T](x); ok {
		return ScalarOf(k), nil
	}
	err := scalarError[T](x, "scalar or vector operand")
	return Operand[T]{got: err.Got}, err
}

// IsScalar reports whether op holds a scalar.
func (op Operand[T]) IsScalar() bool { return op.kind == operandScalar }

// IsVector reports whether op holds a vector.
func (op Operand[T]) IsVector() bool { return op.kind == operandVector }

func (op Operand[T]) describe() string {
	if op.got != "" {
		return op.got
	}
	return "invalid operand"
}
