package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/vecmath/vector"
	"github.com/viant/vecmath/vecutil"
)

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <op> <vector> [operand]",
		Short: "Evaluate a vector operation",
		Long: `Evaluate a vector operation and print the result.

Binary:  add, sub, dot, cross, angle, proj, cosine, dist, mul, scale
Unary:   neg, pos, mag, mag2, norm, sum, bool, len
Other:   contains <vector> <x>, get <vector> <index>`,
		Example: `  vecmath calc add 1,2,3 4,5,6
  vecmath calc cross "Vector(1, 0, 0)" 0,1,0
  vecmath calc scale 1,2 3 --kind int64 --format simplified`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, operands := strings.ToLower(args[0]), args[1:]
			w := cmd.OutOrStdout()
			mode := a.cfg.Mode()
			switch k := a.cfg.ElementKind(); k {
			case vector.KindInt32:
				return calc[int32](w, mode, op, operands)
			case vector.KindInt64:
				return calc[int64](w, mode, op, operands)
			case vector.KindInt:
				return calc[int](w, mode, op, operands)
			case vector.KindFloat32:
				return calc[float32](w, mode, op, operands)
			case vector.KindFloat64:
				return calc[float64](w, mode, op, operands)
			default:
				return unsupportedKind(k)
			}
		},
	}
}

// calc evaluates op over the textual operands and writes the result to w.
func calc[T vector.Scalar](w io.Writer, mode vector.Mode, op string, operands []string) error {
	a, err := vecutil.Parse[T](operands[0])
	if err != nil {
		return err
	}
	second := func() (string, error) {
		if len(operands) < 2 {
			return "", fmt.Errorf("%s: missing second operand", op)
		}
		return operands[1], nil
	}
	other := func() (*vector.Vector[T], error) {
		s, err := second()
		if err != nil {
			return nil, err
		}
		return vecutil.Parse[T](s)
	}

	var result any
	switch op {
	case "add", "sub", "dot", "cross", "angle", "proj", "cosine", "dist":
		b, err := other()
		if err != nil {
			return err
		}
		if result, err = binary(op, a, b); err != nil {
			return err
		}
	case "mul", "scale":
		s, err := second()
		if err != nil {
			return err
		}
		rhs, err := operand[T](s)
		if err != nil {
			return err
		}
		if result, err = a.Mul(rhs); err != nil {
			return err
		}
	case "neg":
		result = a.Neg()
	case "pos":
		result = a.Pos()
	case "mag":
		result = a.Magnitude()
	case "mag2":
		result = a.SquaredMagnitude()
	case "norm":
		if result, err = a.Normalize(); err != nil {
			return err
		}
	case "sum":
		result = a.Sum()
	case "bool":
		result = a.Truthy()
	case "len":
		result = a.Len()
	case "contains":
		s, err := second()
		if err != nil {
			return err
		}
		x, err := vecutil.ParseScalar[T](s)
		if err != nil {
			return err
		}
		result = a.Contains(x)
	case "get":
		s, err := second()
		if err != nil {
			return err
		}
		i, err := vecutil.ParseIndex(s)
		if err != nil {
			return err
		}
		if result, err = a.Get(i); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	_, err = fmt.Fprintln(w, render(result, mode))
	return err
}

func binary[T vector.Scalar](op string, a, b *vector.Vector[T]) (any, error) {
	switch op {
	case "add":
		return a.Add(b)
	case "sub":
		return a.Sub(b)
	case "dot":
		return a.Dot(b)
	case "cross":
		return a.Cross(b)
	case "angle":
		return a.Angle(b)
	case "proj":
		return a.Project(b)
	case "cosine":
		return vector.CosineSimilarity(a, b)
	case "dist":
		return vector.Distance(a, b)
	}
	return nil, fmt.Errorf("unknown operation %q", op)
}

// operand reads s as a scalar when possible, otherwise as a vector.
func operand[T vector.Scalar](s string) (vector.Operand[T], error) {
	if k, err := vecutil.ParseScalar[T](s); err == nil {
		return vector.ScalarOf(k), nil
	}
	v, err := vecutil.Parse[T](s)
	if err != nil {
		return vector.Operand[T]{}, err
	}
	return vector.VectorOf(v), nil
}

// texter is implemented by every *vector.Vector instantiation.
type texter interface {
	Text(mode vector.Mode) string
}

func render(x any, mode vector.Mode) string {
	if t, ok := x.(texter); ok {
		return t.Text(mode)
	}
	return fmt.Sprint(x)
}
