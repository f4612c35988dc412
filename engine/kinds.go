package engine

import (
	"database/sql/driver"
	"fmt"

	"github.com/viant/vecmath/vector"
)

// kindOps implements every SQL function for one element kind.
type kindOps interface {
	add(args []driver.Value) (driver.Value, error)
	sub(args []driver.Value) (driver.Value, error)
	neg(args []driver.Value) (driver.Value, error)
	mul(args []driver.Value) (driver.Value, error)
	dot(args []driver.Value) (driver.Value, error)
	cross(args []driver.Value) (driver.Value, error)
	norm(args []driver.Value) (driver.Value, error)
	norm2(args []driver.Value) (driver.Value, error)
	normalize(args []driver.Value) (driver.Value, error)
	angle(args []driver.Value) (driver.Value, error)
	project(args []driver.Value) (driver.Value, error)
	cosine(args []driver.Value) (driver.Value, error)
	l2(args []driver.Value) (driver.Value, error)
	sum(args []driver.Value) (driver.Value, error)
	dim(args []driver.Value) (driver.Value, error)
	get(args []driver.Value) (driver.Value, error)
	text(args []driver.Value) (driver.Value, error)
}

var byKind = map[vector.Kind]kindOps{
	vector.KindInt32:   ops[int32]{},
	vector.KindInt64:   ops[int64]{},
	vector.KindInt:     ops[int]{},
	vector.KindFloat32: ops[float32]{},
	vector.KindFloat64: ops[float64]{},
}

type ops[T vector.Scalar] struct{}

func (ops[T]) vec(arg driver.Value) (*vector.Vector[T], error) {
	b, err := asBlob(arg)
	if err != nil {
		return nil, err
	}
	return vector.Decode[T](b)
}

func (o ops[T]) pair(args []driver.Value) (*vector.Vector[T], *vector.Vector[T], error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := o.vec(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (o ops[T]) add(args []driver.Value) (driver.Value, error) {
	a, b, err := o.pair(args)
	if err != nil {
		return nil, err
	}
	v, err := a.Add(b)
	return encoded(v, err)
}

func (o ops[T]) sub(args []driver.Value) (driver.Value, error) {
	a, b, err := o.pair(args)
	if err != nil {
		return nil, err
	}
	v, err := a.Sub(b)
	return encoded(v, err)
}

func (o ops[T]) neg(args []driver.Value) (driver.Value, error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, err
	}
	return encoded(a.Neg(), nil)
}

// mul accepts a numeric scalar or a vector BLOB as second argument; the
// latter fails with vector.ErrAmbiguousOperation.
func (o ops[T]) mul(args []driver.Value) (driver.Value, error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, err
	}
	rhs := args[1]
	if b, ok := rhs.([]byte); ok {
		if rhs, err = vector.Decode[T](b); err != nil {
			return nil, err
		}
	}
	op, err := vector.OperandOf[T](rhs)
	if err != nil {
		return nil, err
	}
	v, err := a.Mul(op)
	return encoded(v, err)
}

func (o ops[T]) dot(args []driver.Value) (driver.Value, error) {
	a, b, err := o.pair(args)
	if err != nil {
		return nil, err
	}
	d, err := a.Dot(b)
	if err != nil {
		return nil, err
	}
	return scalarValue(d), nil
}

func (o ops[T]) cross(args []driver.Value) (driver.Value, error) {
	a, b, err := o.pair(args)
	if err != nil {
		return nil, err
	}
	v, err := a.Cross(b)
	return encoded(v, err)
}

func (o ops[T]) norm(args []driver.Value) (driver.Value, error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, err
	}
	return a.Magnitude(), nil
}

func (o ops[T]) norm2(args []driver.Value) (driver.Value, error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, err
	}
	return scalarValue(a.SquaredMagnitude()), nil
}

func (o ops[T]) normalize(args []driver.Value) (driver.Value, error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, err
	}
	v, err := a.Normalize()
	return encoded(v, err)
}

func (o ops[T]) angle(args []driver.Value) (driver.Value, error) {
	a, b, err := o.pair(args)
	if err != nil {
		return nil, err
	}
	return floatValue(a.Angle(b))
}

func (o ops[T]) project(args []driver.Value) (driver.Value, error) {
	a, b, err := o.pair(args)
	if err != nil {
		return nil, err
	}
	v, err := a.Project(b)
	return encoded(v, err)
}

func (o ops[T]) cosine(args []driver.Value) (driver.Value, error) {
	a, b, err := o.pair(args)
	if err != nil {
		return nil, err
	}
	return floatValue(vector.CosineSimilarity(a, b))
}

func (o ops[T]) l2(args []driver.Value) (driver.Value, error) {
	a, b, err := o.pair(args)
	if err != nil {
		return nil, err
	}
	return floatValue(vector.Distance(a, b))
}

func (o ops[T]) sum(args []driver.Value) (driver.Value, error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, err
	}
	return scalarValue(a.Sum()), nil
}

func (o ops[T]) dim(args []driver.Value) (driver.Value, error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, err
	}
	return int64(a.Len()), nil
}

func (o ops[T]) get(args []driver.Value) (driver.Value, error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, err
	}
	i, ok := args[1].(int64)
	if !ok {
		return nil, &vector.TypeError{Expected: "INTEGER index", Got: fmt.Sprintf("%T", args[1])}
	}
	x, err := a.Get(int(i))
	if err != nil {
		return nil, err
	}
	return scalarValue(x), nil
}

func (o ops[T]) text(args []driver.Value) (driver.Value, error) {
	a, err := o.vec(args[0])
	if err != nil {
		return nil, err
	}
	var name string
	switch m := args[1].(type) {
	case string:
		name = m
	case []byte:
		name = string(m)
	case nil:
	default:
		return nil, &vector.TypeError{Expected: "TEXT mode", Got: fmt.Sprintf("%T", args[1])}
	}
	mode, err := vector.ParseMode(name)
	if err != nil {
		return nil, err
	}
	return a.Text(mode), nil
}

func encoded[U vector.Scalar](v *vector.Vector[U], err error) (driver.Value, error) {
	if err != nil {
		return nil, err
	}
	return vector.Encode(v)
}

func floatValue(f float64, err error) (driver.Value, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}

// scalarValue converts a component to a driver value: float64 for float
// kinds, int64 otherwise.
func scalarValue[T vector.Scalar](x T) driver.Value {
	switch any(x).(type) {
	case float32, float64:
		return float64(x)
	}
	return int64(x)
}
