package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/viant/vecmath/vector"
	sqlite "modernc.org/sqlite"
)

// sqlFunc is a vector SQL function body bound to one element kind.
type sqlFunc func(kindOps, []driver.Value) (driver.Value, error)

// functions maps SQL names to their arity, the number of leading vector
// arguments and the implementation.
var functions = []struct {
	name    string
	nArg    int32
	vectors int
	fn      sqlFunc
}{
	{"vec_add", 2, 2, kindOps.add},
	{"vec_sub", 2, 2, kindOps.sub},
	{"vec_neg", 1, 1, kindOps.neg},
	{"vec_mul", 2, 1, kindOps.mul},
	{"vec_scale", 2, 1, kindOps.mul},
	{"vec_dot", 2, 2, kindOps.dot},
	{"vec_cross", 2, 2, kindOps.cross},
	{"vec_norm", 1, 1, kindOps.norm},
	{"vec_norm2", 1, 1, kindOps.norm2},
	{"vec_normalize", 1, 1, kindOps.normalize},
	{"vec_angle", 2, 2, kindOps.angle},
	{"vec_project", 2, 2, kindOps.project},
	{"vec_cosine", 2, 2, kindOps.cosine},
	{"vec_l2", 2, 2, kindOps.l2},
	{"vec_sum", 1, 1, kindOps.sum},
	{"vec_dim", 1, 1, kindOps.dim},
	{"vec_get", 2, 1, kindOps.get},
	{"vec_text", 2, 1, kindOps.text},
}

// registerScalar is the driver hook used to register each function.
var registerScalar = sqlite.RegisterDeterministicScalarFunction

// RegisterVectorFunctions registers the vec_* SQL functions with the driver
// so they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
//
// Vector arguments are BLOBs produced by vector.Encode; every vector argument
// of one call must share the same element kind. Registering again is a no-op;
// any other driver error is returned.
func RegisterVectorFunctions(_ *sql.DB) error {
	var first error
	for _, f := range functions {
		err := registerScalar(f.name, f.nArg, bind(f.name, int(f.nArg), f.vectors, f.fn))
		if err != nil && !isDuplicate(err) && first == nil {
			first = fmt.Errorf("engine: register %s: %w", f.name, err)
		}
	}
	return first
}

// isDuplicate reports whether err is the driver's "already registered" error.
func isDuplicate(err error) bool {
	return strings.Contains(err.Error(), "already registered")
}

func bind(name string, nArg, vectors int, fn sqlFunc) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != nArg {
			return nil, fmt.Errorf("%s: expected %d arguments, got %d", name, nArg, len(args))
		}
		kind, err := operandKind(args[:vectors])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if kind == vector.KindUnknown {
			return nil, nil
		}
		ops, ok := byKind[kind]
		if !ok {
			return nil, fmt.Errorf("%s: unsupported kind %s", name, kind)
		}
		out, err := fn(ops, args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return out, nil
	}
}

// operandKind returns the shared kind of the vector arguments, or
// KindUnknown when any of them is NULL.
func operandKind(args []driver.Value) (vector.Kind, error) {
	kind := vector.KindUnknown
	for i, arg := range args {
		b, err := asBlob(arg)
		if err != nil {
			return vector.KindUnknown, err
		}
		if len(b) == 0 {
			return vector.KindUnknown, nil
		}
		k, err := vector.KindOf(b)
		if err != nil {
			return vector.KindUnknown, err
		}
		if i > 0 && k != kind {
			return vector.KindUnknown, &vector.TypeError{Expected: kind.String() + " vector", Got: k.String() + " vector"}
		}
		kind = k
	}
	return kind, nil
}

func asBlob(arg driver.Value) ([]byte, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	default:
		return nil, &vector.TypeError{Expected: "vector BLOB", Got: fmt.Sprintf("%T", arg)}
	}
}
