package vector

import (
	"fmt"
	"strings"
)

// Kind tags the element type of an encoded vector.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindInt
)

var kindNames = map[Kind]string{
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindInt:     "int",
}

// KindFor returns the Kind of T, or KindUnknown when T has no wire encoding.
func KindFor[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case int:
		return KindInt
	}
	return KindUnknown
}

// ParseKind parses a kind name such as "float64".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("vector: unknown kind %q", s)
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Size returns the encoded byte width of one component.
func (k Kind) Size() int {
	switch k {
	case KindInt32, KindFloat32:
		return 4
	case KindInt64, KindFloat64, KindInt:
		return 8
	}
	return 0
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }
