package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode encodes v into a BLOB suitable for storage in SQLite: one kind byte
// followed by the components as little-endian values (IEEE 754 for floats,
// two's complement for integers). A nil vector encodes to nil.
func Encode[T Scalar](v *Vector[T]) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	kind := KindFor[T]()
	size := kind.Size()
	if size == 0 {
		return nil, &TypeError{Expected: "encodable element kind", Got: fmt.Sprintf("%T", v)}
	}
	b := make([]byte, 1+len(v.values)*size)
	b[0] = byte(kind)
	for i, x := range v.values {
		off := 1 + i*size
		switch kind {
		case KindInt32:
			binary.LittleEndian.PutUint32(b[off:], uint32(int32(x)))
		case KindFloat32:
			binary.LittleEndian.PutUint32(b[off:], math.Float32bits(float32(x)))
		case KindInt64, KindInt:
			binary.LittleEndian.PutUint64(b[off:], uint64(int64(x)))
		case KindFloat64:
			binary.LittleEndian.PutUint64(b[off:], math.Float64bits(float64(x)))
		}
	}
	return b, nil
}

// KindOf returns the kind tag of an encoded vector.
func KindOf(b []byte) (Kind, error) {
	if len(b) == 0 {
		return KindUnknown, fmt.Errorf("vector: empty blob")
	}
	kind := Kind(b[0])
	if kind.Size() == 0 {
		return KindUnknown, fmt.Errorf("vector: invalid kind tag %d", b[0])
	}
	return kind, nil
}

// Decode decodes a BLOB produced by Encode. The blob's kind must match T.
func Decode[T Scalar](b []byte) (*Vector[T], error) {
	if len(b) == 0 {
		return nil, nil
	}
	kind, err := KindOf(b)
	if err != nil {
		return nil, err
	}
	if want := KindFor[T](); kind != want {
		return nil, &TypeError{Expected: want.String() + " vector", Got: kind.String() + " vector"}
	}
	size := kind.Size()
	payload := b[1:]
	if len(payload)%size != 0 {
		return nil, fmt.Errorf("vector: invalid blob length %d (not multiple of %d)", len(payload), size)
	}
	n := len(payload) / size
	values := make([]T, n)
	for i := 0; i < n; i++ {
		off := i * size
		switch kind {
		case KindInt32:
			values[i] = T(int32(binary.LittleEndian.Uint32(payload[off:])))
		case KindFloat32:
			values[i] = T(math.Float32frombits(binary.LittleEndian.Uint32(payload[off:])))
		case KindInt64, KindInt:
			values[i] = T(int64(binary.LittleEndian.Uint64(payload[off:])))
		case KindFloat64:
			values[i] = T(math.Float64frombits(binary.LittleEndian.Uint64(payload[off:])))
		}
	}
	return &Vector[T]{values: values}, nil
}
