// Package vecutil parses vectors from text, as typed on a command line or
// rendered by Vector.Text.
package vecutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/viant/vecmath/vector"
)

// Parse parses a vector of T from s. Accepted forms:
//
//	1,2,3
//	1 2 3
//	[1, 2, 3]
//	Vector(1, 2, 3)
//
// Integer kinds reject components with a fractional part.
func Parse[T vector.Scalar](s string) (*vector.Vector[T], error) {
	body := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(body, "Vector(") && strings.HasSuffix(body, ")"):
		body = body[len("Vector(") : len(body)-1]
	case strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]"):
		body = body[1 : len(body)-1]
	case strings.HasPrefix(body, "(") && strings.HasSuffix(body, ")"):
		body = body[1 : len(body)-1]
	}
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return vector.From(fields, ParseScalar[T])
}

// ParseScalar parses a single component of T.
func ParseScalar[T vector.Scalar](s string) (T, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return T(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("vecutil: invalid component %q: %w", s, vector.ErrTypeMismatch)
	}
	if !vector.KindFor[T]().IsFloat() && f != math.Trunc(f) {
		return 0, &vector.TypeError{Expected: vector.KindFor[T]().String() + " component", Got: strconv.Quote(s)}
	}
	return T(f), nil
}

// ParseIndex parses an index argument; negative values count from the end.
func ParseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("vecutil: invalid index %q", s)
	}
	return i, nil
}
