package vector

import (
	"fmt"
	"strings"
)

// Mode selects the textual representation of a vector.
type Mode int

const (
	// Debug renders the raw component list: Vector(1, 2, 3).
	Debug Mode = iota
	// Simplified renders comma-joined values: Vector(1,2,3).
	Simplified
)

// ParseMode parses "debug" or "simplified" (also "simple").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "debug":
		return Debug, nil
	case "simplified", "simple":
		return Simplified, nil
	}
	return Debug, fmt.Errorf("vector: unknown format mode %q", s)
}

func (m Mode) String() string {
	if m == Simplified {
		return "simplified"
	}
	return "debug"
}

// Text renders v using mode.
func (v *Vector[T]) Text(mode Mode) string {
	sep := ", "
	if mode == Simplified {
		sep = ","
	}
	var sb strings.Builder
	sb.WriteString("Vector(")
	for i, x := range v.values {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(')')
	return sb.String()
}

// String renders v in Debug mode.
func (v *Vector[T]) String() string { return v.Text(Debug) }
