package vector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		text func(Mode) string
		want map[Mode]string
	}{
		{
			name: "Int",
			text: New(1, 2, 3).Text,
			want: map[Mode]string{Debug: "Vector(1, 2, 3)", Simplified: "Vector(1,2,3)"},
		},
		{
			name: "Float",
			text: New(1.5, -2.0).Text,
			want: map[Mode]string{Debug: "Vector(1.5, -2)", Simplified: "Vector(1.5,-2)"},
		},
		{
			name: "Single",
			text: New[int32](7).Text,
			want: map[Mode]string{Debug: "Vector(7)", Simplified: "Vector(7)"},
		},
		{
			name: "Empty",
			text: New[float32]().Text,
			want: map[Mode]string{Debug: "Vector()", Simplified: "Vector()"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for mode, want := range tt.want {
				assert.Equal(t, want, tt.text(mode), mode.String())
			}
		})
	}
}

func TestStringUsesDebug(t *testing.T) {
	v := New(1, 2)
	assert.Equal(t, "Vector(1, 2)", v.String())
	assert.Equal(t, "Vector(1, 2)", fmt.Sprint(v))
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":           Debug,
		"debug":      Debug,
		"DEBUG":      Debug,
		"simplified": Simplified,
		" simple ":   Simplified,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("pretty")
	assert.Error(t, err)
}
