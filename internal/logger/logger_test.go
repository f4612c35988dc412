package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer string

func (s stringer) String() string { return string(s) }

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLogPut(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, slog.LevelDebug).WithKind(stringer("float64"))

	l.LogPut(context.Background(), "v1", 3, nil)
	rec := decode(t, &buf)
	assert.Equal(t, "put completed", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "v1", rec["id"])
	assert.Equal(t, float64(3), rec["dimension"])
	assert.Equal(t, "float64", rec["kind"])

	buf.Reset()
	l.LogPut(context.Background(), "v2", 3, errors.New("disk full"))
	rec = decode(t, &buf)
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "disk full", rec["error"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, slog.LevelInfo)

	l.LogGet(context.Background(), "v1", nil)
	l.LogRemove(context.Background(), "v1", nil)
	l.LogQuery(context.Background(), 5, 2, nil)
	assert.Empty(t, buf.String())

	l.LogRemove(context.Background(), "v1", errors.New("gone"))
	rec := decode(t, &buf)
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "remove failed", rec["msg"])
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelDebug).WithKind(stringer("int32"))
	l.Info("hello")
	assert.Contains(t, buf.String(), "kind=int32")
}

func TestNoopAndFrom(t *testing.T) {
	assert.NotPanics(t, func() {
		Noop().LogQuery(context.Background(), 1, 0, errors.New("x"))
		From(nil).LogPut(context.Background(), "id", 1, nil)
	})

	var buf bytes.Buffer
	From(slog.New(slog.NewTextHandler(&buf, nil))).Info("wrapped")
	assert.Contains(t, buf.String(), "msg=wrapped")
}
