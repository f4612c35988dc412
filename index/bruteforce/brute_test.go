package bruteforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/vecmath/vector"
)

func vecs(values ...[]float32) []*vector.Vector[float32] {
	out := make([]*vector.Vector[float32], len(values))
	for i, v := range values {
		out[i] = vector.New(v...)
	}
	return out
}

func TestIndex_Query(t *testing.T) {
	var idx Index
	require.NoError(t, idx.Build(
		[]string{"x", "y", "xy", "neg"},
		vecs([]float32{1, 0}, []float32{0, 1}, []float32{1, 1}, []float32{-1, 0}),
	))
	assert.Equal(t, 4, idx.Len())

	tests := []struct {
		name  string
		query []float32
		k     int
		want  []string
	}{
		{"Top1", []float32{2, 0}, 1, []string{"x"}},
		{"Top2", []float32{1, 0.1}, 2, []string{"x", "xy"}},
		{"All", []float32{1, 0}, 0, []string{"x", "xy", "y", "neg"}},
		{"KLargerThanIndex", []float32{0, 1}, 10, []string{"y", "xy", "x", "neg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, scores, err := idx.Query(vector.New(tt.query...), tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
			require.Len(t, scores, len(ids))
			for i := 1; i < len(scores); i++ {
				assert.GreaterOrEqual(t, scores[i-1], scores[i])
			}
		})
	}

	ids, scores, err := idx.Query(vector.New[float32](3, 0), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ids)
	assert.InDelta(t, 1, scores[0], 1e-6)
}

func TestIndex_SkipsZeroVectors(t *testing.T) {
	var idx Index
	require.NoError(t, idx.Build([]string{"zero", "one"}, vecs([]float32{0, 0}, []float32{1, 0})))

	ids, _, err := idx.Query(vector.New[float32](1, 0), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, ids)

	ids, _, err = idx.Query(vector.New[float32](0, 0), 0)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIndex_Errors(t *testing.T) {
	var idx Index
	assert.Error(t, idx.Build([]string{"a"}, nil))

	err := idx.Build([]string{"a", "b"}, vecs([]float32{1, 0}, []float32{1, 0, 0}))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	err = idx.Build([]string{"a"}, []*vector.Vector[float32]{nil})
	assert.ErrorIs(t, err, vector.ErrTypeMismatch)

	require.NoError(t, idx.Build([]string{"a"}, vecs([]float32{1, 0})))
	_, _, err = idx.Query(vector.New[float32](1, 0, 0), 1)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, _, err = idx.Query(nil, 1)
	assert.ErrorIs(t, err, vector.ErrTypeMismatch)
}

func TestIndex_EmptyQuery(t *testing.T) {
	var idx Index
	require.NoError(t, idx.Build(nil, nil))
	ids, scores, err := idx.Query(vector.New[float32](1), 3)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Empty(t, scores)
}

func TestIndex_MarshalRoundTrip(t *testing.T) {
	var idx Index
	require.NoError(t, idx.Build(
		[]string{"a", "bb", "ccc"},
		vecs([]float32{0.5, -1, 2}, []float32{1, 1, 1}, []float32{-3, 0, 0.25}),
	))
	data, err := idx.MarshalBinary()
	require.NoError(t, err)

	var restored Index
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, idx.ids, restored.ids)
	assert.Equal(t, idx.vecs, restored.vecs)
	assert.Equal(t, idx.mags, restored.mags)

	q := vector.New[float32](1, 1, 1)
	wantIDs, wantScores, err := idx.Query(q, 0)
	require.NoError(t, err)
	gotIDs, gotScores, err := restored.Query(q, 0)
	require.NoError(t, err)
	assert.Equal(t, wantIDs, gotIDs)
	assert.Equal(t, wantScores, gotScores)
}

func TestIndex_UnmarshalInvalid(t *testing.T) {
	var idx Index
	assert.Error(t, idx.UnmarshalBinary(nil))

	require.NoError(t, idx.Build([]string{"a"}, vecs([]float32{1, 2})))
	data, err := idx.MarshalBinary()
	require.NoError(t, err)
	assert.Error(t, idx.UnmarshalBinary(data[:len(data)-2]))
}
