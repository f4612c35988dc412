package bruteforce

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/viant/vec/search"
	"github.com/viant/vecmath/index"
	"github.com/viant/vecmath/vector"
)

// Index is a simple brute-force vector index implementing cosine similarity.
type Index struct {
	ids  []string
	vecs []search.Float32s
	dim  int
	mags []float32
}

// Build loads ids and vectors and precomputes magnitudes.
func (i *Index) Build(ids []string, vectors []*vector.Vector[float32]) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.mags, i.dim = nil, nil, nil, 0
		return nil
	}
	dim := -1
	vecs := make([]search.Float32s, len(vectors))
	mags := make([]float32, len(vectors))
	for j, v := range vectors {
		if v == nil {
			return fmt.Errorf("bruteforce: vector %q: %w", ids[j], &vector.TypeError{Expected: "vector", Got: "nil"})
		}
		if dim == -1 {
			dim = v.Len()
		}
		if v.Len() != dim {
			return fmt.Errorf("bruteforce: vector %q: %w", ids[j], &vector.DimensionError{Expected: dim, Actual: v.Len()})
		}
		vecs[j] = search.Float32s(v.Slice())
		mags[j] = vecs[j].Magnitude()
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = vecs
	i.dim = dim
	i.mags = mags
	return nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// Query returns top-k by cosine similarity. k <= 0 returns every match.
func (i *Index) Query(query *vector.Vector[float32], k int) ([]string, []float64, error) {
	if query == nil {
		return nil, nil, &vector.TypeError{Expected: "query vector", Got: "nil"}
	}
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if query.Len() != i.dim {
		return nil, nil, fmt.Errorf("bruteforce: query: %w", &vector.DimensionError{Expected: i.dim, Actual: query.Len()})
	}
	q := search.Float32s(query.Slice())
	qm := q.Magnitude()
	if qm == 0 {
		return nil, nil, nil
	}
	type scored struct {
		idx   int
		score float64
	}
	scoreds := make([]scored, 0, len(i.vecs))
	for j := range i.vecs {
		if i.mags[j] == 0 {
			continue
		}
		d := cosineDistanceWithMagnitude(q, i.vecs[j], qm, i.mags[j])
		scoreds = append(scoreds, scored{idx: j, score: 1 - float64(d)})
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].score > scoreds[b].score })
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outScores := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outScores[n] = scoreds[n].score
	}
	return outIDs, outScores, nil
}

// MarshalBinary stores: n(uint32), then for each item:
// idLen(uint32), id bytes, blobLen(uint32), vector.Encode blob.
func (i *Index) MarshalBinary() ([]byte, error) {
	out := binary.LittleEndian.AppendUint32(nil, uint32(len(i.ids)))
	for idx, id := range i.ids {
		blob, err := vector.Encode(vector.New([]float32(i.vecs[idx])...))
		if err != nil {
			return nil, err
		}
		out = binary.LittleEndian.AppendUint32(out, uint32(len(id)))
		out = append(out, id...)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(blob)))
		out = append(out, blob...)
	}
	return out, nil
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return errors.New("bruteforce: invalid data")
	}
	off := 0
	next := func(n int) ([]byte, error) {
		if off+n > len(data) {
			return nil, errors.New("bruteforce: truncated")
		}
		b := data[off : off+n]
		off += n
		return b, nil
	}
	u32 := func() (int, error) {
		b, err := next(4)
		if err != nil {
			return 0, err
		}
		return int(binary.LittleEndian.Uint32(b)), nil
	}
	n, _ := u32()
	ids := make([]string, 0, n)
	vecs := make([]*vector.Vector[float32], 0, n)
	for idx := 0; idx < n; idx++ {
		idLen, err := u32()
		if err != nil {
			return err
		}
		id, err := next(idLen)
		if err != nil {
			return err
		}
		blobLen, err := u32()
		if err != nil {
			return err
		}
		blob, err := next(blobLen)
		if err != nil {
			return err
		}
		v, err := vector.Decode[float32](blob)
		if err != nil {
			return fmt.Errorf("bruteforce: item %d: %w", idx, err)
		}
		if v == nil {
			v = vector.New[float32]()
		}
		ids = append(ids, string(id))
		vecs = append(vecs, v)
	}
	return i.Build(ids, vecs)
}

var _ index.Index = (*Index)(nil)
