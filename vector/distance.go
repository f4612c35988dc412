package vector

import (
	"fmt"
	"math"
)

// CosineSimilarity computes the cosine similarity between two vectors. It
// returns an error if the vectors have different lengths, are empty, or if
// either vector has zero magnitude.
func CosineSimilarity[T Scalar](a, b *Vector[T]) (float64, error) {
	if a == nil {
		return 0, &TypeError{Expected: fmt.Sprintf("%T", b), Got: "nil"}
	}
	if err := a.checkShape(b); err != nil {
		return 0, err
	}
	if a.Len() == 0 {
		return 0, fmt.Errorf("vector: cosine similarity on empty vectors")
	}
	var dot, na2, nb2 float64
	for i := range a.values {
		va := float64(a.values[i])
		vb := float64(b.values[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, fmt.Errorf("%w: cosine similarity with zero-magnitude vector", ErrDivisionByZero)
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}

// Distance computes the Euclidean (L2) distance between two vectors. It
// returns an error if the vectors have different lengths.
func Distance[T Scalar](a, b *Vector[T]) (float64, error) {
	if a == nil {
		return 0, &TypeError{Expected: fmt.Sprintf("%T", b), Got: "nil"}
	}
	if err := a.checkShape(b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a.values {
		d := float64(a.values[i]) - float64(b.values[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
