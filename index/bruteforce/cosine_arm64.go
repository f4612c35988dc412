//go:build arm64

package bruteforce

import "github.com/viant/vec/search"

// cosineDistanceWithMagnitude calls the library's exported arm64 entry point.
func cosineDistanceWithMagnitude(q search.Float32s, vec []float32, m1, m2 float32) float32 {
	return q.CosineDistanceWithMagnitude(vec, m1, m2)
}
