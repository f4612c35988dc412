//go:build !arm64

package bruteforce

import "github.com/viant/vec/search"

// cosineDistanceWithMagnitude calls the library's exported non-arm64 entry
// point, which upstream names CosineDistanceWithMagnitudesNeon.
func cosineDistanceWithMagnitude(q search.Float32s, vec []float32, m1, m2 float32) float32 {
	return q.CosineDistanceWithMagnitudesNeon(vec, m1, m2)
}
