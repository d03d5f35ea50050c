// Package similarity scores directional alignment between feature vectors.
package similarity

import "math"

// Neutral is returned when similarity is undefined: empty vectors or a
// zero-norm vector (an all-default profile has no direction to compare).
const Neutral = 0.5

// Cosine returns the cosine similarity of a and b rescaled to [0,1]:
// opposite profiles score 0, orthogonal 0.5, identical 1.
//
// The dot product runs over the shared prefix of the two vectors; in the
// steady state both come from the same questionnaire and have equal length.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return Neutral
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	normA := norm(a)
	normB := norm(b)
	if normA == 0 || normB == 0 {
		return Neutral
	}
	cos := dot / (normA * normB)
	return (cos + 1) / 2
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
