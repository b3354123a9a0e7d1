package matching

import (
	"fmt"
	"math"
)

// Cosine computes the cosine similarity of two vectors in the same space,
// clamped to [0,1]. A zero-magnitude vector on either side scores 0, never
// NaN. A dimensionality mismatch means a stale VectorSpace was mixed with
// fresh job data, which is a contract violation, so it panics.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vector dimension mismatch: %d vs %d", len(a), len(b)))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return clamp01(sim)
}

// blendText combines cosine similarity with the classifier likelihood:
// alpha*cosine + (1-alpha)*probability. With no classifier alpha is
// effectively 1.
func blendText(cosine, probability, alpha float64) float64 {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return clamp01(alpha*cosine + (1-alpha)*probability)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
