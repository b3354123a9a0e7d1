package matching

import (
	"math"
	"testing"
)

func TestCosine_Identical(t *testing.T) {
	v := []float64{0.2, 0.5, 0.1}
	got := Cosine(v, v)
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected 1.0, got %f", got)
	}
}

func TestCosine_Orthogonal(t *testing.T) {
	if got := Cosine([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	got := Cosine([]float64{0, 0, 0}, []float64{0.3, 0.1, 0.2})
	if got != 0 {
		t.Fatalf("expected 0 for zero vector, got %f", got)
	}
	if math.IsNaN(got) {
		t.Fatalf("zero vector produced NaN")
	}
}

func TestCosine_DimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on dimension mismatch")
		}
	}()
	Cosine([]float64{1, 2}, []float64{1, 2, 3})
}

func TestBlendText_Bounds(t *testing.T) {
	if got := blendText(1, 1, 0.5); got != 1 {
		t.Fatalf("expected 1, got %f", got)
	}
	if got := blendText(0.4, 0.8, 0.5); math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("expected 0.6, got %f", got)
	}
	// alpha=1 ignores the classifier
	if got := blendText(0.4, 0.9, 1); math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("expected 0.4, got %f", got)
	}
}
