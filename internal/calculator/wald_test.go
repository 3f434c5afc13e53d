package calculator

import (
	"math"
	"testing"
)

func TestWaldInterval_ReferenceFixture(t *testing.T) {
	// 120 conversions out of 1000 visitors at 95% confidence.
	stderr, lower, upper, err := WaldInterval(0.12, 1000, 0.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(stderr-0.010276) > 1e-5 {
		t.Errorf("expected stderr ~0.010276, got %.6f", stderr)
	}
	if math.Abs(lower-0.0999) > 5e-4 {
		t.Errorf("expected lower ~0.0999, got %.4f", lower)
	}
	if math.Abs(upper-0.1401) > 5e-4 {
		t.Errorf("expected upper ~0.1401, got %.4f", upper)
	}
	if lower > 0.12 || upper < 0.12 {
		t.Errorf("interval [%.4f, %.4f] must contain the rate", lower, upper)
	}
}

func TestWaldInterval_DegenerateRates(t *testing.T) {
	for _, rate := range []float64{0, 1} {
		stderr, lower, upper, err := WaldInterval(rate, 500, 0.95)
		if err != nil {
			t.Fatalf("rate %.0f: unexpected error: %v", rate, err)
		}
		if stderr != 0 {
			t.Errorf("rate %.0f: expected zero stderr, got %g", rate, stderr)
		}
		if lower != rate || upper != rate {
			t.Errorf("rate %.0f: expected point interval, got [%g, %g]", rate, lower, upper)
		}
		if math.IsNaN(stderr) || math.IsNaN(lower) || math.IsNaN(upper) {
			t.Errorf("rate %.0f: NaN in result", rate)
		}
	}
}

func TestWaldInterval_InvalidInputs(t *testing.T) {
	tests := []struct {
		name       string
		rate       float64
		n          int
		confidence float64
	}{
		{"zero n", 0.5, 0, 0.95},
		{"negative n", 0.5, -10, 0.95},
		{"rate above one", 1.1, 100, 0.95},
		{"negative rate", -0.1, 100, 0.95},
		{"confidence zero", 0.5, 100, 0},
		{"confidence one", 0.5, 100, 1},
	}
	for _, tt := range tests {
		if _, _, _, err := WaldInterval(tt.rate, tt.n, tt.confidence); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestCriticalValue_95Percent(t *testing.T) {
	z, err := CriticalValue(0.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(z-1.96) > 1e-3 {
		t.Errorf("expected z ~1.96, got %.4f", z)
	}
}
