package testutil

import (
	"math"
	"testing"
)

// RequireClose fails t if got and want differ in length or any pair differs
// by more than tol.
func RequireClose(t *testing.T, what string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: %d values, want %d", what, len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); !(d <= tol) {
			t.Fatalf("%s[%d] = %v, want %v (off by %g, tol %g)", what, i, got[i], want[i], d, tol)
		}
	}
}

// RequireFinite fails t on the first NaN or Inf in data.
func RequireFinite(t *testing.T, what string, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s[%d] = %v", what, i, v)
		}
	}
}

// RequireNearDB fails t if a level in dB differs from want by more than tolDB.
func RequireNearDB(t *testing.T, what string, got, want, tolDB float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tolDB {
		t.Fatalf("%s: got %.4f dB, want %.4f dB (±%.4f)", what, got, want, tolDB)
	}
}

// RequireIncreasing fails t unless x is strictly increasing, as a frequency
// axis must be.
func RequireIncreasing(t *testing.T, what string, x []float64) {
	t.Helper()
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			t.Fatalf("%s not increasing at %d: %v after %v", what, i, x[i], x[i-1])
		}
	}
}

// MaxDeviation returns the largest absolute difference between a and b, or
// +Inf if their lengths differ.
func MaxDeviation(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var worst float64
	for i := range a {
		worst = math.Max(worst, math.Abs(a[i]-b[i]))
	}
	return worst
}
