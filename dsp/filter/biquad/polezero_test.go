package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestCoefficientsPoleZeroPair_SecondOrder(t *testing.T) {
	p1 := complex(0.72, 0.19)
	p2 := cmplx.Conj(p1)
	z1 := complex(0.31, 0.44)
	z2 := cmplx.Conj(z1)

	b0 := 2.3
	c := Coefficients{
		B0: b0,
		B1: -b0 * real(z1+z2),
		B2: b0 * real(z1*z2),
		A0: 1,
		A1: -real(p1 + p2),
		A2: real(p1 * p2),
	}

	pair := c.PoleZeroPair()
	if !unorderedRootsClose(pair.Poles, p1, p2, 1e-12) {
		t.Fatalf("unexpected poles: got=%v want={%v,%v}", pair.Poles, p1, p2)
	}
	if !unorderedRootsClose(pair.Zeros, z1, z2, 1e-12) {
		t.Fatalf("unexpected zeros: got=%v want={%v,%v}", pair.Zeros, z1, z2)
	}
	if !almostEqual(c.PoleRadius(), cmplx.Abs(p1), 1e-12) {
		t.Fatalf("PoleRadius() = %v, want %v", c.PoleRadius(), cmplx.Abs(p1))
	}
	if !c.IsStable() {
		t.Fatal("poles inside the unit circle reported unstable")
	}
}

func TestCoefficientsPoleZeroPair_FirstOrder(t *testing.T) {
	c := Coefficients{B0: 1.0, B1: -0.3, A0: 1, A1: -0.8}

	pair := c.PoleZeroPair()
	if !unorderedRootsClose(pair.Poles, complex(0.8, 0), complex(0, 0), 1e-12) {
		t.Fatalf("unexpected first-order poles: %v", pair.Poles)
	}
	if !unorderedRootsClose(pair.Zeros, complex(0.3, 0), complex(0, 0), 1e-12) {
		t.Fatalf("unexpected first-order zeros: %v", pair.Zeros)
	}
}

func TestIsStable_Unstable(t *testing.T) {
	c := Coefficients{B0: 1, A0: 1, A1: -2.5, A2: 1}
	if c.IsStable() {
		t.Fatalf("poles %v reported stable", c.Poles())
	}
	if _, ok := c.DecayLength(-120); ok {
		t.Fatal("DecayLength should fail for an unstable section")
	}
}

func TestDecayLength(t *testing.T) {
	// Single pole at 0.5: envelope 0.5^n, -120 dB after 120/(20*log10 2) samples.
	c := Coefficients{B0: 1, A0: 1, A1: -0.5}
	n, ok := c.DecayLength(-120)
	if !ok {
		t.Fatal("DecayLength() not ok")
	}
	want := int(math.Ceil(6/math.Log10(2))) + 2
	if n != want {
		t.Fatalf("DecayLength() = %d, want %d", n, want)
	}

	ir := NewSection(c).ImpulseResponse(n)
	if tail := math.Abs(ir[n-1]); tail > 1e-6 {
		t.Fatalf("impulse response tail %v not below -120 dB", tail)
	}

	if n, ok := passthrough().DecayLength(-120); !ok || n != 3 {
		t.Fatalf("FIR DecayLength() = %d, %v; want 3, true", n, ok)
	}
	if _, ok := c.DecayLength(0); ok {
		t.Fatal("non-negative floor should be rejected")
	}
}

func TestDecayLength_NarrowerIsLonger(t *testing.T) {
	wide := Coefficients{B0: 1, A0: 1, A1: -0.9}
	narrow := Coefficients{B0: 1, A0: 1, A1: -0.99}
	nw, _ := wide.DecayLength(-100)
	nn, _ := narrow.DecayLength(-100)
	if nn <= nw {
		t.Fatalf("pole at 0.99 decays in %d samples, pole at 0.9 in %d", nn, nw)
	}
}

func unorderedRootsClose(got [2]complex128, want1, want2 complex128, tol float64) bool {
	return (rootsClose(got[0], want1, tol) && rootsClose(got[1], want2, tol)) ||
		(rootsClose(got[0], want2, tol) && rootsClose(got[1], want1, tol))
}

func rootsClose(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}
