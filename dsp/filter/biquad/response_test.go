package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	sr := 48000.0
	for _, c := range []Coefficients{
		lowpassLike(),
		// Unnormalized taps exercise the A0 term of the closed form.
		{B0: 0.5, B1: 1, B2: 0.5, A0: 2, A1: -0.4, A2: 0.08},
	} {
		for _, freq := range []float64{0, 100, 500, 1000, 5000, 10000, 20000, 24000} {
			h := c.Response(freq, sr)
			fromResponse := real(h)*real(h) + imag(h)*imag(h)
			fromClosed := c.MagnitudeSquared(freq, sr)
			if !almostEqual(fromClosed, fromResponse, 1e-10) {
				t.Errorf("%+v freq=%v: MagnitudeSquared=%.15f, |Response|²=%.15f", c, freq, fromClosed, fromResponse)
			}
		}
	}
}

func TestMagnitudeDB_MatchesMagnitudeSquared(t *testing.T) {
	c := lowpassLike()
	sr := 48000.0

	for _, freq := range []float64{100, 1000, 10000} {
		db := c.MagnitudeDB(freq, sr)
		fromSq := 10 * math.Log10(c.MagnitudeSquared(freq, sr))
		if !almostEqual(db, fromSq, 1e-12) {
			t.Errorf("freq=%v: MagnitudeDB=%.15f, 10*log10(MagSq)=%.15f", freq, db, fromSq)
		}
	}
}

func TestPhase_MatchesResponse(t *testing.T) {
	c := lowpassLike()
	sr := 48000.0

	for _, freq := range []float64{100, 500, 1000, 5000, 10000} {
		fromResponse := cmplx.Phase(c.Response(freq, sr))
		if got := c.Phase(freq, sr); !almostEqual(got, fromResponse, 1e-10) {
			t.Errorf("freq=%v: Phase=%.15f, arg(Response)=%.15f", freq, got, fromResponse)
		}
	}
}

func TestResponse_Passthrough(t *testing.T) {
	c := passthrough()
	sr := 48000.0
	for _, freq := range []float64{0, 100, 1000, 10000, 24000} {
		if mag := cmplx.Abs(c.Response(freq, sr)); !almostEqual(mag, 1, 1e-12) {
			t.Errorf("freq=%v: |H|=%v, want 1", freq, mag)
		}
	}
}

func TestResponse_Allpass(t *testing.T) {
	// Mirrored numerator and denominator give |H(f)| = 1 for all f.
	a1, a2 := -0.5, 0.3
	c := Coefficients{B0: a2, B1: a1, B2: 1, A0: 1, A1: a1, A2: a2}
	sr := 48000.0
	for _, freq := range []float64{100, 500, 1000, 5000, 10000, 20000} {
		if mag := cmplx.Abs(c.Response(freq, sr)); !almostEqual(mag, 1, 1e-10) {
			t.Errorf("freq=%v: |H|=%.15f, want 1", freq, mag)
		}
	}
}

func TestSection_ImpulseResponse(t *testing.T) {
	c := lowpassLike()
	s := NewSection(c)

	s.ProcessSample(0.5)
	s.ProcessSample(0.3)
	savedState := s.State()

	ir := s.ImpulseResponse(8)

	if s.State() != savedState {
		t.Fatal("ImpulseResponse modified section state")
	}

	ref := NewSection(c)
	for i, want := range ir {
		var x float64
		if i == 0 {
			x = 1
		}
		if got := ref.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Errorf("ir[%d]: got %.15f, want %.15f", i, got, want)
		}
	}
}

func TestSection_ImpulseResponse_Zero(t *testing.T) {
	s := NewSection(passthrough())
	if ir := s.ImpulseResponse(0); ir != nil {
		t.Errorf("ImpulseResponse(0) should return nil, got %v", ir)
	}
	if ir := s.ImpulseResponse(-1); ir != nil {
		t.Errorf("ImpulseResponse(-1) should return nil, got %v", ir)
	}
}

func TestSection_ImpulseResponse_Passthrough(t *testing.T) {
	ir := NewSection(passthrough()).ImpulseResponse(5)
	want := []float64{1, 0, 0, 0, 0}
	for i := range ir {
		if !almostEqual(ir[i], want[i], eps) {
			t.Errorf("ir[%d]: got %v, want %v", i, ir[i], want[i])
		}
	}
}

func TestSection_ImpulseResponse_DFTMatchesAnalytic(t *testing.T) {
	// A direct DFT of a long impulse response of a fast-decaying filter must
	// equal the closed-form response.
	c := lowpassLike()
	const n = 64
	ir := NewSection(c).ImpulseResponse(n)
	sr := float64(n)

	for k := 0; k <= n/2; k++ {
		var sum complex128
		for i, v := range ir {
			sum += complex(v, 0) * cmplx.Exp(complex(0, -2*math.Pi*float64(k*i)/n))
		}
		want := c.Response(float64(k), sr)
		if cmplx.Abs(sum-want) > 1e-12 {
			t.Errorf("bin %d: DFT=%v, analytic=%v", k, sum, want)
		}
	}
}
