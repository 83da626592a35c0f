package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-peakeq/internal/testutil"
)

func TestGoertzel_Basic(t *testing.T) {
	sampleRate := 48000.0
	freq0 := 1000.0
	length := 1024
	sig := testutil.Tone(freq0, sampleRate, length)

	goertzel, err := NewGoertzel(freq0, sampleRate)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}

	goertzel.ProcessBlock(sig)
	pwr := goertzel.Power()

	// Compare with a direct DFT calculation at that exact frequency.
	var dft complex128

	for n, x := range sig {
		angle := -2 * math.Pi * freq0 / sampleRate * float64(n)
		dft += complex(x, 0) * cmplx.Exp(complex(0, angle))
	}

	wantP := real(dft)*real(dft) + imag(dft)*imag(dft)

	// Use a relative tolerance for power as it can grow large
	if math.Abs(pwr-wantP) > 1e-7*wantP {
		t.Errorf("Power mismatch: got %v, want %v (diff %v)", pwr, wantP, math.Abs(pwr-wantP))
	}

	mag := goertzel.Magnitude()

	wantMag := cmplx.Abs(dft)
	if math.Abs(mag-wantMag) > 1e-7*wantMag {
		t.Errorf("Magnitude mismatch: got %v, want %v (diff %v)", mag, wantMag, math.Abs(mag-wantMag))
	}
}

func TestGoertzel_Reset(t *testing.T) {
	sampleRate := 48000.0
	freq0 := 1000.0
	goertzel, _ := NewGoertzel(freq0, sampleRate)
	goertzel.ProcessSample(1.0)

	if goertzel.Power() == 0 {
		t.Error("Power should be non-zero after processing")
	}

	goertzel.Reset()

	if goertzel.Power() != 0 {
		t.Error("Power should be zero after reset")
	}
}

func TestGoertzel_Accessors(t *testing.T) {
	g, err := NewGoertzel(1000, 48000)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}
	if g.Frequency() != 1000 || g.SampleRate() != 48000 {
		t.Errorf("accessors: got %v Hz @ %v", g.Frequency(), g.SampleRate())
	}

	for _, tc := range []struct{ f, sr float64 }{
		{-1, 48000},
		{24001, 48000},
		{math.NaN(), 48000},
		{1000, 0},
		{1000, math.Inf(1)},
	} {
		if _, err := NewGoertzel(tc.f, tc.sr); err == nil {
			t.Errorf("NewGoertzel(%v, %v) should fail", tc.f, tc.sr)
		}
	}
}

func TestGoertzel_ImpulseResponseGain(t *testing.T) {
	// y[n] = x[n] + 0.5 y[n-1]: H(w) = 1/(1 - 0.5 e^-jw).
	ir := make([]float64, 128)
	ir[0] = 1
	for i := 1; i < len(ir); i++ {
		ir[i] = 0.5 * ir[i-1]
	}

	sr := 48000.0
	for _, f := range []float64{0, 1234.5, 12000, 24000} {
		g, err := NewGoertzel(f, sr)
		if err != nil {
			t.Fatalf("NewGoertzel: %v", err)
		}
		g.ProcessBlock(ir)

		w := 2 * math.Pi * f / sr
		want := 20 * math.Log10(1/cmplx.Abs(1-0.5*cmplx.Exp(complex(0, -w))))
		if got := g.MagnitudeDB(); math.Abs(got-want) > 1e-9 {
			t.Errorf("%v Hz: MagnitudeDB=%v, want %v", f, got, want)
		}
	}
}

func TestMultiGoertzel(t *testing.T) {
	sampleRate := 48000.0
	freqs := []float64{100, 1000, 5000}

	mg, err := NewMultiGoertzel(freqs, sampleRate)
	if err != nil {
		t.Fatalf("NewMultiGoertzel: %v", err)
	}

	sig := testutil.Tone(1000, sampleRate, 1024)
	mg.ProcessBlock(sig)
	powers := mg.Powers()

	if len(powers) != 3 {
		t.Fatalf("Expected 3 powers, got %d", len(powers))
	}

	// Power at 1000 Hz should be much higher than at 100 or 5000 Hz
	if powers[1] <= powers[0] || powers[1] <= powers[2] {
		t.Errorf("Expected peak at index 1, got %v", powers)
	}

	db := mg.MagnitudesDB()
	for i := range db {
		want := 10 * math.Log10(powers[i])
		if math.Abs(db[i]-want) > 1e-9 {
			t.Errorf("MagnitudesDB[%d] = %v, want %v", i, db[i], want)
		}
	}

	mg.Reset()

	powers = mg.Powers()
	for i, p := range powers {
		if p != 0 {
			t.Errorf("Power at index %d should be 0 after reset, got %v", i, p)
		}
	}
}

func TestGoertzel_EdgeCases(t *testing.T) {
	// DC
	goertzel, _ := NewGoertzel(0, 48000)
	goertzel.ProcessBlock(testutil.UnitStep(100))
	pwr := goertzel.Power()
	// DFT sum for DC of 1.0 is 100. Power is 100^2 = 10000.
	if math.Abs(pwr-10000) > 1e-9 {
		t.Errorf("DC power mismatch: got %v, want 10000", pwr)
	}

	// Nyquist
	goertzel, _ = NewGoertzel(24000, 48000)

	sig := make([]float64, 100)
	for i := range sig {
		if i%2 == 0 {
			sig[i] = 1.0
		} else {
			sig[i] = -1.0
		}
	}

	goertzel.ProcessBlock(sig)

	pwr = goertzel.Power()
	if math.Abs(pwr-10000) > 1e-9 {
		t.Errorf("Nyquist power mismatch: got %v, want 10000", pwr)
	}

	// dB Power
	goertzel, _ = NewGoertzel(1000, 48000)
	if goertzel.PowerDB() != -300 {
		t.Errorf("Expected -300 dB for zero power, got %v", goertzel.PowerDB())
	}
}
