package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrEmptyInput is returned when a transform is requested for no samples.
var ErrEmptyInput = errors.New("spectrum: empty input")

type planEntry struct {
	mu   sync.Mutex
	plan *algofft.Plan[complex128]
	in   []complex128
}

// Tiny transforms are not worth a cached plan.
const minPlanSize = 8

var (
	planMu    sync.Mutex
	planCache = map[int]*planEntry{}
)

func cachedPlan(n int) (*planEntry, error) {
	planMu.Lock()
	defer planMu.Unlock()

	if e, ok := planCache[n]; ok {
		return e, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan for %d points: %w", n, err)
	}
	e := &planEntry{plan: plan, in: make([]complex128, n)}
	planCache[n] = e
	return e, nil
}

// FFTReal returns all len(x) complex DFT bins of the real sequence x,
//
//	X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N)
//
// N need not be a power of two; power-of-two lengths are faster.
// It is safe for concurrent use.
func FFTReal(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n >= minPlanSize && isPowerOf2(n) {
		return fftPow2(x)
	}
	return fftMixedRadix(x), nil
}

func fftPow2(x []float64) ([]complex128, error) {
	e, err := cachedPlan(len(x))
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i, v := range x {
		e.in[i] = complex(v, 0)
	}
	out := make([]complex128, len(x))
	if err := e.plan.Forward(out, e.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	return out, nil
}

// fftMixedRadix uses gonum's real transform, which yields the N/2+1
// non-redundant bins, and restores the upper half by Hermitian symmetry.
func fftMixedRadix(x []float64) []complex128 {
	n := len(x)
	half := fourier.NewFFT(n).Coefficients(nil, x)

	out := make([]complex128, n)
	copy(out, half)
	for k := 1; k < n-len(half)+1; k++ {
		out[n-k] = cmplx.Conj(out[k])
	}
	return out
}

// HalfSpectrum returns the first N/2+1 bins, the non-redundant half of the
// DFT of a real signal. The result aliases bins.
func HalfSpectrum(bins []complex128) []complex128 {
	if len(bins) == 0 {
		return nil
	}
	return bins[:len(bins)/2+1]
}

// FrequencyAxis returns the center frequency in Hz of each of the N/2+1
// non-redundant bins of an N-point DFT: k*sampleRate/N.
//
// For even N the axis runs from 0 to exactly sampleRate/2. For odd N there
// is no Nyquist bin and the last point is (N-1)/2*sampleRate/N, just below
// sampleRate/2 (N=2049 at 44100 Hz ends at 22039.24 Hz). Every point stays
// on the bin it labels.
func FrequencyAxis(n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spectrum: frequency axis size must be > 0: %d", n)
	}
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("spectrum: frequency axis sample rate must be > 0: %v", sampleRate)
	}

	out := make([]float64, n/2+1)
	binHz := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * binHz
	}
	return out, nil
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
