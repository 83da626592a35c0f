package response

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-peakeq/dsp/spectrum"
)

// Point is one bin of a measured frequency response.
type Point struct {
	Freq        float64 // Hz
	MagnitudeDB float64 // 20*log10|H|
}

// Response is the measured magnitude response of a filter.
type Response struct {
	SampleRate float64
	WindowSize int

	// Impulse is the N-sample impulse response the spectrum was taken from.
	Impulse []float64

	// Points holds N/2+1 bins from 0 Hz up to SampleRate/2.
	Points []Point

	// DecayLength is the estimated number of samples for the impulse
	// response to decay below the truncation level, or -1 if it never does.
	DecayLength int

	// Truncated reports that DecayLength exceeds WindowSize.
	Truncated bool
}

// Frequencies returns the frequency axis in Hz.
func (r Response) Frequencies() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Freq
	}
	return out
}

// MagnitudesDB returns the magnitude of every point in dB.
func (r Response) MagnitudesDB() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.MagnitudeDB
	}
	return out
}

// At returns the magnitude in dB at freq, linearly interpolated between the
// two neighboring bins.
func (r Response) At(freq float64) (float64, error) {
	if err := r.checkFreq(freq); err != nil {
		return 0, err
	}
	v, err := spectrum.InterpolateLinear(r.Frequencies(), r.MagnitudesDB(), []float64{freq})
	if err != nil {
		return 0, fmt.Errorf("response: %w", err)
	}
	return v[0], nil
}

// Nearest returns the bin closest to freq.
func (r Response) Nearest(freq float64) (Point, error) {
	if err := r.checkFreq(freq); err != nil {
		return Point{}, err
	}
	k := int(math.Round(freq * float64(r.WindowSize) / r.SampleRate))
	if k >= len(r.Points) {
		k = len(r.Points) - 1
	}
	return r.Points[k], nil
}

// Peak returns the bin with the largest deviation from 0 dB, i.e. the
// strongest boost or cut.
func (r Response) Peak() Point {
	var best Point
	for _, p := range r.Points {
		if math.Abs(p.MagnitudeDB) > math.Abs(best.MagnitudeDB) {
			best = p
		}
	}
	return best
}

func (r Response) checkFreq(freq float64) error {
	if len(r.Points) == 0 {
		return fmt.Errorf("response: empty response")
	}
	if !(freq >= 0 && freq <= r.SampleRate/2) {
		return fmt.Errorf("%w: %v Hz", ErrFrequencyRange, freq)
	}
	return nil
}
