package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates the discrete-time Fourier transform of the processed
// samples at one arbitrary frequency.
//
// Unlike an FFT bin, the target frequency need not be a multiple of
// sampleRate/N, which makes it the right probe for reading a filter's
// response exactly at its center frequency from a finite impulse response.
//
// The analyzer is stateful and accumulates information from each processed
// sample. Power() and Magnitude() evaluate the frequency component based on
// all samples processed since the last Reset().
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel creates a new Goertzel analyzer for the target frequency.
//
// frequency must be between 0 and sampleRate/2.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessSample updates the internal state with a single input sample.
func (g *Goertzel) ProcessSample(input float64) {
	s := input + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns the squared magnitude of the frequency component.
//
// This is typically called after processing a block of samples.
// The result is equivalent to |X[k]|^2 from a DFT of the same block length.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the frequency component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// PowerDB returns the power in decibels (dB) with a safe floor at -300 dB.
func (g *Goertzel) PowerDB() float64 {
	p := g.Power()
	if p <= 1e-30 {
		return -300
	}

	return 10 * math.Log10(p)
}

// MagnitudeDB returns 20*log10 of the magnitude. For an impulse response
// this is the filter gain in dB at the target frequency.
func (g *Goertzel) MagnitudeDB() float64 {
	return g.PowerDB()
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

// MultiGoertzel manages multiple Goertzel analyzers for batch processing.
type MultiGoertzel struct {
	analyzers []*Goertzel
}

// NewMultiGoertzel creates a set of Goertzel analyzers for multiple frequencies.
func NewMultiGoertzel(frequencies []float64, sampleRate float64) (*MultiGoertzel, error) {
	analyzers := make([]*Goertzel, len(frequencies))
	for i, f := range frequencies {
		g, err := NewGoertzel(f, sampleRate)
		if err != nil {
			return nil, err
		}

		analyzers[i] = g
	}

	return &MultiGoertzel{analyzers: analyzers}, nil
}

// ProcessBlock updates all analyzers with the same input block.
func (m *MultiGoertzel) ProcessBlock(input []float64) {
	for _, g := range m.analyzers {
		g.ProcessBlock(input)
	}
}

// Powers returns the powers for all analyzers.
func (m *MultiGoertzel) Powers() []float64 {
	p := make([]float64, len(m.analyzers))
	for i, g := range m.analyzers {
		p[i] = g.Power()
	}

	return p
}

// MagnitudesDB returns the magnitude in dB for all analyzers.
func (m *MultiGoertzel) MagnitudesDB() []float64 {
	db := make([]float64, len(m.analyzers))
	for i, g := range m.analyzers {
		db[i] = g.MagnitudeDB()
	}

	return db
}

// Reset resets all analyzers.
func (m *MultiGoertzel) Reset() {
	for _, g := range m.analyzers {
		g.Reset()
	}
}
