package response

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-peakeq/dsp/core"
	"github.com/cwbudde/algo-peakeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-peakeq/dsp/signal"
	"github.com/cwbudde/algo-peakeq/dsp/spectrum"
)

// Errors returned by the verifier.
var (
	ErrInvalidWindowSize = errors.New("response: window size must be >= 2")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrNotNormalized     = errors.New("response: coefficients must be normalized (a0 == 1)")
	ErrFrequencyRange    = errors.New("response: frequency outside [0, sampleRate/2]")
)

// Verifier measures the frequency response of biquad coefficients from their
// impulse response. A Verifier holds only configuration and is safe for
// concurrent use.
type Verifier struct {
	windowSize   int
	floorDB      float64
	truncationDB float64
	logger       *slog.Logger
}

// NewVerifier creates a Verifier with the given options.
func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{
		windowSize:   DefaultWindowSize,
		floorDB:      DefaultFloorDB,
		truncationDB: DefaultTruncationDB,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// WindowSize returns the analysis window length N.
func (v *Verifier) WindowSize() int { return v.windowSize }

// Verify filters a unit impulse of N samples through c, transforms the
// impulse response and returns the N/2+1 (frequency, dB) points.
func (v *Verifier) Verify(c biquad.Coefficients, sampleRate float64) (Response, error) {
	n := v.windowSize
	if n < 2 {
		return Response{}, fmt.Errorf("%w: %d", ErrInvalidWindowSize, n)
	}
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if !c.IsNormalized() {
		return Response{}, fmt.Errorf("%w: a0 = %v", ErrNotNormalized, c.A0)
	}

	gen := signal.NewGenerator(core.WithSampleRate(sampleRate), core.WithWindowSize(n))
	ir, err := gen.Impulse()
	if err != nil {
		return Response{}, fmt.Errorf("response: impulse: %w", err)
	}
	biquad.NewSection(c).ProcessBlock(ir)

	bins, err := spectrum.FFTReal(ir)
	if err != nil {
		return Response{}, fmt.Errorf("response: transform: %w", err)
	}
	mag := spectrum.Magnitude(spectrum.HalfSpectrum(bins))
	db := spectrum.MagnitudeDB(mag, v.floorDB)

	freqs, err := spectrum.FrequencyAxis(n, sampleRate)
	if err != nil {
		return Response{}, fmt.Errorf("response: frequency axis: %w", err)
	}

	r := Response{
		SampleRate: sampleRate,
		WindowSize: n,
		Impulse:    ir,
		Points:     make([]Point, len(freqs)),
	}
	for k := range freqs {
		r.Points[k] = Point{Freq: freqs[k], MagnitudeDB: db[k]}
	}

	decay, ok := c.DecayLength(v.truncationDB)
	switch {
	case !ok:
		r.DecayLength = -1
		r.Truncated = true
		v.logger.Warn("filter does not decay; measured response is not meaningful",
			"pole_radius", c.PoleRadius())
	case decay > n:
		r.DecayLength = decay
		r.Truncated = true
		v.logger.Warn("impulse response truncated; spectrum is a smoothed approximation",
			"window_size", n,
			"decay_samples", decay,
			"decay_db", v.truncationDB)
	default:
		r.DecayLength = decay
	}

	v.logger.Debug("verified response",
		"window_size", n,
		"sample_rate", sampleRate,
		"bins", len(r.Points),
		"decay_samples", r.DecayLength)

	return r, nil
}
