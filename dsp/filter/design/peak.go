package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-peakeq/dsp/core"
	"github.com/cwbudde/algo-peakeq/dsp/filter/biquad"
)

var (
	// ErrInvalidParameter is returned for out-of-range sample rate, center
	// frequency, Q or gain.
	ErrInvalidParameter = errors.New("design: invalid parameter")

	// ErrNumericDegeneracy is returned when the designed taps cannot be
	// normalized (a0 zero or non-finite, or a non-finite coefficient).
	ErrNumericDegeneracy = errors.New("design: numeric degeneracy")
)

// PeakSpec describes a peaking-EQ band. Positive GainDB boosts, negative
// cuts, 0 dB yields a neutral filter.
type PeakSpec struct {
	SampleRate float64 // Hz, > 0
	CenterFreq float64 // Hz, in (0, SampleRate/2)
	Q          float64 // > 0, higher is narrower
	GainDB     float64 // dB at CenterFreq
}

// Validate reports whether s can be designed. Errors wrap
// ErrInvalidParameter.
func (s PeakSpec) Validate(opts ...PeakOption) error {
	return s.validate(applyPeakOpts(opts))
}

func (s PeakSpec) validate(cfg peakConfig) error {
	if !(s.SampleRate > 0) || !core.IsFinite(s.SampleRate) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidParameter, s.SampleRate)
	}
	nyquist := s.SampleRate / 2
	if !(s.CenterFreq > 0 && s.CenterFreq < nyquist) {
		return fmt.Errorf("%w: center frequency %v Hz must be in (0, %v)", ErrInvalidParameter, s.CenterFreq, nyquist)
	}
	if !(s.Q > 0) || !core.IsFinite(s.Q) {
		return fmt.Errorf("%w: Q must be > 0: %v", ErrInvalidParameter, s.Q)
	}
	if !core.IsFinite(s.GainDB) {
		return fmt.Errorf("%w: gain must be finite: %v", ErrInvalidParameter, s.GainDB)
	}

	if cfg.hasLimits {
		l := cfg.limits
		if s.Q < l.MinQ || s.Q > l.MaxQ {
			return fmt.Errorf("%w: Q %v outside [%v, %v]", ErrInvalidParameter, s.Q, l.MinQ, l.MaxQ)
		}
		if s.GainDB < l.MinGainDB || s.GainDB > l.MaxGainDB {
			return fmt.Errorf("%w: gain %v dB outside [%v, %v]", ErrInvalidParameter, s.GainDB, l.MinGainDB, l.MaxGainDB)
		}
	}

	return nil
}

// A returns the amplitude term 10^(GainDB/40). The /40 splits the gain
// symmetrically between numerator and denominator.
func (s PeakSpec) A() float64 {
	return math.Pow(10, s.GainDB/40)
}

// W0 returns the normalized center frequency 2*pi*CenterFreq/SampleRate in
// rad/sample.
func (s PeakSpec) W0() float64 {
	return 2 * math.Pi * s.CenterFreq / s.SampleRate
}

// Alpha returns sin(w0)/(2*Q), the bandwidth term.
func (s PeakSpec) Alpha() float64 {
	return math.Sin(s.W0()) / (2 * s.Q)
}

// Peak designs a peaking-EQ biquad using the RBJ cookbook formula. The
// result has A0 == 1 exactly.
func Peak(spec PeakSpec, opts ...PeakOption) (biquad.Coefficients, error) {
	cfg := applyPeakOpts(opts)
	if err := spec.validate(cfg); err != nil {
		return biquad.Coefficients{}, err
	}

	w0 := spec.W0()
	cw := math.Cos(w0)
	alpha := spec.Alpha()
	a := spec.A()

	raw := biquad.Coefficients{
		B0: 1 + alpha*a,
		B1: -2 * cw,
		B2: 1 - alpha*a,
		A0: 1 + alpha/a,
		A1: -2 * cw,
		A2: 1 - alpha/a,
	}

	c, err := raw.Normalize()
	if err != nil {
		return biquad.Coefficients{}, fmt.Errorf("%w: %+v: %w", ErrNumericDegeneracy, spec, err)
	}

	return c, nil
}

// PeakOrIdentity is Peak for processing paths that must keep running: on
// error it returns pass-through coefficients together with the error.
func PeakOrIdentity(spec PeakSpec, opts ...PeakOption) (biquad.Coefficients, error) {
	c, err := Peak(spec, opts...)
	if err != nil {
		return biquad.Identity(), err
	}

	return c, nil
}
