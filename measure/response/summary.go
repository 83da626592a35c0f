package response

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-peakeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-peakeq/dsp/filter/design"
	"github.com/cwbudde/algo-peakeq/dsp/spectrum"
)

// Summary compares a measured response with the design target.
type Summary struct {
	TargetGainDB float64

	// CenterDB, DCDB and NyquistDB are read from the impulse response at the
	// exact frequency, not from the nearest bin.
	CenterDB  float64
	DCDB      float64
	NyquistDB float64

	// CenterBinDB is the bin-interpolated value at the center frequency, the
	// number a plot of the response shows.
	CenterBinDB float64

	// AnalyticCenterDB is |H(f0)| evaluated from the transfer function.
	AnalyticCenterDB float64

	// MaxErrorDB is the largest deviation between measured bins and the
	// analytic response. It grows with truncation.
	MaxErrorDB float64

	Truncated bool
}

// CenterErrorDB returns the deviation of the measured center gain from the
// target.
func (s Summary) CenterErrorDB() float64 {
	return s.CenterDB - s.TargetGainDB
}

// Summarize evaluates r, measured from c, against the design target spec.
func (v *Verifier) Summarize(spec design.PeakSpec, c biquad.Coefficients, r Response) (Summary, error) {
	if r.SampleRate != spec.SampleRate {
		return Summary{}, fmt.Errorf("response: measured at %v Hz, designed for %v Hz", r.SampleRate, spec.SampleRate)
	}
	if len(r.Impulse) == 0 {
		return Summary{}, fmt.Errorf("response: missing impulse response")
	}

	probes, err := spectrum.NewMultiGoertzel([]float64{spec.CenterFreq, 0, spec.SampleRate / 2}, spec.SampleRate)
	if err != nil {
		return Summary{}, fmt.Errorf("response: %w", err)
	}
	probes.ProcessBlock(r.Impulse)
	db := probes.MagnitudesDB()

	centerBin, err := r.At(spec.CenterFreq)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		TargetGainDB:     spec.GainDB,
		CenterDB:         db[0],
		DCDB:             db[1],
		NyquistDB:        db[2],
		CenterBinDB:      centerBin,
		AnalyticCenterDB: c.MagnitudeDB(spec.CenterFreq, spec.SampleRate),
		Truncated:        r.Truncated,
	}
	for _, p := range r.Points {
		want := math.Max(c.MagnitudeDB(p.Freq, spec.SampleRate), v.floorDB)
		if d := math.Abs(p.MagnitudeDB - want); d > s.MaxErrorDB {
			s.MaxErrorDB = d
		}
	}

	v.logger.Debug("response summary",
		"target_db", s.TargetGainDB,
		"center_db", s.CenterDB,
		"dc_db", s.DCDB,
		"nyquist_db", s.NyquistDB,
		"max_error_db", s.MaxErrorDB)

	return s, nil
}
