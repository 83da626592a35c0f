package response

import (
	"log/slog"

	"github.com/cwbudde/algo-peakeq/dsp/core"
)

const (
	// DefaultWindowSize is the impulse length used when none is configured.
	DefaultWindowSize = core.DefaultWindowSize

	// DefaultFloorDB bounds the dB conversion of zero-magnitude bins.
	DefaultFloorDB = -300.0

	// DefaultTruncationDB is the decay level the impulse response must reach
	// inside the window for the measurement to count as untruncated.
	DefaultTruncationDB = -100.0
)

// Option configures a Verifier.
type Option func(*Verifier)

// WithWindowSize sets the analysis window length N. Any N >= 2 works;
// powers of two are fastest. With an odd N the last point lies half a bin
// below sampleRate/2 (see spectrum.FrequencyAxis).
func WithWindowSize(n int) Option {
	return func(v *Verifier) {
		v.windowSize = n
	}
}

// WithFloorDB sets the lowest reported magnitude in dB.
func WithFloorDB(db float64) Option {
	return func(v *Verifier) {
		v.floorDB = db
	}
}

// WithTruncationDB sets the decay level (negative dB) used to decide whether
// the window holds the whole impulse response.
func WithTruncationDB(db float64) Option {
	return func(v *Verifier) {
		if db < 0 {
			v.truncationDB = db
		}
	}
}

// WithLogger sets the logger for truncation warnings and debug output.
// A nil logger keeps the verifier silent.
func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}
