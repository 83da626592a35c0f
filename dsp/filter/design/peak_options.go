package design

// PeakOption configures Peak and PeakSpec.Validate.
type PeakOption func(*peakConfig)

type peakConfig struct {
	limits    Limits
	hasLimits bool
}

// Limits bounds the user-facing Q and gain ranges. These are product limits
// on top of physical validity, not part of the filter math.
type Limits struct {
	MinQ, MaxQ           float64
	MinGainDB, MaxGainDB float64
}

// DefaultLimits returns the ranges of a typical parametric EQ band:
// Q in [0.1, 10] and gain in [-24, +24] dB.
func DefaultLimits() Limits {
	return Limits{
		MinQ:      0.1,
		MaxQ:      10,
		MinGainDB: -24,
		MaxGainDB: 24,
	}
}

// WithLimits rejects specs whose Q or gain falls outside l with
// ErrInvalidParameter. Without this option only physical validity is checked.
func WithLimits(l Limits) PeakOption {
	return func(c *peakConfig) {
		c.limits = l
		c.hasLimits = true
	}
}

func applyPeakOpts(opts []PeakOption) peakConfig {
	var cfg peakConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	return cfg
}
