package core

// DefaultWindowSize is the analysis length used when none is configured.
const DefaultWindowSize = 2048

// ProcessorConfig defines the shared sample rate and analysis length.
type ProcessorConfig struct {
	SampleRate float64
	WindowSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used by the design tools:
// CD sample rate and a 2048-sample analysis window.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		WindowSize: DefaultWindowSize,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWindowSize sets the analysis window length. Non-positive values are ignored.
func WithWindowSize(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.WindowSize = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
