package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-peakeq/dsp/core"
)

// Generator creates deterministic probe signals from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Impulse generates a unit impulse of the configured window size: sample 0
// is 1 and every other sample is 0. Filtering it yields the impulse response
// of any linear time-invariant system.
func (g *Generator) Impulse() ([]float64, error) {
	return Impulse(g.cfg.WindowSize)
}

// Sine generates a sine wave at the configured sample rate.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Impulse returns a unit impulse of the given length.
func Impulse(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	out[0] = 1
	return out, nil
}
