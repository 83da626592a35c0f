package biquad

import "fmt"

// Bank runs the same coefficients over several independent channels, each
// with its own delay lines.
type Bank struct {
	coeffs   Coefficients
	sections []Section
}

// NewBank returns a Bank with the given number of channels and zero state.
func NewBank(c Coefficients, channels int) (*Bank, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("biquad: channel count must be > 0: %d", channels)
	}
	b := &Bank{
		coeffs:   c,
		sections: make([]Section, channels),
	}
	for i := range b.sections {
		b.sections[i].Coefficients = c
	}
	return b, nil
}

// Channels returns the channel count.
func (b *Bank) Channels() int { return len(b.sections) }

// Coefficients returns the shared coefficients.
func (b *Bank) Coefficients() Coefficients { return b.coeffs }

// SetCoefficients replaces the coefficients of every channel. Filter state
// is kept so a redesign does not click.
func (b *Bank) SetCoefficients(c Coefficients) {
	b.coeffs = c
	for i := range b.sections {
		b.sections[i].Coefficients = c
	}
}

// ProcessChannel filters buf in place using the state of channel ch.
func (b *Bank) ProcessChannel(ch int, buf []float64) error {
	if ch < 0 || ch >= len(b.sections) {
		return fmt.Errorf("biquad: channel %d out of range [0, %d)", ch, len(b.sections))
	}
	b.sections[ch].ProcessBlock(buf)
	return nil
}

// Process filters one buffer per channel in place. len(bufs) must not
// exceed the channel count.
func (b *Bank) Process(bufs [][]float64) error {
	if len(bufs) > len(b.sections) {
		return fmt.Errorf("biquad: %d buffers for %d channels", len(bufs), len(b.sections))
	}
	for ch, buf := range bufs {
		b.sections[ch].ProcessBlock(buf)
	}
	return nil
}

// Reset clears the state of every channel.
func (b *Bank) Reset() {
	for i := range b.sections {
		b.sections[i].Reset()
	}
}
