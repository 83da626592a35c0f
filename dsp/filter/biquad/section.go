package biquad

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form I processing: the two most recent inputs and
// outputs are kept separately. Coefficients must be normalized (A0 == 1);
// A0 itself is not used by the recursion.
type Section struct {
	Coefficients

	x1, x2 float64
	y1, y2 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.x1 + s.B2*s.x2 - s.A1*s.y1 - s.A2*s.y2

	s.x2, s.x1 = s.x1, x
	s.y2, s.y1 = s.y1, y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	x1, x2, y1, y2 := s.x1, s.x2, s.y1, s.y2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s.x1, s.x2, s.y1, s.y2 = x1, x2, y1, y2
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay lines to zero.
func (s *Section) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}

// State returns the current delay-line state [x1, x2, y1, y2].
func (s *Section) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [4]float64) {
	s.x1, s.x2 = state[0], state[1]
	s.y1, s.y2 = state[2], state[3]
}
