// Package design provides peaking-equalizer biquad coefficient design.
//
// [Peak] implements the Audio-EQ-Cookbook (Robert Bristow-Johnson) peaking
// filter: given a [PeakSpec] it returns [biquad.Coefficients] normalized so
// that A0 == 1, ready to be used as Direct Form I taps.
//
//	A     = 10^(gain/40)
//	w0    = 2*pi*f0/fs
//	alpha = sin(w0)/(2*Q)
//
//	b0 = 1 + alpha*A    a0 = 1 + alpha/A
//	b1 = -2*cos(w0)     a1 = -2*cos(w0)
//	b2 = 1 - alpha*A    a2 = 1 - alpha/A
//
// Invalid parameters fail fast with [ErrInvalidParameter]; a design whose
// leading denominator tap cannot be inverted fails with
// [ErrNumericDegeneracy].
package design
