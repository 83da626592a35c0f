// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// [Coefficients] carries the six taps of the transfer function
//
//	       B0 + B1*z^-1 + B2*z^-2
//	H(z) = ----------------------
//	       A0 + A1*z^-1 + A2*z^-2
//
// and a [Section] runs the Direct Form I difference equation
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// on coefficients normalized so that A0 == 1. A [Bank] keeps one such
// state per audio channel.
//
// This package provides the processing runtime and analytic response only.
// Coefficient design lives in dsp/filter/design.
package biquad
