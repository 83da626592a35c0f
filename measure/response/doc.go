// Package response verifies a biquad design by measurement.
//
// A [Verifier] excites the filter with a unit impulse of a fixed analysis
// length N, transforms the resulting impulse response with a DFT and reports
// the magnitude in dB of the N/2+1 non-redundant bins against a linear
// frequency axis from 0 to sampleRate/2.
//
// # Truncation
//
// The measured spectrum is that of the first N samples of the impulse
// response. When the filter rings longer than N samples (high Q, center
// frequency close to DC, or a small N) the result is a smoothed
// approximation of the true response. This is a property of the method,
// not an error: [Response.Truncated] flags it, using the decay length
// implied by the dominant pole radius.
//
// # Usage
//
//	v := response.NewVerifier(response.WithWindowSize(2048))
//	r, err := v.Verify(coeffs, 44100)
//	db, err := r.At(5000)
package response
