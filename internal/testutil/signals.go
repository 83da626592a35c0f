// Package testutil holds the probe signals and tolerance checks shared by
// the spectrum and response tests.
package testutil

import (
	"math"
	"math/rand/v2"
)

// UnitImpulse returns n samples with a single 1 at delay. A delay outside
// [0, n) yields silence.
func UnitImpulse(n, delay int) []float64 {
	out := make([]float64, n)
	if delay >= 0 && delay < n {
		out[delay] = 1
	}
	return out
}

// UnitStep returns n ones. Its spectrum is concentrated at DC.
func UnitStep(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Tone returns n samples of a unit-amplitude sine at freqHz with zero phase.
func Tone(freqHz, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = math.Sin(w * float64(i))
	}
	return out
}

// Noise returns n samples uniform in [-1, 1), reproducible for a given seed.
func Noise(seed uint64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}
