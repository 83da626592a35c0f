// Package spectrum provides the frequency-domain half of filter verification.
//
// [FFTReal] transforms a real sequence of any length into its complex DFT
// bins. Power-of-two lengths run on cached algo-fft plans; other lengths
// fall back to gonum's mixed-radix transform. The remaining helpers turn
// bins into magnitudes, decibels and a matching frequency axis, and
// [Goertzel] evaluates single frequencies that do not sit on a bin.
package spectrum
