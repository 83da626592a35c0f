package biquad

import (
	"errors"
	"math"
)

// ErrDegenerate is returned when the leading denominator coefficient is zero
// or any coefficient is NaN or Inf, so the transfer function cannot be
// normalized.
var ErrDegenerate = errors.New("biquad: degenerate coefficients")

// Coefficients holds the transfer function taps of a single second-order
// section. After [Coefficients.Normalize], A0 is exactly 1 and the triple
// (B, A) fully determines the difference equation.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A0, A1, A2 float64 // feedback (denominator)
}

// Identity returns pass-through coefficients: b = [1 0 0], a = [1 0 0].
func Identity() Coefficients {
	return Coefficients{B0: 1, A0: 1}
}

// Normalize divides all six taps by A0 and returns the monic result.
func (c Coefficients) Normalize() (Coefficients, error) {
	a0 := c.A0
	if a0 == 0 || !c.finite() {
		return Coefficients{}, ErrDegenerate
	}

	n := Coefficients{
		B0: c.B0 / a0,
		B1: c.B1 / a0,
		B2: c.B2 / a0,
		A0: 1,
		A1: c.A1 / a0,
		A2: c.A2 / a0,
	}
	if !n.finite() {
		return Coefficients{}, ErrDegenerate
	}

	return n, nil
}

// IsNormalized reports whether A0 is exactly 1.
func (c Coefficients) IsNormalized() bool {
	return c.A0 == 1
}

// B returns the numerator taps as [B0, B1, B2].
func (c Coefficients) B() [3]float64 {
	return [3]float64{c.B0, c.B1, c.B2}
}

// A returns the denominator taps as [A0, A1, A2].
func (c Coefficients) A() [3]float64 {
	return [3]float64{c.A0, c.A1, c.A2}
}

func (c Coefficients) finite() bool {
	for _, v := range [...]float64{c.B0, c.B1, c.B2, c.A0, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
