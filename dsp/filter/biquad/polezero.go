package biquad

import (
	"math"
	"math/cmplx"
)

// PoleZeroPair stores the two poles and two zeros of one biquad section.
// For first-order sections, the second pole/zero is 0.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles returns the z-plane poles of the section denominator:
//
//	A0 + A1*z^-1 + A2*z^-2 = 0
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(c.A0, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleZeroPair returns both poles and zeros for a single section.
func (c Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{
		Poles: c.Poles(),
		Zeros: c.Zeros(),
	}
}

// PoleRadius returns the largest pole magnitude.
func (c Coefficients) PoleRadius() float64 {
	p := c.Poles()
	return math.Max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// IsStable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) IsStable() bool {
	r := c.PoleRadius()
	return r < 1 && !math.IsNaN(r)
}

// DecayLength estimates how many samples the impulse response needs for its
// envelope to fall floorDB (negative, e.g. -120) below its start, using the
// dominant pole radius. ok is false for unstable or marginal sections.
//
// This is the window length beyond which truncating the impulse response no
// longer changes its spectrum by more than the floor.
func (c Coefficients) DecayLength(floorDB float64) (n int, ok bool) {
	if floorDB >= 0 {
		return 0, false
	}

	r := c.PoleRadius()
	if math.IsNaN(r) || r >= 1 {
		return 0, false
	}
	if r == 0 {
		// FIR: the response ends after the numerator taps.
		return 3, true
	}

	samples := (floorDB / 20) / math.Log10(r)
	if samples > math.MaxInt32 {
		return 0, false
	}

	return int(math.Ceil(samples)) + 2, true
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
