package spectrum

import (
	"fmt"
	"math/cmplx"
	"sort"
	"sync"

	"github.com/cwbudde/algo-peakeq/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// This uses the SIMD kernels of algo-vecmath when available (AVX2, SSE2,
// NEON). Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// MagnitudeDB converts linear magnitudes to 20*log10 dB. Zero magnitudes map
// to floorDB instead of -Inf.
func MagnitudeDB(mag []float64, floorDB float64) []float64 {
	if len(mag) == 0 {
		return nil
	}
	out := make([]float64, len(mag))
	for i, m := range mag {
		out[i] = core.LinearToDBFloor(m, floorDB)
	}
	return out
}

// InterpolateLinear performs piecewise-linear interpolation at queryX.
// Queries outside [x[0], x[len-1]] clamp to the end values.
//
// x must be strictly increasing and have the same length as y.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("interpolate requires non-empty x and y")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("interpolate x/y length mismatch: %d != %d", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("interpolate x must be strictly increasing at index %d", i)
		}
	}

	out := make([]float64, len(queryX))
	for i, q := range queryX {
		if q <= x[0] {
			out[i] = y[0]
			continue
		}
		if q >= x[len(x)-1] {
			out[i] = y[len(y)-1]
			continue
		}

		j := sort.SearchFloat64s(x, q)
		x0, x1 := x[j-1], x[j]
		t := (q - x0) / (x1 - x0)
		out[i] = y[j-1] + t*(y[j]-y[j-1])
	}
	return out, nil
}
