package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-peakeq/dsp/spectrum"
)

func ExampleFFTReal() {
	// Impulse response of y[n] = x[n] + x[n-1].
	bins, err := spectrum.FFTReal([]float64{1, 1, 0, 0, 0, 0, 0, 0})
	if err != nil {
		panic(err)
	}

	half := spectrum.HalfSpectrum(bins)
	freqs, _ := spectrum.FrequencyAxis(len(bins), 8000)
	db := spectrum.MagnitudeDB(spectrum.Magnitude(half), -120)
	for k := range half {
		fmt.Printf("%4.0f Hz: %7.2f dB\n", freqs[k], db[k])
	}
	// Output:
	//    0 Hz:    6.02 dB
	// 1000 Hz:    5.33 dB
	// 2000 Hz:    3.01 dB
	// 3000 Hz:   -2.32 dB
	// 4000 Hz: -120.00 dB
}

func ExampleMagnitude() {
	mag := spectrum.Magnitude([]complex128{complex(3, 4), complex(0, -2)})
	fmt.Printf("%.1f %.1f\n", mag[0], mag[1])
	// Output:
	// 5.0 2.0
}
