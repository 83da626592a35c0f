package design_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-peakeq/dsp/filter/design"
)

func ExamplePeak() {
	spec := design.PeakSpec{SampleRate: 44100, CenterFreq: 5000, Q: 5, GainDB: -12}
	c, err := design.Peak(spec)
	if err != nil {
		panic(err)
	}

	fmt.Printf("b = [%.6f, %.6f, %.6f]\n", c.B0, c.B1, c.B2)
	fmt.Printf("a = [%.6f, %.6f, %.6f]\n", c.A0, c.A1, c.A2)
	fmt.Printf("|H(5000 Hz)| = %.2f dB\n", c.MagnitudeDB(5000, spec.SampleRate))
	// Output:
	// b = [0.913609, -1.338990, 0.855649]
	// a = [1.000000, -1.338990, 0.769258]
	// |H(5000 Hz)| = -12.00 dB
}

func ExamplePeak_invalid() {
	_, err := design.Peak(design.PeakSpec{SampleRate: 44100, CenterFreq: 22050, Q: 1, GainDB: 6})
	fmt.Println(errors.Is(err, design.ErrInvalidParameter))
	// Output:
	// true
}
