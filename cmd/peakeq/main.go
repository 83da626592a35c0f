// Command peakeq designs a peaking-EQ biquad, prints its coefficients and
// verifies the design by measuring the frequency response of its impulse
// response.
//
// Usage:
//
//	peakeq [flags]
//
// Without flags it designs a -12 dB cut at 5 kHz (Q 5, 44.1 kHz) and
// analyses it over 2048 samples.
//
// Examples:
//
//	peakeq
//	peakeq -f0 2000 -q 1 -gain 8
//	peakeq -gain 6 -plot response.png -logx
//	peakeq -config run.yaml -table
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
