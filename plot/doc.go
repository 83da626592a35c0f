// Package plot renders a magnitude response (frequency in Hz against level
// in dB) behind a minimal [Renderer] interface.
//
// [ChartRenderer] draws a line chart as PNG or SVG with go-chart.
// [TableRenderer] writes an aligned text table for terminals and logs.
package plot
