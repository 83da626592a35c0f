package plot

import (
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 1024
	defaultHeight = 512
)

// ChartOption configures a ChartRenderer.
type ChartOption func(*ChartRenderer)

// WithTitle sets the chart title.
func WithTitle(title string) ChartOption {
	return func(r *ChartRenderer) { r.title = title }
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) ChartOption {
	return func(r *ChartRenderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// WithFormat selects PNG or SVG output.
func WithFormat(f Format) ChartOption {
	return func(r *ChartRenderer) { r.format = f }
}

// WithLogFrequency plots the x axis on a log10 scale with decade ticks.
// Points at or below 0 Hz are dropped.
func WithLogFrequency(enabled bool) ChartOption {
	return func(r *ChartRenderer) { r.logX = enabled }
}

// WithSeriesName sets the legend label of the plotted series.
func WithSeriesName(name string) ChartOption {
	return func(r *ChartRenderer) { r.seriesName = name }
}

// WithColor sets the line color.
func WithColor(c drawing.Color) ChartOption {
	return func(r *ChartRenderer) { r.color = c }
}

// ChartRenderer draws a magnitude response as a line chart into w.
type ChartRenderer struct {
	w          io.Writer
	title      string
	seriesName string
	width      int
	height     int
	format     Format
	logX       bool
	color      drawing.Color
}

// NewChartRenderer returns a renderer writing the encoded image to w.
func NewChartRenderer(w io.Writer, opts ...ChartOption) *ChartRenderer {
	r := &ChartRenderer{
		w:          w,
		title:      "Magnitude response",
		seriesName: "|H(f)|",
		width:      defaultWidth,
		height:     defaultHeight,
		format:     FormatPNG,
		color:      chart.ColorBlue,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render draws y (dB) against x (Hz) and encodes the image.
func (r *ChartRenderer) Render(x, y []float64) error {
	if err := checkSeries(x, y, 2); err != nil {
		return err
	}

	xAxis := chart.XAxis{Name: "Frequency (Hz)"}
	xs, ys := x, y
	if r.logX {
		xs, ys = logScale(x, y)
		if len(xs) < 2 {
			return fmt.Errorf("%w: %d positive frequencies", ErrEmptySeries, len(xs))
		}
		lo, hi := xs[0], xs[len(xs)-1]
		xAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
		xAxis.Ticks = decadeTicks(lo, hi)
	} else {
		xAxis.Range = &chart.ContinuousRange{Min: x[0], Max: x[len(x)-1]}
	}

	lo, hi := valueRange(ys, 2)
	yAxis := chart.YAxis{
		Name:  "Magnitude (dB)",
		Range: &chart.ContinuousRange{Min: math.Floor(lo - 1), Max: math.Ceil(hi + 1)},
	}

	ch := chart.Chart{
		Title:      r.title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    r.seriesName,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: r.color,
					StrokeWidth: 2,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	provider := chart.PNG
	if r.format == FormatSVG {
		provider = chart.SVG
	}
	if err := ch.Render(provider, r.w); err != nil {
		return fmt.Errorf("plot: render %s: %w", r.format, err)
	}
	return nil
}

// logScale maps x to log10(x), dropping non-positive frequencies.
func logScale(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i, f := range x {
		if f <= 0 {
			continue
		}
		xs = append(xs, math.Log10(f))
		ys = append(ys, y[i])
	}
	return xs, ys
}

// decadeTicks labels 1-2-5 steps per decade between lo and hi (log10 Hz).
func decadeTicks(lo, hi float64) []chart.Tick {
	var ticks []chart.Tick
	for d := math.Floor(lo); d <= math.Ceil(hi); d++ {
		for _, m := range []float64{1, 2, 5} {
			f := m * math.Pow(10, d)
			v := math.Log10(f)
			if v < lo || v > hi {
				continue
			}
			ticks = append(ticks, chart.Tick{Value: v, Label: formatHz(f)})
		}
	}
	return ticks
}

func formatHz(f float64) string {
	if f >= 1000 {
		return fmt.Sprintf("%gk", f/1000)
	}
	return fmt.Sprintf("%g", f)
}
