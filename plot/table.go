package plot

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TableOption configures a TableRenderer.
type TableOption func(*TableRenderer)

// WithMaxRows limits the table to about n rows by decimation. The first and
// last points are always kept. n <= 0 prints every point.
func WithMaxRows(n int) TableOption {
	return func(r *TableRenderer) { r.maxRows = n }
}

// WithPrecision sets the number of decimals printed for both columns.
func WithPrecision(digits int) TableOption {
	return func(r *TableRenderer) {
		if digits >= 0 {
			r.precision = digits
		}
	}
}

// TableRenderer writes "frequency  magnitude" rows to w.
type TableRenderer struct {
	w         io.Writer
	maxRows   int
	precision int
}

// NewTableRenderer returns a table renderer writing to w.
func NewTableRenderer(w io.Writer, opts ...TableOption) *TableRenderer {
	r := &TableRenderer{w: w, maxRows: 32, precision: 2}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render writes the table.
func (r *TableRenderer) Render(x, y []float64) error {
	if err := checkSeries(x, y, 1); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "freq_hz\tmagnitude_db\t")
	for _, i := range rowIndices(len(x), r.maxRows) {
		fmt.Fprintf(tw, "%.*f\t%.*f\t\n", r.precision, x[i], r.precision, y[i])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("plot: write table: %w", err)
	}
	return nil
}

// rowIndices picks up to maxRows evenly spaced indices including both ends.
func rowIndices(n, maxRows int) []int {
	if maxRows <= 0 || n <= maxRows {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if maxRows == 1 {
		return []int{0}
	}
	idx := make([]int, 0, maxRows)
	step := float64(n-1) / float64(maxRows-1)
	for k := range maxRows {
		i := int(float64(k)*step + 0.5)
		if len(idx) > 0 && i == idx[len(idx)-1] {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}
