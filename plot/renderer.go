package plot

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Errors returned by renderers.
var (
	ErrLengthMismatch = errors.New("plot: x and y lengths differ")
	ErrEmptySeries    = errors.New("plot: series has too few points")
	ErrUnknownFormat  = errors.New("plot: unknown image format")
	ErrInvalidColor   = errors.New("plot: color must be #rgb or #rrggbb")
)

// Renderer draws one series of (x, y) pairs.
type Renderer interface {
	Render(x, y []float64) error
}

// Format selects the encoding of a chart image.
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "png" or "svg" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatForPath derives the format from a file extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseColor parses a hex line color such as "#d62728" or "f80".
func ParseColor(s string) (drawing.Color, error) {
	s = strings.TrimSpace(s)
	if !hexColor.MatchString(s) {
		return drawing.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#")), nil
}

func checkSeries(x, y []float64, minPoints int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < minPoints {
		return fmt.Errorf("%w: %d < %d", ErrEmptySeries, len(x), minPoints)
	}
	return nil
}

// valueRange returns the finite extent of v, widened to at least minSpan.
func valueRange(v []float64, minSpan float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if lo > hi {
		return -minSpan / 2, minSpan / 2
	}
	if hi-lo < minSpan {
		mid := (lo + hi) / 2
		lo, hi = mid-minSpan/2, mid+minSpan/2
	}
	return lo, hi
}
