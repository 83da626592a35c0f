package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-peakeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-peakeq/dsp/filter/design"
	"github.com/cwbudde/algo-peakeq/internal/config"
	"github.com/cwbudde/algo-peakeq/measure/response"
	"github.com/cwbudde/algo-peakeq/plot"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type flags struct {
	configPath string
	sampleRate float64
	centerFreq float64
	q          float64
	gainDB     float64
	windowSize int
	plotPath   string
	format     string
	color      string
	table      bool
	logX       bool
	strict     bool
	verbose    bool
}

func newFlagSet(stderr io.Writer, f *flags) *flag.FlagSet {
	def := config.Default()
	fs := flag.NewFlagSet("peakeq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML run file; flags given explicitly override it")
	fs.Float64Var(&f.sampleRate, "fs", def.Filter.SampleRate, "sample rate in Hz")
	fs.Float64Var(&f.centerFreq, "f0", def.Filter.CenterFreq, "center frequency in Hz")
	fs.Float64Var(&f.q, "q", def.Filter.Q, "quality factor")
	fs.Float64Var(&f.gainDB, "gain", def.Filter.GainDB, "gain at the center frequency in dB")
	fs.IntVar(&f.windowSize, "n", def.Analysis.WindowSize, "impulse response length (DFT size)")
	fs.StringVar(&f.plotPath, "plot", "", "write the magnitude response chart to this .png or .svg file")
	fs.StringVar(&f.format, "format", "", "chart format (png, svg); default from the -plot extension")
	fs.StringVar(&f.color, "color", "", "chart line color as #rrggbb")
	fs.BoolVar(&f.table, "table", false, "print a decimated frequency/dB table")
	fs.BoolVar(&f.logX, "logx", false, "logarithmic frequency axis")
	fs.BoolVar(&f.strict, "strict", false, "reject Q outside [0.1, 10] and gain outside [-24, 24] dB")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: peakeq [flags]\n\n")
		fmt.Fprintf(stderr, "Designs a peaking-EQ biquad, prints b and a, and verifies the\n")
		fmt.Fprintf(stderr, "magnitude response measured from its impulse response.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  peakeq -f0 2000 -q 1 -gain 8\n")
		fmt.Fprintf(stderr, "  peakeq -gain 6 -plot response.png -logx\n")
		fmt.Fprintf(stderr, "  peakeq -config run.yaml -table\n")
	}
	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var f flags
	fs := newFlagSet(stderr, &f)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return exitUsage
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(fs, &f)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return exitError
	}

	if err := execute(cfg, stdout, logger); err != nil {
		logger.Error("peakeq failed", "err", err)
		return exitError
	}
	return exitOK
}

// loadConfig starts from the defaults or the -config file, applies every
// flag that was set explicitly and validates the merged result once.
func loadConfig(fs *flag.FlagSet, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.ReadFile(f.configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "fs":
			cfg.Filter.SampleRate = f.sampleRate
		case "f0":
			cfg.Filter.CenterFreq = f.centerFreq
		case "q":
			cfg.Filter.Q = f.q
		case "gain":
			cfg.Filter.GainDB = f.gainDB
		case "n":
			cfg.Analysis.WindowSize = f.windowSize
		case "plot":
			cfg.Plot.Output = f.plotPath
		case "format":
			cfg.Plot.Format = f.format
		case "color":
			cfg.Plot.Color = f.color
		case "table":
			cfg.Plot.Table = f.table
		case "logx":
			cfg.Plot.LogX = f.logX
		case "strict":
			cfg.Limits.Strict = f.strict
		}
	})

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func execute(cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	spec := cfg.PeakSpec()
	coeffs, err := design.Peak(spec, cfg.PeakOptions()...)
	if err != nil {
		return fmt.Errorf("design: %w", err)
	}
	logger.Debug("designed peaking filter",
		"A", spec.A(),
		"w0", spec.W0(),
		"alpha", spec.Alpha(),
		"pole_radius", coeffs.PoleRadius())

	printCoefficients(stdout, coeffs)

	v := response.NewVerifier(append(cfg.VerifierOptions(), response.WithLogger(logger))...)
	resp, err := v.Verify(coeffs, spec.SampleRate)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	sum, err := v.Summarize(spec, coeffs, resp)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	printSummary(stdout, spec, resp, sum)

	if cfg.Plot.Table {
		fmt.Fprintln(stdout)
		t := plot.NewTableRenderer(stdout, plot.WithMaxRows(cfg.Plot.TableRows))
		if err := t.Render(resp.Frequencies(), resp.MagnitudesDB()); err != nil {
			return err
		}
	}

	if cfg.Plot.Output != "" {
		if err := writeChart(cfg, spec, resp); err != nil {
			return err
		}
		logger.Info("wrote chart", "path", cfg.Plot.Output)
	}
	return nil
}

func writeChart(cfg *config.Config, spec design.PeakSpec, resp response.Response) (err error) {
	format, err := cfg.PlotFormat()
	if err != nil {
		return err
	}
	title := cfg.Plot.Title
	if title == "" {
		title = fmt.Sprintf("Peaking EQ  f0=%g Hz  Q=%g  gain=%g dB  fs=%g Hz",
			spec.CenterFreq, spec.Q, spec.GainDB, spec.SampleRate)
	}

	out, err := os.Create(cfg.Plot.Output)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close chart: %w", cerr)
		}
	}()

	opts := []plot.ChartOption{
		plot.WithTitle(title),
		plot.WithFormat(format),
		plot.WithSize(cfg.Plot.Width, cfg.Plot.Height),
		plot.WithLogFrequency(cfg.Plot.LogX),
	}
	if cfg.Plot.Color != "" {
		c, err := plot.ParseColor(cfg.Plot.Color)
		if err != nil {
			return err
		}
		opts = append(opts, plot.WithColor(c))
	}
	return plot.NewChartRenderer(out, opts...).Render(resp.Frequencies(), resp.MagnitudesDB())
}

func printCoefficients(w io.Writer, c biquad.Coefficients) {
	fmt.Fprintf(w, "b = %s\n", formatVector(c.B()))
	fmt.Fprintf(w, "a = %s\n", formatVector(c.A()))
}

func formatVector(v [3]float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func printSummary(w io.Writer, spec design.PeakSpec, r response.Response, s response.Summary) {
	fmt.Fprintf(w, "\nresponse: N=%d bins=%d resolution=%.3f Hz\n",
		r.WindowSize, len(r.Points), r.SampleRate/float64(r.WindowSize))
	fmt.Fprintf(w, "  center %g Hz: %.3f dB (target %.3f dB, bin-interpolated %.3f dB)\n",
		spec.CenterFreq, s.CenterDB, s.TargetGainDB, s.CenterBinDB)
	fmt.Fprintf(w, "  DC: %.3f dB  Nyquist: %.3f dB\n", s.DCDB, s.NyquistDB)
	fmt.Fprintf(w, "  max deviation from analytic response: %.3g dB\n", s.MaxErrorDB)
	switch {
	case r.DecayLength < 0:
		fmt.Fprintf(w, "  truncated: yes (filter does not decay)\n")
	case r.Truncated:
		fmt.Fprintf(w, "  truncated: yes (needs about %d samples)\n", r.DecayLength)
	default:
		fmt.Fprintf(w, "  truncated: no (decays within %d samples)\n", r.DecayLength)
	}
}
