package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-peakeq/plot"
)

// Load reads the YAML run file at path and returns a validated [Config].
// Keys missing from the file keep their [Default] values.
func Load(path string) (*Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %q: %w", path, err)
	}
	return cfg, nil
}

// ReadFile decodes the YAML run file at path over the defaults without
// validating it. Callers that layer further overrides on top (command-line
// flags) validate the merged result themselves.
func ReadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: decode %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML run file from r over the defaults and
// validates the result. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if err := cfg.PeakSpec().Validate(cfg.PeakOptions()...); err != nil {
		errs = append(errs, fmt.Errorf("filter: %w", err))
	}

	if cfg.Analysis.WindowSize < 2 {
		errs = append(errs, fmt.Errorf("analysis.window_size %d must be >= 2", cfg.Analysis.WindowSize))
	}
	if cfg.Analysis.TruncationDB >= 0 {
		errs = append(errs, fmt.Errorf("analysis.truncation_db %.1f must be negative", cfg.Analysis.TruncationDB))
	}

	if cfg.Plot.Format != "" {
		if _, err := plot.ParseFormat(cfg.Plot.Format); err != nil {
			errs = append(errs, fmt.Errorf("plot.format: %w", err))
		}
	} else if cfg.Plot.Output != "" {
		if _, err := plot.FormatForPath(cfg.Plot.Output); err != nil {
			errs = append(errs, fmt.Errorf("plot.output %q: set plot.format or use a .png/.svg extension", cfg.Plot.Output))
		}
	}
	if cfg.Plot.Color != "" {
		if _, err := plot.ParseColor(cfg.Plot.Color); err != nil {
			errs = append(errs, fmt.Errorf("plot.color: %w", err))
		}
	}
	if cfg.Plot.Width < 0 || cfg.Plot.Height < 0 {
		errs = append(errs, fmt.Errorf("plot size %dx%d must not be negative", cfg.Plot.Width, cfg.Plot.Height))
	}
	if cfg.Plot.TableRows < 0 {
		errs = append(errs, fmt.Errorf("plot.table_rows %d must not be negative", cfg.Plot.TableRows))
	}

	if cfg.Limits.Strict {
		if cfg.Limits.MinQ > cfg.Limits.MaxQ {
			errs = append(errs, fmt.Errorf("limits: min_q %.3g exceeds max_q %.3g", cfg.Limits.MinQ, cfg.Limits.MaxQ))
		}
		if cfg.Limits.MinGainDB > cfg.Limits.MaxGainDB {
			errs = append(errs, fmt.Errorf("limits: min_gain_db %.3g exceeds max_gain_db %.3g", cfg.Limits.MinGainDB, cfg.Limits.MaxGainDB))
		}
	}

	return errors.Join(errs...)
}

// PlotFormat returns the chart format, from plot.format or the extension of
// plot.output.
func (c *Config) PlotFormat() (plot.Format, error) {
	if c.Plot.Format != "" {
		return plot.ParseFormat(c.Plot.Format)
	}
	return plot.FormatForPath(c.Plot.Output)
}
