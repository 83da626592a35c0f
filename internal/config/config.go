// Package config holds the run configuration of the peakeq command: the
// peaking filter to design, the analysis window and the plot output.
package config

import (
	"github.com/cwbudde/algo-peakeq/dsp/filter/design"
	"github.com/cwbudde/algo-peakeq/measure/response"
)

// Config is the root of a run file.
type Config struct {
	Filter   FilterConfig   `yaml:"filter"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Plot     PlotConfig     `yaml:"plot"`
	Limits   LimitsConfig   `yaml:"limits"`
}

// FilterConfig describes the peaking filter.
type FilterConfig struct {
	SampleRate float64 `yaml:"sample_rate"`
	CenterFreq float64 `yaml:"center_freq"`
	Q          float64 `yaml:"q"`
	GainDB     float64 `yaml:"gain_db"`
}

// AnalysisConfig controls the impulse response measurement.
type AnalysisConfig struct {
	WindowSize   int     `yaml:"window_size"`
	FloorDB      float64 `yaml:"floor_db"`
	TruncationDB float64 `yaml:"truncation_db"`
}

// PlotConfig selects where the response is drawn. An empty Output disables
// the chart.
type PlotConfig struct {
	Output    string `yaml:"output"`
	Format    string `yaml:"format"`
	Title     string `yaml:"title"`
	Color     string `yaml:"color"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	LogX      bool   `yaml:"log_x"`
	Table     bool   `yaml:"table"`
	TableRows int    `yaml:"table_rows"`
}

// LimitsConfig enables the optional parameter range checks.
type LimitsConfig struct {
	Strict    bool    `yaml:"strict"`
	MinQ      float64 `yaml:"min_q"`
	MaxQ      float64 `yaml:"max_q"`
	MinGainDB float64 `yaml:"min_gain_db"`
	MaxGainDB float64 `yaml:"max_gain_db"`
}

// Default returns the configuration of the reference run: a -12 dB cut at
// 5 kHz with Q 5 at 44.1 kHz, analysed over 2048 samples.
func Default() *Config {
	lim := design.DefaultLimits()
	return &Config{
		Filter: FilterConfig{
			SampleRate: 44100,
			CenterFreq: 5000,
			Q:          5,
			GainDB:     -12,
		},
		Analysis: AnalysisConfig{
			WindowSize:   response.DefaultWindowSize,
			FloorDB:      response.DefaultFloorDB,
			TruncationDB: response.DefaultTruncationDB,
		},
		Plot: PlotConfig{
			Width:     1024,
			Height:    512,
			TableRows: 32,
		},
		Limits: LimitsConfig{
			MinQ:      lim.MinQ,
			MaxQ:      lim.MaxQ,
			MinGainDB: lim.MinGainDB,
			MaxGainDB: lim.MaxGainDB,
		},
	}
}

// PeakSpec returns the filter section as a design input.
func (c *Config) PeakSpec() design.PeakSpec {
	return design.PeakSpec{
		SampleRate: c.Filter.SampleRate,
		CenterFreq: c.Filter.CenterFreq,
		Q:          c.Filter.Q,
		GainDB:     c.Filter.GainDB,
	}
}

// PeakOptions returns the design options implied by the limits section.
func (c *Config) PeakOptions() []design.PeakOption {
	if !c.Limits.Strict {
		return nil
	}
	return []design.PeakOption{design.WithLimits(design.Limits{
		MinQ:      c.Limits.MinQ,
		MaxQ:      c.Limits.MaxQ,
		MinGainDB: c.Limits.MinGainDB,
		MaxGainDB: c.Limits.MaxGainDB,
	})}
}

// VerifierOptions returns the options for a response.Verifier.
func (c *Config) VerifierOptions() []response.Option {
	return []response.Option{
		response.WithWindowSize(c.Analysis.WindowSize),
		response.WithFloorDB(c.Analysis.FloorDB),
		response.WithTruncationDB(c.Analysis.TruncationDB),
	}
}
