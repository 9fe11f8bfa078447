// SPDX-License-Identifier: MIT
// Package: cgcolor/config
//
// config.go - YAML run configuration.
//
// A file only needs the keys it changes; everything else keeps Default().
//
//	epsilon: 1e-8
//	pricing_time_limit: 3s
//	master_time_limit: 0s
//	master_node_limit: 0
//	max_iterations: 0
//	exact_pricing: false
//	solver:
//	  tolerance: 1e-10
//	  integrality_tolerance: 1e-6
//	  node_limit: 0
//	  dual_bound_penalty: 1e-7
//	  max_dense_cells: 16777216
//	log:
//	  level: info
//	  format: auto

package config

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cgcolor/colgen"
	"github.com/katalvlaran/cgcolor/lp"
)

// Log formats accepted under log.format.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the on-disk run configuration.
type Config struct {
	Epsilon          float64       `yaml:"epsilon"`
	PricingTimeLimit time.Duration `yaml:"pricing_time_limit"`
	MasterTimeLimit  time.Duration `yaml:"master_time_limit"`
	MasterNodeLimit  int           `yaml:"master_node_limit"`
	MaxIterations    int           `yaml:"max_iterations"`
	ExactPricing     bool          `yaml:"exact_pricing"`
	Solver           Solver        `yaml:"solver"`
	Log              Log           `yaml:"log"`
}

// Solver mirrors lp.Options.
type Solver struct {
	Tolerance            float64 `yaml:"tolerance"`
	IntegralityTolerance float64 `yaml:"integrality_tolerance"`
	NodeLimit            int     `yaml:"node_limit"`
	DualBoundPenalty     float64 `yaml:"dual_bound_penalty"`
	MaxDenseCells        int     `yaml:"max_dense_cells"`
}

// Log selects the logrus level and formatter.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Epsilon:          colgen.DefaultEpsilon,
		PricingTimeLimit: colgen.DefaultPricingTimeLimit,
		Solver: Solver{
			Tolerance:            lp.DefaultTolerance,
			IntegralityTolerance: lp.DefaultIntegralityTol,
			DualBoundPenalty:     lp.DefaultDualBoundPenalty,
			MaxDenseCells:        lp.DefaultMaxDenseCells,
		},
		Log: Log{Level: logrus.InfoLevel.String(), Format: FormatAuto},
	}
}

// Load reads path over Default() and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Read decodes YAML from r over Default(). Unknown keys are rejected.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the solvers cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Epsilon <= 0:
		return errors.Errorf("epsilon must be positive, got %g", c.Epsilon)
	case c.MasterTimeLimit < 0:
		return errors.Errorf("master_time_limit must not be negative, got %s", c.MasterTimeLimit)
	case c.MasterNodeLimit < 0:
		return errors.Errorf("master_node_limit must not be negative, got %d", c.MasterNodeLimit)
	case c.MaxIterations < 0:
		return errors.Errorf("max_iterations must not be negative, got %d", c.MaxIterations)
	case c.Solver.Tolerance <= 0:
		return errors.Errorf("solver.tolerance must be positive, got %g", c.Solver.Tolerance)
	case c.Solver.IntegralityTolerance <= 0 || c.Solver.IntegralityTolerance >= 0.5:
		return errors.Errorf("solver.integrality_tolerance must be in (0, 0.5), got %g", c.Solver.IntegralityTolerance)
	case c.Solver.NodeLimit < 0:
		return errors.Errorf("solver.node_limit must not be negative, got %d", c.Solver.NodeLimit)
	case c.Solver.MaxDenseCells <= 0:
		return errors.Errorf("solver.max_dense_cells must be positive, got %d", c.Solver.MaxDenseCells)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	switch c.Log.Format {
	case FormatAuto, FormatText, FormatJSON:
	default:
		return errors.Errorf("log.format must be auto, text or json, got %q", c.Log.Format)
	}

	return nil
}

// SolverOptions converts the solver section; a zero dual_bound_penalty
// disables the penalty.
func (c *Config) SolverOptions() lp.Options {
	penalty := c.Solver.DualBoundPenalty
	if penalty == 0 {
		penalty = -1
	}

	return lp.Options{
		Tolerance:        c.Solver.Tolerance,
		IntegralityTol:   c.Solver.IntegralityTolerance,
		NodeLimit:        c.Solver.NodeLimit,
		DualBoundPenalty: penalty,
		MaxDenseCells:    c.Solver.MaxDenseCells,
	}
}

// ColgenOptions converts the configuration into engine options. A negative
// pricing_time_limit disables the limit.
func (c *Config) ColgenOptions(log logrus.FieldLogger) colgen.Options {
	return colgen.Options{
		Epsilon:          c.Epsilon,
		PricingTimeLimit: c.PricingTimeLimit,
		MasterTimeLimit:  c.MasterTimeLimit,
		MasterNodeLimit:  c.MasterNodeLimit,
		MaxIterations:    c.MaxIterations,
		ExactPricing:     c.ExactPricing,
		Solver:           c.SolverOptions(),
		Logger:           log,
	}
}

// Level returns the parsed log level; Validate has checked it.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}
