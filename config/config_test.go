package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgcolor/colgen"
	"github.com/katalvlaran/cgcolor/config"
	"github.com/katalvlaran/cgcolor/lp"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.ColgenOptions(nil)
	assert.InDelta(t, colgen.DefaultEpsilon, opts.Epsilon, 0)
	assert.Equal(t, colgen.DefaultPricingTimeLimit, opts.PricingTimeLimit)
	assert.Equal(t, lp.DefaultOptions(), opts.Solver)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestRead_Overrides(t *testing.T) {
	in := `
epsilon: 1e-6
pricing_time_limit: 500ms
max_iterations: 40
master_node_limit: 25
exact_pricing: true
solver:
  node_limit: 1000
log:
  level: debug
  format: json
`
	cfg, err := config.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.InDelta(t, 1e-6, cfg.Epsilon, 0)
	assert.Equal(t, 500*time.Millisecond, cfg.PricingTimeLimit)
	assert.Equal(t, 40, cfg.MaxIterations)
	assert.Equal(t, 1000, cfg.Solver.NodeLimit)
	assert.InDelta(t, lp.DefaultTolerance, cfg.Solver.Tolerance, 0, "untouched keys keep defaults")
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)

	opts := cfg.ColgenOptions(logrus.New())
	assert.Equal(t, 40, opts.MaxIterations)
	assert.Equal(t, 25, opts.MasterNodeLimit)
	assert.True(t, opts.ExactPricing)
	assert.Equal(t, 1000, opts.Solver.NodeLimit)
	assert.NotNil(t, opts.Logger)
}

func TestRead_Empty(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestRead_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":        "epsilonn: 1\n",
		"zero epsilon":       "epsilon: 0\n",
		"negative iteration": "max_iterations: -1\n",
		"negative nodes":     "master_node_limit: -3\n",
		"bad integrality":    "solver:\n  integrality_tolerance: 0.7\n",
		"bad level":          "log:\n  level: loud\n",
		"bad format":         "log:\n  format: xml\n",
		"bad duration":       "pricing_time_limit: soon\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Read(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestSolverOptions_PenaltyOff(t *testing.T) {
	cfg := config.Default()
	cfg.Solver.DualBoundPenalty = 0
	assert.Less(t, cfg.SolverOptions().DualBoundPenalty, 0.0)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cgcolor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_iterations: 7\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxIterations)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
