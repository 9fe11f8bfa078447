// SPDX-License-Identifier: MIT
// Package: cgcolor/cmd/cgcolor
//
// cg.go - the column-generation subcommand.

package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgcolor/colgen"
	"github.com/katalvlaran/cgcolor/lp"
	"github.com/katalvlaran/cgcolor/report"
)

type cgOptions struct {
	pricingTimeLimit time.Duration
	maxIterations    int
	epsilon          float64
	exactPricing     bool
	dotPath          string
	dumpDir          string
	vertices         bool
}

func newCGCmd(ro *rootOptions) *cobra.Command {
	co := &cgOptions{}
	cmd := &cobra.Command{
		Use:   "cg <graph>",
		Short: "Color a graph by column generation over independent sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return co.run(cmd, ro, args[0])
		},
	}
	f := cmd.Flags()
	f.DurationVar(&co.pricingTimeLimit, "pricing-time-limit", colgen.DefaultPricingTimeLimit, "time limit of each pricing solve (negative disables)")
	f.IntVar(&co.maxIterations, "max-iterations", 0, "cap on master/pricing rounds (0 = none)")
	f.Float64Var(&co.epsilon, "epsilon", colgen.DefaultEpsilon, "reduced-cost tolerance")
	f.BoolVar(&co.exactPricing, "exact-pricing", false, "solve every pricing round as a MIP, without the greedy heuristic")
	f.StringVar(&co.dotPath, "dot", "", "write the colored graph as Graphviz DOT")
	f.StringVar(&co.dumpDir, "dump-dir", "", "write every model solved as CPLEX LP into this directory")
	f.BoolVar(&co.vertices, "vertices", false, "list the color of every vertex")

	return cmd
}

func (co *cgOptions) run(cmd *cobra.Command, ro *rootOptions, path string) error {
	cfg := ro.cfg
	flags := cmd.Flags()
	if flags.Changed("pricing-time-limit") {
		cfg.PricingTimeLimit = co.pricingTimeLimit
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations = co.maxIterations
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon = co.epsilon
	}
	if flags.Changed("exact-pricing") {
		cfg.ExactPricing = co.exactPricing
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := loadGraph(path)
	if err != nil {
		return err
	}
	log := ro.log.WithField("graph", path)
	opts := cfg.ColgenOptions(log)

	var dumpErr error
	if co.dumpDir != "" {
		if err = os.MkdirAll(co.dumpDir, 0o755); err != nil {
			return errors.Wrap(err, "failed to create dump directory")
		}
		opts.Hooks.OnModel = func(name string, p *lp.Problem) {
			if dumpErr != nil {
				return
			}
			file := filepath.Join(co.dumpDir, name+".lp")
			dumpErr = createFile(file, func(w io.Writer) error { return lp.WriteLP(w, p) })
			if dumpErr == nil {
				log.WithField("file", file).Trace("model dumped")
			}
		}
	}

	res, err := colgen.Solve(cmd.Context(), g, opts)
	if err != nil {
		return errors.Wrap(err, "column generation failed")
	}
	if dumpErr != nil {
		log.WithError(dumpErr).Warn("model dump incomplete")
	}
	log.WithFields(logrus.Fields{
		"lower_bound": res.LowerBoundColors(),
		"converged":   res.Converged,
	}).Debug("bounds")

	if err = report.WriteColgen(ro.stdout, g, res, report.Options{Path: path, Vertices: co.vertices}); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	if co.dotPath != "" {
		return createFile(co.dotPath, func(w io.Writer) error { return report.WriteDOT(w, g, res.Coloring) })
	}

	return nil
}
