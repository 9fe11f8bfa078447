// SPDX-License-Identifier: MIT
// Package: cgcolor/cmd/cgcolor
//
// compact.go - the assignment-model subcommand.

package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgcolor/compact"
	"github.com/katalvlaran/cgcolor/report"
)

type compactOptions struct {
	relax    bool
	dotPath  string
	vertices bool
}

func newCompactCmd(ro *rootOptions) *cobra.Command {
	co := &compactOptions{}
	cmd := &cobra.Command{
		Use:   "compact <graph>",
		Short: "Color a graph with the compact assignment model (small graphs)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return co.run(cmd, ro, args[0])
		},
	}
	f := cmd.Flags()
	f.BoolVar(&co.relax, "relax", false, "solve only the linear relaxation")
	f.StringVar(&co.dotPath, "dot", "", "write the graph as Graphviz DOT (colored unless --relax)")
	f.BoolVar(&co.vertices, "vertices", false, "list the color of every vertex")

	return cmd
}

func (co *compactOptions) run(cmd *cobra.Command, ro *rootOptions, path string) error {
	g, err := loadGraph(path)
	if err != nil {
		return err
	}
	solver := ro.cfg.SolverOptions()
	solver.TimeLimit = ro.cfg.MasterTimeLimit
	log := ro.log.WithField("graph", path)

	res, err := compact.Solve(cmd.Context(), g, compact.Options{Relaxation: co.relax, Solver: solver, Logger: log})
	if err != nil {
		return errors.Wrap(err, "compact model failed")
	}
	if err = report.WriteCompact(ro.stdout, g, res, report.Options{Path: path, Vertices: co.vertices}); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	if co.dotPath != "" {
		return createFile(co.dotPath, func(w io.Writer) error { return report.WriteDOT(w, g, res.Coloring) })
	}

	return nil
}
