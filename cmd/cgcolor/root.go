// SPDX-License-Identifier: MIT
// Package: cgcolor/cmd/cgcolor
//
// root.go - root command, configuration and logger setup shared by the
// subcommands.

package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgcolor/config"
	"github.com/katalvlaran/cgcolor/graph"
)

type rootOptions struct {
	configPath string
	verbose    bool
	logFormat  string

	cfg    *config.Config
	log    *logrus.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(ctx context.Context, stdout, stderr io.Writer) *cobra.Command {
	ro := &rootOptions{stdout: stdout, stderr: stderr}
	rootCmd := &cobra.Command{
		Use:               "cgcolor",
		Short:             "Heuristic vertex coloring by column generation",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: ro.setup,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&ro.configPath, "config", "c", "", "YAML configuration file")
	pf.BoolVarP(&ro.verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&ro.logFormat, "log-format", "", "log format: auto, text or json (default from config)")

	rootCmd.AddCommand(newCGCmd(ro), newCompactCmd(ro), newGenCmd(ro))

	return rootCmd
}

// setup loads the configuration, applies the logging flags and builds the
// logger every subcommand writes to.
func (ro *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if ro.configPath != "" {
		var err error
		if cfg, err = config.Load(ro.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = ro.logFormat
	}
	if ro.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	ro.cfg = cfg

	ro.log = logrus.New()
	ro.log.SetOutput(ro.stderr)
	ro.log.SetLevel(cfg.Level())
	switch cfg.Log.Format {
	case config.FormatJSON:
		ro.log.SetFormatter(&logrus.JSONFormatter{})
	case config.FormatText:
		ro.log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		tty := isTerminal(ro.stderr)
		ro.log.SetFormatter(&logrus.TextFormatter{DisableColors: !tty, FullTimestamp: !tty})
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func loadGraph(path string) (*graph.Graph, error) {
	g, err := graph.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}

	return g, nil
}

// createFile opens path for writing and hands it to write.
func createFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output")
	}
	if err = write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return errors.Wrapf(f.Close(), "failed to close %s", path)
}
