// SPDX-License-Identifier: MIT
// Package: cgcolor/cmd/cgcolor
//
// gen.go - instance generator subcommand over the builder package.

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgcolor/builder"
)

// genKind parses the positional parameters of one topology.
type genKind struct {
	params string
	arity  int
	make   func(ints []int, p float64) builder.Constructor
}

var genKinds = map[string]genKind{
	"complete":  {"n", 1, func(a []int, _ float64) builder.Constructor { return builder.Complete(a[0]) }},
	"cycle":     {"n", 1, func(a []int, _ float64) builder.Constructor { return builder.Cycle(a[0]) }},
	"path":      {"n", 1, func(a []int, _ float64) builder.Constructor { return builder.Path(a[0]) }},
	"star":      {"n", 1, func(a []int, _ float64) builder.Constructor { return builder.Star(a[0]) }},
	"wheel":     {"n", 1, func(a []int, _ float64) builder.Constructor { return builder.Wheel(a[0]) }},
	"bipartite": {"a b", 2, func(a []int, _ float64) builder.Constructor { return builder.CompleteBipartite(a[0], a[1]) }},
	"grid":      {"rows cols", 2, func(a []int, _ float64) builder.Constructor { return builder.Grid(a[0], a[1]) }},
	"mycielski": {"k", 1, func(a []int, _ float64) builder.Constructor { return builder.Mycielski(a[0]) }},
	"random":    {"n p", 2, func(a []int, p float64) builder.Constructor { return builder.RandomSparse(a[0], p) }},
	"regular":   {"n d", 2, func(a []int, _ float64) builder.Constructor { return builder.RandomRegular(a[0], a[1]) }},
}

type genOptions struct {
	seed   int64
	output string
}

func newGenCmd(ro *rootOptions) *cobra.Command {
	gco := &genOptions{}
	names := make([]string, 0, len(genKinds))
	for name, k := range genKinds {
		names = append(names, name+" "+k.params)
	}
	sort.Strings(names)

	cmd := &cobra.Command{
		Use:   "gen <kind> <params...>",
		Short: "Generate a test instance",
		Long:  "Generate a test instance in the input format. Kinds:\n  " + strings.Join(names, "\n  "),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gco.run(ro, args)
		},
	}
	cmd.Flags().Int64Var(&gco.seed, "seed", 1, "seed for the random kinds")
	cmd.Flags().StringVarP(&gco.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (gco *genOptions) run(ro *rootOptions, args []string) error {
	kind, ok := genKinds[args[0]]
	if !ok {
		return errors.Errorf("unknown kind %q", args[0])
	}
	params := args[1:]
	if len(params) != kind.arity {
		return errors.Errorf("%s takes %d parameter(s): %s", args[0], kind.arity, kind.params)
	}

	ints := make([]int, len(params))
	var p float64
	for i, s := range params {
		if args[0] == "random" && i == 1 {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return errors.Wrapf(err, "parameter %d", i+1)
			}
			p = v
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrapf(err, "parameter %d", i+1)
		}
		ints[i] = v
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(gco.seed)}, kind.make(ints, p))
	if err != nil {
		return errors.Wrap(err, "failed to generate")
	}
	ro.log.WithField("kind", fmt.Sprintf("%s %s", args[0], strings.Join(params, " "))).
		WithField("n", g.N()).WithField("m", g.M()).Debug("instance generated")

	if gco.output == "" {
		return g.Write(ro.stdout)
	}

	return createFile(gco.output, g.Write)
}
