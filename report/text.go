// SPDX-License-Identifier: MIT
// Package: cgcolor/report
//
// text.go - plain-text run summaries.
//
// Layout (one "key: value" per line, then one line per color class):
//
//	graph: <path> n=<n> m=<m>
//	colors: <k>
//	...
//	color <c>: <vertices> [<column id>]
//	vertex <v>: color <c>      (Vertices only)

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/cgcolor/colgen"
	"github.com/katalvlaran/cgcolor/compact"
	"github.com/katalvlaran/cgcolor/graph"
)

// Options selects optional report sections.
type Options struct {
	// Path is the instance name printed on the first line.
	Path string
	// Vertices adds one "vertex <v>: color <c>" line per vertex.
	Vertices bool
}

type textWriter struct {
	w   *bufio.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *textWriter) flush() error {
	if tw.err != nil {
		return tw.err
	}

	return tw.w.Flush()
}

func (tw *textWriter) header(g *graph.Graph, opts Options) {
	tw.printf("graph: %s n=%d m=%d\n", opts.Path, g.N(), g.M())
}

func (tw *textWriter) vertices(coloring []int, opts Options) {
	if !opts.Vertices {
		return
	}
	for v, c := range coloring {
		tw.printf("vertex %d: color %d\n", v+1, c)
	}
}

// WriteColgen writes the summary of a column-generation run.
func WriteColgen(w io.Writer, g *graph.Graph, res *colgen.Result, opts Options) error {
	tw := &textWriter{w: bufio.NewWriter(w)}
	tw.header(g, opts)
	tw.printf("colors: %d\n", res.Colors)
	tw.printf("objective: %s\n", num(res.Objective))
	tw.printf("lp bound: %s\n", num(res.LPValue))
	tw.printf("iterations: %d\n", res.Iterations)
	tw.printf("columns generated: %d\n", res.ColumnsGenerated)
	tw.printf("pool size: %d\n", len(res.Columns))
	tw.printf("elapsed: %s\n", res.Elapsed.Round(time.Millisecond))
	for c, class := range res.Classes {
		tw.printf("color %d: %s [%d]\n", c+1, joinInts(class), res.ClassColumns[c])
	}
	tw.vertices(res.Coloring, opts)

	return tw.flush()
}

// WriteCompact writes the summary of a compact-model solve. Relaxation
// results carry no coloring and print the bound only.
func WriteCompact(w io.Writer, g *graph.Graph, res *compact.Result, opts Options) error {
	tw := &textWriter{w: bufio.NewWriter(w)}
	tw.header(g, opts)
	if res.Coloring == nil {
		tw.printf("lp bound: %s\n", num(res.Objective))
		tw.printf("status: %s\n", res.Status)

		return tw.flush()
	}
	tw.printf("colors: %d\n", res.Colors)
	tw.printf("objective: %s\n", num(res.Objective))
	tw.printf("status: %s\n", res.Status)
	tw.printf("nodes: %d\n", res.Nodes)
	for c, class := range graph.Classes(res.Coloring) {
		tw.printf("color %d: %s\n", c+1, joinInts(class))
	}
	tw.vertices(res.Coloring, opts)

	return tw.flush()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
