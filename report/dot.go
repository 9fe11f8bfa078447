// SPDX-License-Identifier: MIT
// Package: cgcolor/report
//
// dot.go - Graphviz export through gonum's DOT encoder.
//
// Uncolored vertices are filled gray ("0.5 0.5 0.5"). Color c of k gets
// the HSV fill "c/k 0.7 0.7", so classes spread evenly around the hue wheel.

package report

import (
	"fmt"
	"io"
	"strconv"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/cgcolor/graph"
)

const grayFill = "0.5 0.5 0.5"

// dotNode is a vertex carrying its DOT attributes.
type dotNode struct {
	id   int64
	fill string
}

func (n dotNode) ID() int64 { return n.id }

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: strconv.FormatInt(n.id, 10)},
		{Key: "fillcolor", Value: n.fill},
		{Key: "style", Value: "filled"},
	}
}

var _ gonumgraph.Node = dotNode{}
var _ encoding.Attributer = dotNode{}

// FillColor returns the HSV fill for color c out of k.
func FillColor(c, k int) string {
	return fmt.Sprintf("%.6f 0.7 0.7", float64(c)/float64(k))
}

// WriteDOT writes g as an undirected DOT graph named G. A nil coloring
// fills every vertex gray; otherwise coloring must be proper and hues are
// spread over its largest color.
func WriteDOT(w io.Writer, g *graph.Graph, coloring []int) error {
	if coloring != nil {
		if err := g.ValidateColoring(coloring); err != nil {
			return fmt.Errorf("WriteDOT: %w", err)
		}
	}
	k := 0
	for _, c := range coloring {
		if c > k {
			k = c
		}
	}

	ug := simple.NewUndirectedGraph()
	nodes := make([]dotNode, g.N()+1)
	for v := 1; v <= g.N(); v++ {
		fill := grayFill
		if coloring != nil {
			fill = FillColor(coloring[v-1], k)
		}
		nodes[v] = dotNode{id: int64(v), fill: fill}
		ug.AddNode(nodes[v])
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: nodes[e.U], T: nodes[e.V]})
	}

	b, err := dot.Marshal(ug, "G", "", "\t")
	if err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	b = append(b, '\n')
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	return nil
}
