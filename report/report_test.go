package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgcolor/colgen"
	"github.com/katalvlaran/cgcolor/compact"
	"github.com/katalvlaran/cgcolor/graph"
	"github.com/katalvlaran/cgcolor/lp"
	"github.com/katalvlaran/cgcolor/report"
)

func path3(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3, []graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)

	return g
}

func TestWriteColgen(t *testing.T) {
	res := &colgen.Result{
		Colors:           2,
		Objective:        2,
		LPValue:          2,
		Coloring:         []int{1, 2, 1},
		Classes:          [][]int{{1, 3}, {2}},
		ClassColumns:     []int{3, 1},
		Columns:          make([]colgen.Column, 4),
		Iterations:       2,
		ColumnsGenerated: 1,
		Elapsed:          1500 * time.Millisecond,
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteColgen(&buf, path3(t), res, report.Options{Path: "p3.txt", Vertices: true}))

	want := strings.Join([]string{
		"graph: p3.txt n=3 m=2",
		"colors: 2",
		"objective: 2",
		"lp bound: 2",
		"iterations: 2",
		"columns generated: 1",
		"pool size: 4",
		"elapsed: 1.5s",
		"color 1: 1 3 [3]",
		"color 2: 2 [1]",
		"vertex 1: color 1",
		"vertex 2: color 2",
		"vertex 3: color 1",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteCompact(t *testing.T) {
	g := path3(t)
	var buf bytes.Buffer
	res := &compact.Result{K: 2, Objective: 2, Status: lp.Optimal, Nodes: 3, Colors: 2, Coloring: []int{2, 1, 2}}
	require.NoError(t, report.WriteCompact(&buf, g, res, report.Options{Path: "p3"}))
	out := buf.String()
	assert.Contains(t, out, "colors: 2\n")
	assert.Contains(t, out, "status: Optimal\n")
	assert.Contains(t, out, "color 1: 2\n")
	assert.Contains(t, out, "color 2: 1 3\n")
	assert.NotContains(t, out, "vertex ")

	buf.Reset()
	rel := &compact.Result{K: 2, Objective: 1.25, Status: lp.Optimal}
	require.NoError(t, report.WriteCompact(&buf, g, rel, report.Options{Path: "p3"}))
	assert.Equal(t, "graph: p3 n=3 m=2\nlp bound: 1.25\nstatus: Optimal\n", buf.String())
}

func TestWriteDOT(t *testing.T) {
	g := path3(t)

	var gray bytes.Buffer
	require.NoError(t, report.WriteDOT(&gray, g, nil))
	out := gray.String()
	assert.Contains(t, out, "graph G {")
	assert.Equal(t, 3, strings.Count(out, `fillcolor="0.5 0.5 0.5"`))
	assert.Contains(t, out, "1 -- 2")
	assert.Contains(t, out, "2 -- 3")
	assert.NotContains(t, out, "1 -- 3")

	var colored bytes.Buffer
	require.NoError(t, report.WriteDOT(&colored, g, []int{1, 2, 1}))
	out = colored.String()
	assert.Equal(t, 2, strings.Count(out, `fillcolor="0.500000 0.7 0.7"`))
	assert.Equal(t, 1, strings.Count(out, `fillcolor="1.000000 0.7 0.7"`))
	assert.Equal(t, 3, strings.Count(out, "style=filled"))

	err := report.WriteDOT(&colored, g, []int{1, 1, 2})
	assert.ErrorIs(t, err, graph.ErrInvalidColoring)
}

func TestFillColor(t *testing.T) {
	assert.Equal(t, "0.250000 0.7 0.7", report.FillColor(1, 4))
}
