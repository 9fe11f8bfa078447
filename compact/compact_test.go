package compact_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgcolor/builder"
	"github.com/katalvlaran/cgcolor/compact"
	"github.com/katalvlaran/cgcolor/graph"
	"github.com/katalvlaran/cgcolor/lp"
)

func build(t *testing.T, cons ...builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)

	return g
}

func TestModel_Shape(t *testing.T) {
	// K_2 plus an isolated vertex: greedy uses two colors.
	g, err := graph.New(3, []graph.Edge{{U: 1, V: 2}})
	require.NoError(t, err)
	m, err := compact.NewModel(g)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 2, m.K())
	p := m.Problem()
	assert.Equal(t, 2+3*2, p.NumCols())
	// 2 edge rows, 2 isolated-vertex rows, 3 assignment rows, 1 symmetry row.
	assert.Equal(t, 2+2+3+1, p.NumRows())
	assert.Equal(t, "iso3_1", p.RowName(2))
	assert.Equal(t, "sym1", p.RowName(7))

	spec, err := p.ColumnSpecAt(0)
	require.NoError(t, err)
	assert.Equal(t, "y1", spec.Name)
	assert.InDelta(t, 1, spec.Objective, 0)
	spec, err = p.ColumnSpecAt(2 + 2*1 + 1)
	require.NoError(t, err)
	assert.Equal(t, "x2_2", spec.Name)
	assert.InDelta(t, 0, spec.Objective, 0)
}

func TestSolve_Integer(t *testing.T) {
	cases := []struct {
		name   string
		g      *graph.Graph
		colors int
	}{
		{"triangle", build(t, builder.Complete(3)), 3},
		{"C5", build(t, builder.Cycle(5)), 3},
		{"star", build(t, builder.Star(4)), 2},
		{"edgeless", build(t, builder.Path(1), builder.Path(1)), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := compact.Solve(context.Background(), tc.g, compact.Options{Solver: lp.DefaultOptions()})
			require.NoError(t, err)
			assert.Equal(t, lp.Optimal, res.Status)
			assert.Equal(t, tc.colors, res.Colors)
			assert.InDelta(t, float64(tc.colors), res.Objective, 1e-6)
			require.NoError(t, tc.g.ValidateColoring(res.Coloring))
			assert.LessOrEqual(t, res.Colors, res.K)
		})
	}
}

func TestSolve_Relaxation(t *testing.T) {
	res, err := compact.Solve(context.Background(), build(t, builder.Complete(3)), compact.Options{Relaxation: true})
	require.NoError(t, err)
	assert.Equal(t, lp.Optimal, res.Status)
	assert.InDelta(t, 2, res.Objective, 1e-6)
	assert.Nil(t, res.Coloring)
	assert.Zero(t, res.Colors)
}

func TestSolve_Components(t *testing.T) {
	// K_3 and C_5 side by side: each component gets its own model.
	g := build(t, builder.Complete(3), builder.Cycle(5), builder.Path(1))
	res, err := compact.Solve(context.Background(), g, compact.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Colors)
	assert.Equal(t, 3, res.K)
	require.NoError(t, g.ValidateColoring(res.Coloring))

	rel, err := compact.Solve(context.Background(), g, compact.Options{Relaxation: true})
	require.NoError(t, err)
	assert.InDelta(t, 2, rel.Objective, 1e-6)
	assert.Nil(t, rel.Coloring)
}

func TestNewModel_Errors(t *testing.T) {
	_, err := compact.NewModel(nil)
	assert.ErrorIs(t, err, graph.ErrMalformedInstance)
	_, err = compact.Solve(context.Background(), nil, compact.Options{})
	assert.ErrorIs(t, err, graph.ErrMalformedInstance)

	_, err = compact.NewModelK(build(t, builder.Complete(2)), 0)
	assert.ErrorIs(t, err, lp.ErrBadCount)
}

func TestSolve_TooFewColors(t *testing.T) {
	m, err := compact.NewModelK(build(t, builder.Complete(3)), 2)
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Solve(context.Background(), compact.Options{})
	assert.Error(t, err)
}

func ExampleSolve() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(5))
	res, err := compact.Solve(context.Background(), g, compact.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Colors)
	// Output: 3
}
