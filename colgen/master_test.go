package colgen_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgcolor/colgen"
	"github.com/katalvlaran/cgcolor/graph"
	"github.com/katalvlaran/cgcolor/lp"
)

func mustGraph(t *testing.T, n int, pairs ...[2]int) *graph.Graph {
	t.Helper()
	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{U: p[0], V: p[1]}
	}
	g, err := graph.New(n, edges)
	require.NoError(t, err)

	return g
}

func TestMaster_SingletonPool(t *testing.T) {
	g := mustGraph(t, 3, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3})
	m, err := colgen.NewMaster(g)
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, 3, m.Pool().Len())
	assert.True(t, m.Pool().Covers())
	for id := 0; id < 3; id++ {
		col := m.Pool().At(id)
		assert.Equal(t, id, col.ID)
		assert.Equal(t, []int{id + 1}, col.Vertices)
	}
	assert.Equal(t, 3, m.Problem().NumRows())
	assert.Equal(t, "cover2", m.Problem().RowName(1))

	rel, err := m.Relax(context.Background(), lp.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 3, rel.Objective, 1e-9)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, rel.Duals, 1e-7)
}

func TestMaster_AddColumn(t *testing.T) {
	g := mustGraph(t, 4, [2]int{1, 2}, [2]int{3, 4})
	m, err := colgen.NewMaster(g)
	require.NoError(t, err)
	defer m.Close()

	id, err := m.AddColumn([]int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, 4, id)
	assert.Equal(t, []int{1, 3}, m.Pool().At(id).Vertices)
	assert.True(t, m.Pool().At(id).Contains(3))
	assert.False(t, m.Pool().At(id).Contains(2))
	got, ok := m.Pool().Lookup([]int{1, 3})
	assert.True(t, ok)
	assert.Equal(t, id, got)

	spec, err := m.Problem().ColumnSpecAt(id)
	require.NoError(t, err)
	assert.Equal(t, "lambda5", spec.Name)
	assert.True(t, spec.Integral)

	dup, err := m.AddColumn([]int{1, 3})
	assert.ErrorIs(t, err, colgen.ErrDuplicateColumn)
	assert.Equal(t, id, dup)

	_, err = m.AddColumn([]int{1, 2})
	assert.ErrorIs(t, err, colgen.ErrNotIndependent)
	_, err = m.AddColumn(nil)
	assert.ErrorIs(t, err, colgen.ErrNotIndependent)
	_, err = m.AddColumn([]int{5})
	assert.ErrorIs(t, err, colgen.ErrNotIndependent)
	assert.Equal(t, 5, m.Pool().Len(), "rejected sets leave the pool unchanged")
	assert.Equal(t, 5, m.Problem().NumCols())

	rel, err := m.Relax(context.Background(), lp.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 3, rel.Objective, 1e-9)
}

func TestPricing_MaxWeightIndependentSet(t *testing.T) {
	g := mustGraph(t, 3, [2]int{1, 2}, [2]int{2, 3})
	p, err := colgen.NewPricing(g)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, lp.Maximize, p.Problem().Direction())
	assert.Equal(t, 2, p.Problem().NumRows())

	require.NoError(t, p.SetDuals([]float64{1, 1, 1}))
	res, err := p.Solve(context.Background(), lp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, lp.Optimal, res.Status)
	assert.InDelta(t, 2, res.Value, 1e-9)
	assert.Equal(t, []int{1, 3}, res.Vertices)

	require.NoError(t, p.SetDuals([]float64{0.2, 3, 0.5}))
	res, err = p.Solve(context.Background(), lp.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 3, res.Value, 1e-9)
	assert.Equal(t, []int{2}, res.Vertices)

	assert.ErrorIs(t, p.SetDuals([]float64{1}), colgen.ErrSolverFailure)
}

func TestPricing_EdgelessGraph(t *testing.T) {
	g := mustGraph(t, 3)
	p, err := colgen.NewPricing(g)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, 0, p.Problem().NumRows())
	require.NoError(t, p.SetDuals([]float64{0.5, 0.5, 0.5}))
	res, err := p.Solve(context.Background(), lp.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.5, res.Value, 1e-9)
	assert.Equal(t, []int{1, 2, 3}, res.Vertices)
}

func TestConstructors_RejectNilGraph(t *testing.T) {
	m, err := colgen.NewMaster(nil)
	assert.ErrorIs(t, err, colgen.ErrMalformedInstance)
	assert.Nil(t, m)

	p, err := colgen.NewPricing(nil)
	assert.ErrorIs(t, err, colgen.ErrMalformedInstance)
	assert.Nil(t, p)
}

func TestPricing_CliqueRows(t *testing.T) {
	// K4 on 1..4 with a pendant 5 hanging off 4
	g := mustGraph(t, 5,
		[2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}, [2]int{2, 3}, [2]int{2, 4}, [2]int{3, 4},
		[2]int{4, 5})
	p, err := colgen.NewPricing(g)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, [][]int{{1, 2, 3, 4}, {4, 5}}, p.Cliques())
	require.Equal(t, 2, p.Problem().NumRows())
	assert.Equal(t, "clique1", p.Problem().RowName(0))

	require.NoError(t, p.SetDuals([]float64{0.5, 0.5, 0.5, 0.5, 0.9}))
	res, err := p.Solve(context.Background(), lp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, lp.Optimal, res.Status)
	assert.InDelta(t, 1.4, res.Value, 1e-9)
	assert.True(t, g.IsIndependent(res.Vertices))
	assert.Contains(t, res.Vertices, 5)
}

func TestPricing_Greedy(t *testing.T) {
	path := mustGraph(t, 3, [2]int{1, 2}, [2]int{2, 3})
	star := mustGraph(t, 4, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4})
	cases := []struct {
		name  string
		g     *graph.Graph
		duals []float64
		want  []int
		value float64
	}{
		{"path uniform", path, []float64{1, 1, 1}, []int{1, 3}, 2},
		{"path heavy middle", path, []float64{0.2, 3, 0.5}, []int{2}, 3},
		{"star leaves beat center", star, []float64{1.5, 1, 1, 1}, []int{2, 3, 4}, 3},
		{"zero prices extend the set", mustGraph(t, 3), []float64{1, 0, 0}, []int{1, 2, 3}, 1},
		{"nothing priced", path, []float64{0, 0, 0}, []int{1, 3}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := colgen.NewPricing(tc.g)
			require.NoError(t, err)
			defer p.Close()
			require.NoError(t, p.SetDuals(tc.duals))

			res := p.Greedy()
			assert.True(t, res.Heuristic)
			assert.Equal(t, lp.Feasible, res.Status)
			assert.Equal(t, tc.want, res.Vertices)
			assert.InDelta(t, tc.value, res.Value, 1e-12)
			assert.True(t, tc.g.IsIndependent(res.Vertices))
		})
	}
}

func TestPricing_SolveLimits(t *testing.T) {
	g := mustGraph(t, 3, [2]int{1, 2}, [2]int{2, 3})
	p, err := colgen.NewPricing(g)
	require.NoError(t, err)
	defer p.Close()
	require.NoError(t, p.SetDuals([]float64{1, 1, 1}))

	cases := []struct {
		name       string
		opts       lp.Options
		wantStatus lp.Status
		wantValue  float64
		wantBound  float64
		wantSet    []int
	}{
		{
			name:       "cutoff with start keeps the start",
			opts:       lp.Options{UseCutoff: true, Cutoff: 2.5, Start: p.Point([]int{1, 3})},
			wantStatus: lp.Optimal, wantValue: 2, wantBound: 2.5, wantSet: []int{1, 3},
		},
		{
			name:       "cutoff without start proves nothing prices out",
			opts:       lp.Options{UseCutoff: true, Cutoff: 2.5},
			wantStatus: lp.Optimal, wantValue: 0, wantBound: 2.5,
		},
		{
			name:       "column beating the cutoff is exact",
			opts:       lp.Options{UseCutoff: true, Cutoff: 1.5},
			wantStatus: lp.Optimal, wantValue: 2, wantBound: 2, wantSet: []int{1, 3},
		},
		{
			name:       "time limit before any incumbent",
			opts:       lp.Options{TimeLimit: time.Nanosecond},
			wantStatus: lp.TimeLimit,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := p.Solve(context.Background(), tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.Status)
			assert.InDelta(t, tc.wantValue, res.Value, 1e-9)
			assert.InDelta(t, tc.wantBound, res.Bound, 1e-9)
			assert.Equal(t, tc.wantSet, res.Vertices)
		})
	}
}
