// Package builder_test checks the topology, counts, determinism and error
// contracts of every Constructor in the builder package.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgcolor/builder"
	"github.com/katalvlaran/cgcolor/graph"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int // expected number of vertices
		wantE       int // expected number of edges
		sampleCheck func(t *testing.T, g *graph.Graph)
	}{
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				for v := 1; v <= 4; v++ {
					assert.Equal(t, 3, g.Degree(v))
				}
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				for i := 1; i <= 5; i++ {
					assert.True(t, g.Adjacent(i, i%5+1), "missing %d -- %d", i, i%5+1)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.Adjacent(1, 2))
				assert.True(t, g.Adjacent(3, 4))
				assert.False(t, g.Adjacent(4, 1))
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.Equal(t, 4, g.Degree(1))
				assert.True(t, g.IsIndependent([]int{2, 3, 4, 5}))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.Equal(t, 4, g.Degree(5), "hub is the last vertex")
				assert.True(t, g.Adjacent(4, 1))
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.IsIndependent([]int{1, 2}))
				assert.True(t, g.IsIndependent([]int{3, 4, 5}))
			},
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 17,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.Adjacent(1, 2), "right neighbor")
				assert.True(t, g.Adjacent(1, 5), "down neighbor")
				assert.Equal(t, 4, g.Degree(6))
			},
		},
		{name: "Mycielski(2)", ctor: builder.Mycielski(2), wantV: 2, wantE: 1},
		{
			name: "Mycielski(3)", ctor: builder.Mycielski(3), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				for v := 1; v <= 5; v++ {
					assert.Equal(t, 2, g.Degree(v), "M_3 is a 5-cycle")
				}
			},
		},
		{
			name: "Mycielski(4)", ctor: builder.Mycielski(4), wantV: 11, wantE: 20,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assertTriangleFree(t, g)
				assert.Equal(t, 5, g.Degree(11), "root sees every shadow")
			},
		},
		{name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15},
		{name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0},
		{name: "RandomRegular(4,0)", ctor: builder.RandomRegular(4, 0), wantV: 4, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.N(), "vertex count")
			assert.Equal(t, tc.wantE, g.M(), "edge count")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func assertTriangleFree(t *testing.T, g *graph.Graph) {
	t.Helper()
	for _, e := range g.Edges() {
		for _, w := range g.Neighbors(e.U) {
			assert.False(t, g.Adjacent(e.V, w), "triangle %d %d %d", e.U, e.V, w)
		}
	}
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 7, g.N())
	assert.Equal(t, 3+4, g.M())
	for u := 1; u <= 3; u++ {
		for v := 4; v <= 7; v++ {
			assert.False(t, g.Adjacent(u, v), "blocks must not touch")
		}
	}
	assert.True(t, g.Adjacent(4, 7))
}

func TestRandom_Deterministic(t *testing.T) {
	build := func(seed int64) []graph.Edge {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(12, 0.4), builder.RandomRegular(8, 3))
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, build(7), build(7))

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	for v := 1; v <= 10; v++ {
		assert.Equal(t, 3, g.Degree(v))
	}
}

func TestBuilders_Errors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"complete zero", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"cycle two", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"star one", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"wheel three", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"bipartite empty side", nil, builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		{"grid zero rows", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"mycielski one", nil, builder.Mycielski(1), builder.ErrTooFewVertices},
		{"sparse bad p", seeded, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"sparse no rng", nil, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"regular odd parity", seeded, builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"regular no rng", nil, builder.RandomRegular(6, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}

	_, err := builder.BuildGraph(nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomRegular_ZeroDegreeDrawsNothing(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			g, err := builder.BuildGraph(nil, builder.RandomRegular(n, 0))
			require.NoError(t, err, "d=0 must not require an rng")
			assert.Equal(t, n, g.N())
			assert.Zero(t, g.M())
		})
	}

	_, err := builder.BuildGraph(nil, builder.RandomRegular(4, 1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource, "d>0 still needs an rng")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxAttempts(0) })
}
