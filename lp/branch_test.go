package lp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgcolor/lp"
)

var binary = lp.ColumnSpec{Bound: lp.Double, Lower: 0, Upper: 1, Objective: 1, Integral: true}

// triangleCover: min x1+x2+x3 with every pair summing to at least 1.
// The relaxation optimum is 1.5 at all-halves; the integer optimum is 2.
func triangleCover(t *testing.T) *lp.Problem {
	t.Helper()
	p := lp.NewProblem("cover", lp.Minimize)
	_, err := p.AddRows(3, lp.Lower, 1, 0)
	require.NoError(t, err)
	_, err = p.AddColumns(3, binary)
	require.NoError(t, err)
	require.NoError(t, p.SetMatrixEntries([]lp.Nonzero{
		{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 1, Val: 1}, {Row: 1, Col: 2, Val: 1},
		{Row: 2, Col: 0, Val: 1}, {Row: 2, Col: 2, Val: 1},
	}))

	return p
}

func TestSolveInteger_Cover(t *testing.T) {
	p := triangleCover(t)

	rel, err := lp.SolveRelaxation(context.Background(), p, lp.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, rel.Objective, tol)

	sol, err := lp.SolveInteger(context.Background(), p, lp.Options{})
	require.NoError(t, err)
	assert.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 2, sol.Objective, tol)
	assert.False(t, sol.LimitReached)
	ones := 0
	for _, v := range sol.Values {
		assert.True(t, v == 0 || v == 1, "value %v", v)
		if v == 1 {
			ones++
		}
	}
	assert.Equal(t, 2, ones)
}

func TestSolveInteger_Maximize(t *testing.T) {
	p := lp.NewProblem("knap", lp.Maximize)
	r, err := p.AddRows(1, lp.Upper, 0, 3)
	require.NoError(t, err)
	x, err := p.AddColumns(2, binary)
	require.NoError(t, err)
	require.NoError(t, p.SetMatrixEntries([]lp.Nonzero{{Row: r, Col: x, Val: 2}, {Row: r, Col: x + 1, Val: 2}}))

	sol, err := lp.SolveInteger(context.Background(), p, lp.Options{})
	require.NoError(t, err)
	assert.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 1, sol.Objective, tol)
}

func TestSolveInteger_Mixed(t *testing.T) {
	// max x + y, x integer, x + 2y <= 3.5, x <= 2.5 (continuous y)
	p := lp.NewProblem("mixed", lp.Maximize)
	_, err := p.AddRows(1, lp.Upper, 0, 3.5)
	require.NoError(t, err)
	_, err = p.AddColumn(lp.ColumnSpec{Bound: lp.Double, Upper: 2.5, Objective: 1, Integral: true}, []int{0}, []float64{1})
	require.NoError(t, err)
	_, err = p.AddColumn(lp.ColumnSpec{Bound: lp.Lower, Objective: 1}, []int{0}, []float64{2})
	require.NoError(t, err)

	sol, err := lp.SolveInteger(context.Background(), p, lp.Options{})
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 2, sol.Values[0], tol)
	assert.InDelta(t, 0.75, sol.Values[1], tol)
	assert.InDelta(t, 2.75, sol.Objective, tol)
}

func TestSolveInteger_Infeasible(t *testing.T) {
	p := lp.NewProblem("odd", lp.Minimize)
	_, err := p.AddRows(1, lp.Fixed, 1, 1)
	require.NoError(t, err)
	_, err = p.AddColumns(2, binary)
	require.NoError(t, err)
	require.NoError(t, p.SetMatrixEntries([]lp.Nonzero{{Row: 0, Col: 0, Val: 2}, {Row: 0, Col: 1, Val: 2}}))

	sol, err := lp.SolveInteger(context.Background(), p, lp.Options{})
	require.NoError(t, err)
	assert.Equal(t, lp.Infeasible, sol.Status)
	assert.Nil(t, sol.Values)
}

func TestSolveInteger_NodeLimitKeepsIncumbent(t *testing.T) {
	p := triangleCover(t)

	sol, err := lp.SolveInteger(context.Background(), p, lp.Options{NodeLimit: 1})
	require.NoError(t, err)
	assert.Equal(t, lp.Feasible, sol.Status)
	assert.True(t, sol.LimitReached)
	assert.Equal(t, 1, sol.Nodes)
	// nearest rounding of the all-halves root point
	assert.InDelta(t, 3, sol.Objective, tol)
}

func TestSolveInteger_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lp.SolveInteger(ctx, triangleCover(t), lp.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveInteger_StartPoint(t *testing.T) {
	cases := []struct {
		name       string
		start      []float64
		wantStatus lp.Status
		want       float64
	}{
		// the root bound ceil(1.5) cannot beat the seeded 2, so the search closes
		{"optimal start kept", []float64{1, 1, 0}, lp.Optimal, 2},
		{"wrong length ignored", []float64{1, 1}, lp.Feasible, 3},
		{"fractional ignored", []float64{0.5, 1, 1}, lp.Feasible, 3},
		{"out of bounds ignored", []float64{2, 0, 1}, lp.Feasible, 3},
		{"infeasible ignored", []float64{1, 0, 0}, lp.Feasible, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// One node: the start is the only incumbent source besides the
			// nearest rounding of the root, which costs 3.
			sol, err := lp.SolveInteger(context.Background(), triangleCover(t), lp.Options{NodeLimit: 1, Start: tc.start})
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, sol.Status)
			assert.InDelta(t, tc.want, sol.Objective, tol)
		})
	}
}

// weightedPath: max 0.6(x1+x2+x3) with x1+x2 <= 1 and x2+x3 <= 1.
// The optimum {x1,x3} is worth 1.2.
func weightedPath(t *testing.T) *lp.Problem {
	t.Helper()
	p := lp.NewProblem("path", lp.Maximize)
	_, err := p.AddRows(2, lp.Upper, 0, 1)
	require.NoError(t, err)
	_, err = p.AddColumns(3, lp.ColumnSpec{Bound: lp.Double, Lower: 0, Upper: 1, Objective: 0.6, Integral: true})
	require.NoError(t, err)
	require.NoError(t, p.SetMatrixEntries([]lp.Nonzero{
		{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 1, Val: 1}, {Row: 1, Col: 2, Val: 1},
	}))

	return p
}

func TestSolveInteger_Cutoff(t *testing.T) {
	cases := []struct {
		name       string
		cutoff     float64
		start      []float64
		wantStatus lp.Status
		wantObj    float64
		wantPruned bool
	}{
		{"optimum beats cutoff", 1.0, nil, lp.Optimal, 1.2, false},
		{"nothing beats cutoff", 1.5, nil, lp.Infeasible, 0, true},
		{"start kept below cutoff", 1.5, []float64{0, 1, 0}, lp.Optimal, 0.6, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := lp.SolveInteger(context.Background(), weightedPath(t),
				lp.Options{UseCutoff: true, Cutoff: tc.cutoff, Start: tc.start})
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, sol.Status)
			assert.InDelta(t, tc.wantObj, sol.Objective, tol)
			assert.Equal(t, tc.wantPruned, sol.CutoffPruned)
		})
	}

	// without a cutoff the zero value of UseCutoff leaves the search exact
	sol, err := lp.SolveInteger(context.Background(), weightedPath(t), lp.Options{Cutoff: 5})
	require.NoError(t, err)
	assert.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 1.2, sol.Objective, tol)
}
