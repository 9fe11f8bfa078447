package lp_test

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgcolor/lp"
)

func TestProblem_Validation(t *testing.T) {
	p := lp.NewProblem("v", lp.Minimize)

	_, err := p.AddRows(0, lp.Lower, 1, 0)
	assert.ErrorIs(t, err, lp.ErrBadCount)
	_, err = p.AddRows(1, lp.Double, 2, 1)
	assert.ErrorIs(t, err, lp.ErrBadBounds)
	_, err = p.AddColumns(1, lp.ColumnSpec{Bound: lp.Lower, Lower: math.NaN()})
	assert.ErrorIs(t, err, lp.ErrBadBounds)

	r, err := p.AddRows(2, lp.Lower, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, r)

	_, err = p.AddColumn(lp.ColumnSpec{}, []int{0, 2}, []float64{1, 1})
	assert.ErrorIs(t, err, lp.ErrIndexOutOfRange)
	_, err = p.AddColumn(lp.ColumnSpec{}, []int{0, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, lp.ErrBadCount)
	_, err = p.AddColumn(lp.ColumnSpec{}, []int{0}, nil)
	assert.ErrorIs(t, err, lp.ErrBadCount)
	assert.Equal(t, 0, p.NumCols(), "rejected columns must not be added")

	assert.ErrorIs(t, p.SetMatrixEntries([]lp.Nonzero{{Row: 0, Col: 0, Val: 1}}), lp.ErrIndexOutOfRange)
	assert.ErrorIs(t, p.SetObjective(0, 1), lp.ErrIndexOutOfRange)
}

func TestProblem_ColumnEntries(t *testing.T) {
	p := lp.NewProblem("c", lp.Minimize)
	_, err := p.AddRows(3, lp.Upper, 0, 1)
	require.NoError(t, err)
	j, err := p.AddColumn(lp.ColumnSpec{Bound: lp.Lower}, []int{2, 0}, []float64{5, 7})
	require.NoError(t, err)

	rows, vals, err := p.Column(j)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, rows)
	assert.Equal(t, []float64{7, 5}, vals)

	require.NoError(t, p.SetMatrixEntries([]lp.Nonzero{{Row: 1, Col: j, Val: 3}, {Row: 2, Col: j, Val: 0}}))
	rows, vals, err = p.Column(j)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, rows)
	assert.Equal(t, []float64{7, 3}, vals)

	require.NoError(t, p.SetObjective(j, 4))
	spec, err := p.ColumnSpecAt(j)
	require.NoError(t, err)
	assert.Equal(t, 4.0, spec.Objective)
}

func TestProblem_Destroy(t *testing.T) {
	p := lp.NewProblem("d", lp.Minimize)
	_, err := p.AddRows(1, lp.Lower, 1, 0)
	require.NoError(t, err)
	p.Destroy()
	p.Destroy()

	_, err = p.AddRows(1, lp.Lower, 1, 0)
	assert.ErrorIs(t, err, lp.ErrDestroyed)
	_, err = lp.SolveRelaxation(context.Background(), p, lp.Options{})
	assert.ErrorIs(t, err, lp.ErrDestroyed)
	_, err = lp.SolveInteger(context.Background(), p, lp.Options{})
	assert.ErrorIs(t, err, lp.ErrDestroyed)
	assert.ErrorIs(t, lp.WriteLP(&bytes.Buffer{}, p), lp.ErrDestroyed)
}

func TestWriteLP(t *testing.T) {
	p := lp.NewProblem("demo", lp.Minimize)
	_, err := p.AddRows(1, lp.Lower, 1, 0)
	require.NoError(t, err)
	require.NoError(t, p.SetRowName(0, "cover1"))
	_, err = p.AddRows(1, lp.Double, -1, 2)
	require.NoError(t, err)
	_, err = p.AddColumn(lp.ColumnSpec{Name: "lambda1", Bound: lp.Double, Upper: 1, Objective: 1, Integral: true}, []int{0, 1}, []float64{1, -2})
	require.NoError(t, err)
	_, err = p.AddColumn(lp.ColumnSpec{Bound: lp.Free, Integral: true}, []int{1}, []float64{1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, lp.WriteLP(&buf, p))
	want := `\* Problem: demo *\

Minimize
 obj: + 1 lambda1

Subject To
 cover1: + 1 lambda1 >= 1
 r2_lo: - 2 lambda1 + 1 x2 >= -1
 r2_up: - 2 lambda1 + 1 x2 <= 2

Bounds
 0 <= lambda1 <= 1
 x2 free

Generals
 x2

Binaries
 lambda1

End
`
	assert.Equal(t, want, buf.String())
}
