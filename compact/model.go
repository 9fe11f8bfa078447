// SPDX-License-Identifier: MIT
// Package: cgcolor/compact
//
// model.go - building the assignment model.
//
// Column layout: y_k is column k-1; x_ik is column K + (i-1)*K + (k-1).

package compact

import (
	"fmt"

	"github.com/katalvlaran/cgcolor/graph"
	"github.com/katalvlaran/cgcolor/lp"
)

// Model is the assignment formulation of one graph.
type Model struct {
	g    *graph.Graph
	k    int
	prob *lp.Problem
}

var binary = lp.ColumnSpec{Bound: lp.Double, Lower: 0, Upper: 1, Integral: true}

// NewModel builds the model for g with the greedy color count as K.
func NewModel(g *graph.Graph) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("compact: nil graph: %w", graph.ErrMalformedInstance)
	}

	return NewModelK(g, graph.ColorCount(g.GreedyColoring()))
}

// NewModelK builds the model for g with k colors available.
func NewModelK(g *graph.Graph, k int) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("compact: nil graph: %w", graph.ErrMalformedInstance)
	}
	if k < 1 {
		return nil, fmt.Errorf("compact: k=%d: %w", k, lp.ErrBadCount)
	}
	m := &Model{g: g, k: k, prob: lp.NewProblem("coloring", lp.Minimize)}
	if err := m.build(); err != nil {
		m.prob.Destroy()
		return nil, err
	}

	return m, nil
}

// K returns the number of colors available to the model.
func (m *Model) K() int { return m.k }

// Problem exposes the underlying LP, for export.
func (m *Model) Problem() *lp.Problem { return m.prob }

// Close releases the LP.
func (m *Model) Close() { m.prob.Destroy() }

func (m *Model) y(k int) int    { return k - 1 }
func (m *Model) x(i, k int) int { return m.k + (i-1)*m.k + (k - 1) }

func (m *Model) build() error {
	n, p := m.g.N(), m.prob

	for k := 1; k <= m.k; k++ {
		spec := binary
		spec.Name, spec.Objective = fmt.Sprintf("y%d", k), 1
		if _, err := p.AddColumns(1, spec); err != nil {
			return err
		}
	}
	for i := 1; i <= n; i++ {
		for k := 1; k <= m.k; k++ {
			spec := binary
			spec.Name = fmt.Sprintf("x%d_%d", i, k)
			if _, err := p.AddColumns(1, spec); err != nil {
				return err
			}
		}
	}

	var nz []lp.Nonzero
	row := func(name string, bt lp.BoundType, lo, up float64, terms ...lp.Nonzero) error {
		r, err := p.AddRows(1, bt, lo, up)
		if err != nil {
			return err
		}
		if err = p.SetRowName(r, name); err != nil {
			return err
		}
		for _, t := range terms {
			t.Row = r
			nz = append(nz, t)
		}

		return nil
	}

	for e, ed := range m.g.Edges() {
		for k := 1; k <= m.k; k++ {
			if err := row(fmt.Sprintf("edge%d_%d", e+1, k), lp.Upper, 0, 0,
				lp.Nonzero{Col: m.x(ed.U, k), Val: 1},
				lp.Nonzero{Col: m.x(ed.V, k), Val: 1},
				lp.Nonzero{Col: m.y(k), Val: -1}); err != nil {
				return err
			}
		}
	}
	for i := 1; i <= n; i++ {
		if m.g.Degree(i) > 0 {
			continue
		}
		for k := 1; k <= m.k; k++ {
			if err := row(fmt.Sprintf("iso%d_%d", i, k), lp.Upper, 0, 0,
				lp.Nonzero{Col: m.x(i, k), Val: 1},
				lp.Nonzero{Col: m.y(k), Val: -1}); err != nil {
				return err
			}
		}
	}
	for i := 1; i <= n; i++ {
		terms := make([]lp.Nonzero, m.k)
		for k := 1; k <= m.k; k++ {
			terms[k-1] = lp.Nonzero{Col: m.x(i, k), Val: 1}
		}
		if err := row(fmt.Sprintf("assign%d", i), lp.Fixed, 1, 1, terms...); err != nil {
			return err
		}
	}
	for k := 1; k < m.k; k++ {
		if err := row(fmt.Sprintf("sym%d", k), lp.Lower, 0, 0,
			lp.Nonzero{Col: m.y(k), Val: 1},
			lp.Nonzero{Col: m.y(k + 1), Val: -1}); err != nil {
			return err
		}
	}

	return p.SetMatrixEntries(nz)
}
