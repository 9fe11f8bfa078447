// SPDX-License-Identifier: MIT
// Package: cgcolor/lp
//
// problem.go - the mutable model: rows, columns and a column-major sparse
// constraint matrix.
//
// Contract:
//   - Indices are 0-based; AddRows/AddColumns return the first new index.
//   - Columns only grow; existing coefficients can be overwritten, and a zero
//     value removes the entry.
//   - After Destroy every method returns ErrDestroyed.
//   - A Problem is not safe for concurrent mutation.

package lp

import (
	"fmt"
	"math"
	"sort"
)

const (
	methodAddRows      = "AddRows"
	methodAddColumns   = "AddColumns"
	methodAddColumn    = "AddColumn"
	methodSetEntries   = "SetMatrixEntries"
	methodSetObjective = "SetObjective"
	methodColumn       = "Column"
)

type rowDef struct {
	name   string
	bound  BoundType
	lo, up float64
}

type colDef struct {
	spec ColumnSpec
	rows []int // ascending
	vals []float64
}

// Problem is an LP or MIP model.
type Problem struct {
	name      string
	dir       Direction
	rows      []rowDef
	cols      []colDef
	destroyed bool
}

// NewProblem creates an empty model.
func NewProblem(name string, dir Direction) *Problem {
	return &Problem{name: name, dir: dir}
}

// Name returns the model name given to NewProblem.
func (p *Problem) Name() string { return p.name }

// Direction returns the optimization sense.
func (p *Problem) Direction() Direction { return p.dir }

// NumRows returns the row count.
func (p *Problem) NumRows() int { return len(p.rows) }

// NumCols returns the column count.
func (p *Problem) NumCols() int { return len(p.cols) }

// Destroy releases the model. It is idempotent.
func (p *Problem) Destroy() {
	p.destroyed = true
	p.rows, p.cols = nil, nil
}

func (p *Problem) alive() error {
	if p == nil || p.destroyed {
		return ErrDestroyed
	}

	return nil
}

// AddRows appends count rows sharing one bound declaration.
func (p *Problem) AddRows(count int, bt BoundType, lo, up float64) (int, error) {
	if err := p.alive(); err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, fmt.Errorf("%s: count=%d: %w", methodAddRows, count, ErrBadCount)
	}
	if _, _, err := interval(bt, lo, up); err != nil {
		return 0, fmt.Errorf("%s: %w", methodAddRows, err)
	}
	first := len(p.rows)
	for i := 0; i < count; i++ {
		p.rows = append(p.rows, rowDef{bound: bt, lo: lo, up: up})
	}

	return first, nil
}

// SetRowName names row i.
func (p *Problem) SetRowName(i int, name string) error {
	if err := p.checkRow(i); err != nil {
		return err
	}
	p.rows[i].name = name

	return nil
}

// RowName returns the name of row i, or "" when unnamed or out of range.
func (p *Problem) RowName(i int) string {
	if p.checkRow(i) != nil {
		return ""
	}

	return p.rows[i].name
}

// RowBounds returns the bound declaration of row i.
func (p *Problem) RowBounds(i int) (BoundType, float64, float64, error) {
	if err := p.checkRow(i); err != nil {
		return Free, 0, 0, err
	}
	r := p.rows[i]

	return r.bound, r.lo, r.up, nil
}

// AddColumns appends count empty columns built from spec.
func (p *Problem) AddColumns(count int, spec ColumnSpec) (int, error) {
	if err := p.alive(); err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, fmt.Errorf("%s: count=%d: %w", methodAddColumns, count, ErrBadCount)
	}
	if err := checkSpec(spec); err != nil {
		return 0, fmt.Errorf("%s: %w", methodAddColumns, err)
	}
	first := len(p.cols)
	for i := 0; i < count; i++ {
		p.cols = append(p.cols, colDef{spec: spec})
	}

	return first, nil
}

// AddColumn appends one column with its nonzeros in the given rows.
// rows must be distinct; the column is not added if any argument is invalid.
func (p *Problem) AddColumn(spec ColumnSpec, rows []int, vals []float64) (int, error) {
	if err := p.alive(); err != nil {
		return 0, err
	}
	if len(rows) != len(vals) {
		return 0, fmt.Errorf("%s: %d rows vs %d values: %w", methodAddColumn, len(rows), len(vals), ErrBadCount)
	}
	if err := checkSpec(spec); err != nil {
		return 0, fmt.Errorf("%s: %w", methodAddColumn, err)
	}
	col := colDef{spec: spec}
	seen := make(map[int]struct{}, len(rows))
	for k, r := range rows {
		if r < 0 || r >= len(p.rows) {
			return 0, fmt.Errorf("%s: row %d: %w", methodAddColumn, r, ErrIndexOutOfRange)
		}
		if _, dup := seen[r]; dup {
			return 0, fmt.Errorf("%s: row %d repeated: %w", methodAddColumn, r, ErrBadCount)
		}
		seen[r] = struct{}{}
		if err := checkValue(vals[k]); err != nil {
			return 0, fmt.Errorf("%s: row %d: %w", methodAddColumn, r, err)
		}
		col.set(r, vals[k])
	}
	p.cols = append(p.cols, col)

	return len(p.cols) - 1, nil
}

// SetMatrixEntries writes coefficients. Entries are validated before any is
// applied; a later entry for the same cell wins.
func (p *Problem) SetMatrixEntries(entries []Nonzero) error {
	if err := p.alive(); err != nil {
		return err
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= len(p.rows) || e.Col < 0 || e.Col >= len(p.cols) {
			return fmt.Errorf("%s: (%d,%d): %w", methodSetEntries, e.Row, e.Col, ErrIndexOutOfRange)
		}
		if err := checkValue(e.Val); err != nil {
			return fmt.Errorf("%s: (%d,%d): %w", methodSetEntries, e.Row, e.Col, err)
		}
	}
	for _, e := range entries {
		p.cols[e.Col].set(e.Row, e.Val)
	}

	return nil
}

// SetObjective sets the objective coefficient of column j.
func (p *Problem) SetObjective(j int, v float64) error {
	if err := p.checkCol(j); err != nil {
		return err
	}
	if err := checkValue(v); err != nil {
		return fmt.Errorf("%s: col %d: %w", methodSetObjective, j, err)
	}
	p.cols[j].spec.Objective = v

	return nil
}

// SetColumnName names column j.
func (p *Problem) SetColumnName(j int, name string) error {
	if err := p.checkCol(j); err != nil {
		return err
	}
	p.cols[j].spec.Name = name

	return nil
}

// ColumnSpecAt returns a copy of the declaration of column j.
func (p *Problem) ColumnSpecAt(j int) (ColumnSpec, error) {
	if err := p.checkCol(j); err != nil {
		return ColumnSpec{}, err
	}

	return p.cols[j].spec, nil
}

// Column returns copies of the row indices (ascending) and values of column j.
func (p *Problem) Column(j int) ([]int, []float64, error) {
	if err := p.checkCol(j); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodColumn, err)
	}
	c := p.cols[j]
	rows := make([]int, len(c.rows))
	vals := make([]float64, len(c.vals))
	copy(rows, c.rows)
	copy(vals, c.vals)

	return rows, vals, nil
}

func (p *Problem) checkRow(i int) error {
	if err := p.alive(); err != nil {
		return err
	}
	if i < 0 || i >= len(p.rows) {
		return fmt.Errorf("row %d of %d: %w", i, len(p.rows), ErrIndexOutOfRange)
	}

	return nil
}

func (p *Problem) checkCol(j int) error {
	if err := p.alive(); err != nil {
		return err
	}
	if j < 0 || j >= len(p.cols) {
		return fmt.Errorf("column %d of %d: %w", j, len(p.cols), ErrIndexOutOfRange)
	}

	return nil
}

func checkSpec(s ColumnSpec) error {
	if _, _, err := interval(s.Bound, s.Lower, s.Upper); err != nil {
		return err
	}

	return checkValue(s.Objective)
}

func checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("coefficient %v: %w", v, ErrBadBounds)
	}

	return nil
}

// set writes a(r) = v keeping rows ascending; v == 0 removes the entry.
func (c *colDef) set(r int, v float64) {
	k := sort.SearchInts(c.rows, r)
	if k < len(c.rows) && c.rows[k] == r {
		if v == 0 {
			c.rows = append(c.rows[:k], c.rows[k+1:]...)
			c.vals = append(c.vals[:k], c.vals[k+1:]...)
			return
		}
		c.vals[k] = v
		return
	}
	if v == 0 {
		return
	}
	c.rows = append(c.rows, 0)
	c.vals = append(c.vals, 0)
	copy(c.rows[k+1:], c.rows[k:])
	copy(c.vals[k+1:], c.vals[k:])
	c.rows[k], c.vals[k] = r, v
}
