// SPDX-License-Identifier: MIT
// Package: cgcolor/lp
//
// standard.go - conversion of a bounded general model into the standard form
// accepted by the simplex backend:
//
//	minimize  c'z   subject to  A z = b,  z >= 0,  b >= 0.
//
// Column x_j with bounds [l,u] becomes:
//
//	l == u          constant, no variable
//	l finite        x = l + z      (plus bound row z + t = u - l when u finite)
//	only u finite   x = u - z
//	free            x = z+ - z-
//
// Row lo <= a'x <= up gets a surplus column for lo, a slack column for up, or
// neither when lo == up. Rows whose every term was substituted away are
// checked directly and dropped. Structural columns left without any
// coefficient are fixed at zero, or prove unboundedness when their cost is
// negative. Finally rows with a negative right-hand side are negated.

package lp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// feasTol is the slack allowed when a constraint is checked directly.
const feasTol = 1e-9

type xformKind int

const (
	colConst xformKind = iota
	colShift
	colMirror
	colSplit
)

type colXform struct {
	kind  xformKind
	pos   int // standard index of z (or z+)
	neg   int // standard index of z- (split only)
	shift float64
}

type term struct {
	col int
	val float64
}

type stdRow struct {
	origin int     // model row, or -1 for a column bound row
	flip   float64 // +1, or -1 when the row was negated
	terms  []term
	rhs    float64
}

// stdForm is a model in standard form together with the maps needed to
// translate a standard-form point back.
type stdForm struct {
	sense float64 // +1 minimize, -1 maximize (costs are sense*objective)
	cols  []colXform
	rows  []stdRow
	cost  []float64 // per standard column before dropping
	keep  []int     // standard column -> dense column, -1 when dropped
	nKeep int
}

func (p *Problem) columnIntervals() ([]float64, []float64) {
	lo := make([]float64, len(p.cols))
	hi := make([]float64, len(p.cols))
	for j, c := range p.cols {
		// specs are validated on insertion
		lo[j], hi[j], _ = interval(c.spec.Bound, c.spec.Lower, c.spec.Upper)
	}

	return lo, hi
}

// buildStandard converts p under the column bounds lo/hi. A non-Undefined
// status means the answer was settled during conversion.
func buildStandard(p *Problem, lo, hi []float64) (*stdForm, Status) {
	sf := &stdForm{sense: 1, cols: make([]colXform, len(p.cols))}
	if p.dir == Maximize {
		sf.sense = -1
	}

	type boundRow struct {
		col int
		rhs float64
	}
	var bounds []boundRow

	// 1) Column transforms; finite upper bounds of shifted columns are queued
	// as rows so that they follow every model row.
	for j, c := range p.cols {
		l, u := lo[j], hi[j]
		if l > u+feasTol {
			return nil, Infeasible
		}
		cj := sf.sense * c.spec.Objective
		switch {
		case u-l <= feasTol:
			sf.cols[j] = colXform{kind: colConst, shift: l}
		case !math.IsInf(l, 0):
			sf.cols[j] = colXform{kind: colShift, pos: sf.newColumn(cj), shift: l}
			if !math.IsInf(u, 0) {
				bounds = append(bounds, boundRow{col: sf.cols[j].pos, rhs: u - l})
			}
		case !math.IsInf(u, 0):
			sf.cols[j] = colXform{kind: colMirror, pos: sf.newColumn(-cj), shift: u}
		default:
			pos := sf.newColumn(cj)
			sf.cols[j] = colXform{kind: colSplit, pos: pos, neg: sf.newColumn(-cj)}
		}
	}

	// 2) Substitute the transforms into the rows: constants move to konst,
	// the rest becomes terms over standard columns.
	terms := make([][]term, len(p.rows))
	konst := make([]float64, len(p.rows))
	for j, c := range p.cols {
		x := sf.cols[j]
		for k, r := range c.rows {
			a := c.vals[k]
			switch x.kind {
			case colConst:
				konst[r] += a * x.shift
			case colShift:
				konst[r] += a * x.shift
				terms[r] = append(terms[r], term{col: x.pos, val: a})
			case colMirror:
				konst[r] += a * x.shift
				terms[r] = append(terms[r], term{col: x.pos, val: -a})
			case colSplit:
				terms[r] = append(terms[r], term{col: x.pos, val: a}, term{col: x.neg, val: -a})
			}
		}
	}

	// 3) One standard row per finite side; a Fixed row needs no slack.
	for i, r := range p.rows {
		rl, ru, _ := interval(r.bound, r.lo, r.up)
		if len(terms[i]) == 0 {
			if konst[i] < rl-feasTol || konst[i] > ru+feasTol {
				return nil, Infeasible
			}
			continue
		}
		hasLo, hasUp := !math.IsInf(rl, 0), !math.IsInf(ru, 0)
		switch {
		case hasLo && hasUp && rl == ru:
			sf.addRow(i, terms[i], rl-konst[i], 0)
		default:
			if hasLo {
				sf.addRow(i, terms[i], rl-konst[i], -1)
			}
			if hasUp {
				sf.addRow(i, terms[i], ru-konst[i], 1)
			}
		}
	}
	for _, br := range bounds {
		sf.addRow(-1, []term{{col: br.col, val: 1}}, br.rhs, 1)
	}

	// 4) Drop standard columns no row mentions. With a negative cost such a
	// column grows without limit.
	used := make([]bool, len(sf.cost))
	for _, r := range sf.rows {
		for _, t := range r.terms {
			used[t.col] = true
		}
	}
	sf.keep = make([]int, len(sf.cost))
	for k, ok := range used {
		if !ok {
			if sf.cost[k] < 0 {
				return nil, Unbounded
			}
			sf.keep[k] = -1
			continue
		}
		sf.keep[k] = sf.nKeep
		sf.nKeep++
	}

	// 5) Normalize b >= 0; flip records the sign for the dual mapping.
	for i := range sf.rows {
		r := &sf.rows[i]
		r.flip = 1
		if r.rhs < 0 {
			r.flip = -1
			r.rhs = -r.rhs
			for k := range r.terms {
				r.terms[k].val = -r.terms[k].val
			}
		}
	}

	return sf, Undefined
}

func (sf *stdForm) newColumn(cost float64) int {
	sf.cost = append(sf.cost, cost)

	return len(sf.cost) - 1
}

// addRow appends terms = rhs, plus a slack with coefficient slack when nonzero.
func (sf *stdForm) addRow(origin int, terms []term, rhs, slack float64) {
	ts := make([]term, len(terms), len(terms)+1)
	copy(ts, terms)
	if slack != 0 {
		ts = append(ts, term{col: sf.newColumn(0), val: slack})
	}
	sf.rows = append(sf.rows, stdRow{origin: origin, terms: ts, rhs: rhs})
}

// dense materializes A, b, c over the kept columns.
func (sf *stdForm) dense(maxCells int) (*mat.Dense, []float64, []float64, error) {
	m, n := len(sf.rows), sf.nKeep
	if m*n > maxCells {
		return nil, nil, nil, fmt.Errorf("primal %dx%d exceeds %d cells: %w", m, n, maxCells, ErrResourceExhausted)
	}
	data := make([]float64, m*n)
	b := make([]float64, m)
	for i, r := range sf.rows {
		for _, t := range r.terms {
			data[i*n+sf.keep[t.col]] += t.val
		}
		b[i] = r.rhs
	}
	c := make([]float64, n)
	for k, cost := range sf.cost {
		if sf.keep[k] >= 0 {
			c[sf.keep[k]] = cost
		}
	}

	return mat.NewDense(m, n, data), b, c, nil
}

// primal maps a dense standard-form point back to model column values.
func (sf *stdForm) primal(z []float64) []float64 {
	at := func(k int) float64 {
		if d := sf.keep[k]; d >= 0 {
			return z[d]
		}
		return 0
	}
	x := make([]float64, len(sf.cols))
	for j, c := range sf.cols {
		switch c.kind {
		case colConst:
			x[j] = c.shift
		case colShift:
			x[j] = c.shift + at(c.pos)
		case colMirror:
			x[j] = c.shift - at(c.pos)
		case colSplit:
			x[j] = at(c.pos) - at(c.neg)
		}
	}

	return x
}
