// SPDX-License-Identifier: MIT
// Package: cgcolor/lp
//
// writer.go - CPLEX LP text export, for inspecting models with external tools.
//
// Unnamed rows print as r<i>, unnamed columns as x<j> (1-based). Double rows
// are split into <name>_lo and <name>_up; free rows are omitted.

package lp

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// WriteLP writes p to w in CPLEX LP format.
func WriteLP(w io.Writer, p *Problem) error {
	if err := p.alive(); err != nil {
		return fmt.Errorf("WriteLP: %w", err)
	}
	lw := &lpWriter{w: bufio.NewWriter(w), p: p}
	lw.header()
	lw.objective()
	lw.constraints()
	lw.bounds()
	lw.integers()
	lw.printf("End\n")
	if lw.err != nil {
		return fmt.Errorf("WriteLP: %w", lw.err)
	}

	return lw.w.Flush()
}

type lpWriter struct {
	w   *bufio.Writer
	p   *Problem
	err error
}

func (lw *lpWriter) printf(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

func (lw *lpWriter) colName(j int) string {
	if n := lw.p.cols[j].spec.Name; n != "" {
		return n
	}

	return "x" + strconv.Itoa(j+1)
}

func (lw *lpWriter) rowName(i int) string {
	if n := lw.p.rows[i].name; n != "" {
		return n
	}

	return "r" + strconv.Itoa(i+1)
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func (lw *lpWriter) header() {
	name := lw.p.name
	if name == "" {
		name = "unnamed"
	}
	lw.printf("\\* Problem: %s *\\\n\n", name)
}

func (lw *lpWriter) objective() {
	if lw.p.dir == Maximize {
		lw.printf("Maximize\n")
	} else {
		lw.printf("Minimize\n")
	}
	lw.printf(" obj:")
	wrote := false
	for j, c := range lw.p.cols {
		if c.spec.Objective == 0 {
			continue
		}
		lw.term(c.spec.Objective, lw.colName(j))
		wrote = true
	}
	if !wrote && len(lw.p.cols) > 0 {
		lw.term(0, lw.colName(0))
	}
	lw.printf("\n\n")
}

func (lw *lpWriter) term(v float64, name string) {
	if v < 0 {
		lw.printf(" - %s %s", num(-v), name)
		return
	}
	lw.printf(" + %s %s", num(v), name)
}

func (lw *lpWriter) constraints() {
	lw.printf("Subject To\n")
	rowTerms := make([][]term, len(lw.p.rows))
	for j, c := range lw.p.cols {
		for k, r := range c.rows {
			rowTerms[r] = append(rowTerms[r], term{col: j, val: c.vals[k]})
		}
	}
	for i, r := range lw.p.rows {
		lo, up, _ := interval(r.bound, r.lo, r.up)
		name := lw.rowName(i)
		switch {
		case r.bound == Free:
		case lo == up:
			lw.row(name, rowTerms[i], "=", lo)
		case r.bound == Double:
			lw.row(name+"_lo", rowTerms[i], ">=", lo)
			lw.row(name+"_up", rowTerms[i], "<=", up)
		case !math.IsInf(lo, 0):
			lw.row(name, rowTerms[i], ">=", lo)
		default:
			lw.row(name, rowTerms[i], "<=", up)
		}
	}
	lw.printf("\n")
}

func (lw *lpWriter) row(name string, ts []term, op string, rhs float64) {
	if len(ts) == 0 {
		if len(lw.p.cols) == 0 {
			return
		}
		ts = []term{{col: 0, val: 0}}
	}
	lw.printf(" %s:", name)
	for _, t := range ts {
		lw.term(t.val, lw.colName(t.col))
	}
	lw.printf(" %s %s\n", op, num(rhs))
}

func (lw *lpWriter) bounds() {
	lw.printf("Bounds\n")
	for j, c := range lw.p.cols {
		name := lw.colName(j)
		s := c.spec
		switch s.Bound {
		case Free:
			lw.printf(" %s free\n", name)
		case Lower:
			if s.Lower != 0 {
				lw.printf(" %s >= %s\n", name, num(s.Lower))
			}
		case Upper:
			lw.printf(" -inf <= %s <= %s\n", name, num(s.Upper))
		case Double:
			lw.printf(" %s <= %s <= %s\n", num(s.Lower), name, num(s.Upper))
		case Fixed:
			lw.printf(" %s = %s\n", name, num(s.Lower))
		}
	}
	lw.printf("\n")
}

func (lw *lpWriter) integers() {
	var bin, gen []string
	for j, c := range lw.p.cols {
		if !c.spec.Integral {
			continue
		}
		if c.spec.Bound == Double && c.spec.Lower == 0 && c.spec.Upper == 1 {
			bin = append(bin, lw.colName(j))
			continue
		}
		gen = append(gen, lw.colName(j))
	}
	lw.section("Generals", gen)
	lw.section("Binaries", bin)
}

func (lw *lpWriter) section(title string, names []string) {
	if len(names) == 0 {
		return
	}
	lw.printf("%s\n", title)
	for _, n := range names {
		lw.printf(" %s\n", n)
	}
	lw.printf("\n")
}
