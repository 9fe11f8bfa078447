// SPDX-License-Identifier: MIT
// Package: cgcolor/colgen
//
// pool.go - the append-only arena of independent-set columns.
//
// Contract:
//   - Column IDs are dense, start at 0 and equal the master's LP column index.
//   - Columns are never modified or removed once added.
//   - Vertex lists are sorted ascending and 1-based.

package colgen

import (
	"sort"
	"strconv"
	"strings"
)

// Column is one independent set of the pool.
type Column struct {
	ID       int
	Vertices []int
}

// Contains reports whether v belongs to the column.
func (c Column) Contains(v int) bool {
	k := sort.SearchInts(c.Vertices, v)

	return k < len(c.Vertices) && c.Vertices[k] == v
}

// Pool stores the generated columns.
type Pool struct {
	n     int
	cols  []Column
	index map[string]int
}

func newPool(n int) *Pool {
	return &Pool{n: n, index: make(map[string]int)}
}

// Len returns the number of columns.
func (p *Pool) Len() int { return len(p.cols) }

// At returns column id. The Vertices slice must not be modified.
func (p *Pool) At(id int) Column { return p.cols[id] }

// Columns returns a copy of every column in ID order.
func (p *Pool) Columns() []Column {
	out := make([]Column, len(p.cols))
	for i, c := range p.cols {
		vs := make([]int, len(c.Vertices))
		copy(vs, c.Vertices)
		out[i] = Column{ID: c.ID, Vertices: vs}
	}

	return out
}

// Lookup returns the id of the column holding exactly vertices (any order).
func (p *Pool) Lookup(vertices []int) (int, bool) {
	id, ok := p.index[columnKey(sortedCopy(vertices))]

	return id, ok
}

// Covers reports whether every vertex 1..n lies in some column.
func (p *Pool) Covers() bool {
	seen := make([]bool, p.n+1)
	left := p.n
	for _, c := range p.cols {
		for _, v := range c.Vertices {
			if !seen[v] {
				seen[v] = true
				left--
			}
		}
	}

	return left == 0
}

// add appends a sorted vertex list; the caller has checked it is new.
func (p *Pool) add(sorted []int) int {
	id := len(p.cols)
	p.cols = append(p.cols, Column{ID: id, Vertices: sorted})
	p.index[columnKey(sorted)] = id

	return id
}

func sortedCopy(vs []int) []int {
	out := make([]int, len(vs))
	copy(out, vs)
	sort.Ints(out)

	return out
}

func columnKey(sorted []int) string {
	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
