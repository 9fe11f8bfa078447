// SPDX-License-Identifier: MIT
// Package: cgcolor/graph
//
// load.go - reader and writer for the plain-text instance format:
//
//	n m
//	i j
//	...
//
// Rules:
//   - Blank lines and surrounding whitespace are ignored.
//   - Every non-blank line holds exactly two integers.
//   - A repeated edge (either orientation) counts once.
//   - The number of distinct edges must equal m. If it equals m/2 exactly,
//     the header is taken to have counted each edge twice and M() is corrected.

package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxLineBytes = 1 << 20

// Load parses an instance from r. Every rejection matches ErrMalformedInstance;
// read failures from r are returned wrapped as they are.
func Load(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		g      *Graph
		lineNo int
		m      int
	)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		a, b, err := parsePair(text)
		if err != nil {
			return nil, malformed(lineNo, "%v", err)
		}
		if g == nil {
			if a < 1 {
				return nil, malformed(lineNo, "vertex count n=%d < 1", a)
			}
			if b < 0 {
				return nil, malformed(lineNo, "edge count m=%d < 0", b)
			}
			g, m = newGraph(a), b
			continue
		}
		if err = g.addEdge(Edge{U: a, V: b}, lineNo); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: read instance: %w", err)
	}
	if g == nil {
		return nil, malformed(0, "missing \"n m\" header")
	}

	count := len(g.edges)
	switch {
	case count == m:
	case 2*count == m:
		// header counted both orientations
	default:
		return nil, malformed(0, "header declares m=%d but %d distinct edges were read", m, count)
	}
	g.declared = m
	g.finish()

	return g, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open instance: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func parsePair(text string) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want two integers, got %d fields", len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad integer %q", fields[0])
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad integer %q", fields[1])
	}

	return a, b, nil
}

// Write renders g in the instance format with the distinct edge count in the
// header, so Load(Write(g)) reproduces g.
func (g *Graph) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.n, len(g.edges)); err != nil {
		return err
	}
	for _, e := range g.edges {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return err
		}
	}

	return bw.Flush()
}
