// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c), 0-based, is vertex offset + r*cols + c + 1 (row-major).
//   • For each cell in row-major order: right neighbor first, then down.
//
// Complexity: O(rows·cols) vertices + O(2·rows·cols) edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		// 1) Both dimensions must be positive; 1×k degenerates to a path.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		// 2) Row-major numbering: cell (r,c) is vertex off + r*cols + c + 1.
		off := s.block(rows * cols)
		id := func(r, c int) int { return off + r*cols + c + 1 }
		// 3) Per cell, the right neighbor first, then the one below.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.edge(id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					s.edge(id(r, c), id(r+1, c))
				}
			}
		}

		return nil
	}
}
