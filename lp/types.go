// SPDX-License-Identifier: MIT
// Package: cgcolor/lp
//
// types.go - enums and value types of the LP/MIP facade.
//
// Bound types follow the usual solver convention:
//
//	Free    -inf < v < +inf
//	Lower   lo  <= v < +inf
//	Upper   -inf < v <= up
//	Double  lo  <= v <= up
//	Fixed   v == lo
//
// The same BoundType describes row activities and column values.

package lp

import (
	"fmt"
	"math"
)

// Direction is the optimization sense of a Problem.
type Direction int

const (
	// Minimize the objective.
	Minimize Direction = iota
	// Maximize the objective.
	Maximize
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Maximize {
		return "Maximize"
	}

	return "Minimize"
}

// BoundType classifies a row or column bound pair.
type BoundType int

const (
	Free BoundType = iota
	Lower
	Upper
	Double
	Fixed
)

var boundNames = [...]string{"Free", "Lower", "Upper", "Double", "Fixed"}

// String implements fmt.Stringer.
func (b BoundType) String() string {
	if b < Free || b > Fixed {
		return fmt.Sprintf("BoundType(%d)", int(b))
	}

	return boundNames[b]
}

// interval converts a bound declaration to an explicit [lo, up] pair with
// infinities for the open sides.
func interval(bt BoundType, lo, up float64) (float64, float64, error) {
	inf := math.Inf(1)
	switch bt {
	case Free:
		return -inf, inf, nil
	case Lower:
		if math.IsNaN(lo) || math.IsInf(lo, 0) {
			return 0, 0, fmt.Errorf("Lower bound %v: %w", lo, ErrBadBounds)
		}
		return lo, inf, nil
	case Upper:
		if math.IsNaN(up) || math.IsInf(up, 0) {
			return 0, 0, fmt.Errorf("Upper bound %v: %w", up, ErrBadBounds)
		}
		return -inf, up, nil
	case Double:
		if math.IsNaN(lo) || math.IsNaN(up) || math.IsInf(lo, 0) || math.IsInf(up, 0) || lo > up {
			return 0, 0, fmt.Errorf("Double bounds [%v,%v]: %w", lo, up, ErrBadBounds)
		}
		return lo, up, nil
	case Fixed:
		if math.IsNaN(lo) || math.IsInf(lo, 0) {
			return 0, 0, fmt.Errorf("Fixed value %v: %w", lo, ErrBadBounds)
		}
		return lo, lo, nil
	default:
		return 0, 0, fmt.Errorf("%v: %w", bt, ErrBadBounds)
	}
}

// Status is the outcome of a solve.
type Status int

const (
	// Undefined means no solve has produced a result.
	Undefined Status = iota
	// Optimal means the returned point is proven optimal.
	Optimal
	// Feasible means a limit stopped the search with an incumbent in hand.
	Feasible
	// Infeasible means no point satisfies the constraints.
	Infeasible
	// Unbounded means the objective improves without limit.
	Unbounded
	// TimeLimit means a limit stopped the search before any incumbent was found.
	TimeLimit
)

var statusNames = [...]string{"Undefined", "Optimal", "Feasible", "Infeasible", "Unbounded", "TimeLimit"}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s < Undefined || s > TimeLimit {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// Nonzero is one constraint-matrix coefficient (0-based row and column).
type Nonzero struct {
	Row, Col int
	Val      float64
}

// ColumnSpec describes a structural column.
type ColumnSpec struct {
	Name      string
	Bound     BoundType
	Lower     float64
	Upper     float64
	Objective float64
	// Integral marks the column for SolveInteger; SolveRelaxation ignores it.
	Integral bool
}

// Relaxation is the result of SolveRelaxation.
type Relaxation struct {
	Status    Status
	Objective float64
	// Primal holds one value per column.
	Primal []float64
	// Dual holds one value per row: the rate of change of the optimal
	// objective per unit increase of the row's active bound. Only set when
	// Status == Optimal.
	Dual []float64
}

// Solution is the result of SolveInteger.
type Solution struct {
	Status    Status
	Objective float64
	// Values holds one value per column; nil unless Status is Optimal or Feasible.
	Values []float64
	// Nodes is the number of branch-and-bound nodes evaluated.
	Nodes int
	// LimitReached reports that a time or node limit ended the search early.
	LimitReached bool
	// CutoffPruned reports that Options.Cutoff discarded at least one node.
	// No point skipped that way beats Cutoff, so an Optimal answer is exact
	// only when its objective beats Cutoff; Infeasible then means no point
	// beats Cutoff.
	CutoffPruned bool
}
