// SPDX-License-Identifier: MIT
// Package: cgcolor/colgen
//
// state.go - loop states and the per-run counters.
//
// Transitions:
//
//	Init -> SolveMaster -> Price -> AddColumn -> SolveMaster ...
//	                            -> TerminateGeneration -> SolveIntegerMaster -> Done

package colgen

import "time"

// State is a phase of the column-generation loop.
type State int

const (
	StateInit State = iota
	StateSolveMaster
	StatePrice
	StateAddColumn
	StateTerminateGeneration
	StateSolveIntegerMaster
	StateDone
)

var stateNames = [...]string{
	"Init", "SolveMaster", "Price", "AddColumn",
	"TerminateGeneration", "SolveIntegerMaster", "Done",
}

func (s State) String() string {
	if s < StateInit || s > StateDone {
		return "State(?)"
	}

	return stateNames[s]
}

// RunContext carries the counters of one run. It is reset when Run starts.
type RunContext struct {
	State            State
	Iterations       int
	ColumnsGenerated int
	SolverCalls      int
	// HeuristicColumns counts the columns priced by Greedy alone.
	HeuristicColumns int
	// Duals is the latest vertex price snapshot.
	Duals []float64
	// Priced is the latest pricing answer, set before AddColumn is entered.
	Priced          []int
	MasterObjective float64
	Started         time.Time
}

func (rc *RunContext) reset(now time.Time) {
	*rc = RunContext{State: StateInit, Started: now}
}

// IterationStat records one master/pricing round.
type IterationStat struct {
	Iteration        int
	MasterObjective  float64
	PricingObjective float64
	ReducedCost      float64
	// Column is the pool id of the column added this round, or -1.
	Column   int
	Vertices []int
	// Heuristic marks a round priced by Greedy without a pricing solve.
	Heuristic bool
	Elapsed   time.Duration
}
