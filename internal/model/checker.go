package model

import (
	"errors"

	"github.com/limaJavier/sudokusat/internal/sat"
)

var (
	// ErrUnsolvable reports a puzzle without any solution.
	ErrUnsolvable = errors.New("puzzle has no solution")
	// ErrNotUnique reports a puzzle with more than one solution. A proper
	// sudoku has exactly one, so such puzzles are rejected as well.
	ErrNotUnique = errors.New("puzzle has more than one solution")
)

// CellVerdict classifies one filled-in attempt cell against the puzzle's
// unique solution.
type CellVerdict struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Digit   int  `json:"digit"`
	Correct bool `json:"correct"`
}

type Checker interface {
	// Solve computes the unique solution of the puzzle. Puzzles with zero or
	// multiple solutions fail with ErrUnsolvable or ErrNotUnique.
	Solve(puzzle Grid) (Grid, error)

	// Compare solves the puzzle and classifies every non-empty cell of the
	// attempt against the solution. Empty attempt cells yield no verdict.
	Compare(puzzle, attempt Grid) ([]CellVerdict, error)
}

func NewChecker(solver sat.SATSolver) Checker {
	return newSatChecker(solver)
}
