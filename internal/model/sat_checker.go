package model

import (
	"fmt"

	"github.com/limaJavier/sudokusat/internal/sat"
)

type satChecker struct {
	//** Dependencies
	encoder Encoder
	indexer Indexer
	solver  sat.SATSolver
}

func newSatChecker(solver sat.SATSolver) *satChecker {
	return &satChecker{
		encoder: NewEncoder(),
		indexer: NewIndexer(),
		solver:  solver,
	}
}

func (checker *satChecker) Solve(puzzle Grid) (Grid, error) {
	//** Build the complete SAT instance
	instance, err := checker.encoder.Encode(puzzle)
	if err != nil {
		return Grid{}, err
	}

	//** Solve and prove uniqueness
	solution, unique, err := sat.SolveUnique(checker.solver, instance)
	if err != nil {
		return Grid{}, err
	} else if solution == nil {
		return Grid{}, ErrUnsolvable
	} else if !unique {
		return Grid{}, ErrNotUnique
	}

	//** Decode the true literals back into a grid
	var solved Grid
	for _, literal := range solution {
		if literal <= 0 {
			continue
		}
		x, y, n := checker.indexer.Attributes(literal)
		solved[y][x] = n

		// A decoded digit clashing with a given is an encoder/solver defect,
		// not a property of the puzzle
		if puzzle[y][x] > 0 && puzzle[y][x] != n {
			return Grid{}, fmt.Errorf("solution clashes with given %v at column %v, row %v", puzzle[y][x], x, y)
		}
	}
	if !solved.Complete() {
		return Grid{}, fmt.Errorf("solver produced a partial assignment")
	}

	return solved, nil
}

func (checker *satChecker) Compare(puzzle, attempt Grid) ([]CellVerdict, error) {
	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	solved, err := checker.Solve(puzzle)
	if err != nil {
		return nil, err
	}

	verdicts := make([]CellVerdict, 0, GridSize*GridSize)
	for y := range GridSize {
		for x := range GridSize {
			if attempt[y][x] == 0 {
				continue
			}
			verdicts = append(verdicts, CellVerdict{
				X:       x,
				Y:       y,
				Digit:   attempt[y][x],
				Correct: attempt[y][x] == solved[y][x],
			})
		}
	}
	return verdicts, nil
}
