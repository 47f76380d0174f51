package sat

import "slices"

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// SolveUnique solves the instance and then proves or disproves that the found
// assignment is the only one. A blocking clause asserting "not exactly this
// assignment" (the negation of every assigned literal) is added to a fresh
// copy of the original instance and that copy is solved from scratch; a
// second solution disproves uniqueness.
//
// Returns the first solution found (nil if unsatisfiable) and whether it is
// unique.
func SolveUnique(solver SATSolver, instance SAT) (SATSolution, bool, error) {
	solution, err := solver.Solve(instance)
	if err != nil || solution == nil {
		return nil, false, err
	}

	blocking := make([]int64, 0, len(solution))
	for _, literal := range solution {
		blocking = append(blocking, -literal)
	}

	blocked := SAT{
		Variables: instance.Variables,
		Clauses:   append(slices.Clone(instance.Clauses), blocking),
	}
	second, err := solver.Solve(blocked)
	if err != nil {
		return nil, false, err
	}

	return solution, second == nil, nil
}
