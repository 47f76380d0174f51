package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const (
	giniSatisfiable   = 1
	giniUnsatisfiable = -1
)

// NewGiniSolver returns a solver backed by the in-process gini CDCL engine.
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

type giniSolver struct{}

func (solver *giniSolver) Solve(instance SAT) (SATSolution, error) {
	g := gini.New()
	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull)
	}

	switch g.Solve() {
	case giniSatisfiable:
		solution := make(SATSolution, 0, instance.Variables)
		for variable := int64(1); variable <= int64(instance.Variables); variable++ {
			if g.Value(z.Dimacs2Lit(int(variable))) {
				solution = append(solution, variable)
			} else {
				solution = append(solution, -variable)
			}
		}
		return solution, nil
	case giniUnsatisfiable:
		return nil, nil
	default:
		return nil, fmt.Errorf("gini returned an inconclusive result")
	}
}
