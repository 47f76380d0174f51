package sat

import (
	"fmt"
	"strings"
)

// SATSolution is a variable assignment as signed one-based literals, one per
// variable.
type SATSolution []int64

// SAT is a propositional formula in conjunctive normal form. Clauses hold
// signed one-based literals, the DIMACS convention.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
