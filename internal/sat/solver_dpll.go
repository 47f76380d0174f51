package sat

import (
	"maps"
	"slices"
)

// NewDPLLSolver returns the in-process DPLL engine: unit propagation over
// literal-indexed occurrence sets, heuristic branching and backtracking by
// re-solving an independent copy of the search state per decision.
func NewDPLLSolver() SATSolver {
	return &dpllSolver{}
}

type dpllSolver struct{}

func (solver *dpllSolver) Solve(instance SAT) (SATSolution, error) {
	state, consistent := newSearchState(instance)
	if !consistent || !state.solve() {
		return nil, nil
	}
	return state.solution(), nil
}

// searchState is one branch of the DPLL search. Each branch owns its state in
// full: the live clauses, the occurrence index, the unit trail and the
// per-variable assignments. Branching copies the whole state instead of
// keeping an undo log.
type searchState struct {
	variables int

	// Live clauses keyed by their canonical form. Clause slices are never
	// mutated in place, so clones of this map may share them.
	clauses map[string][]Lit
	// For each literal, the keys of the not-yet-satisfied clauses containing
	// it. Indexed by the magnitude-sign literal value.
	occurrences []map[string]struct{}

	// The unit trail: literals forced true, in derivation order. Positions
	// below propagated have already been propagated.
	trail      []Lit
	propagated int

	assigned []bool
	value    []bool
}

// newSearchState indexes the instance's clauses and seeds the trail with the
// input's unit clauses in increasing variable order. The second return value
// is false if the input units already contradict each other or the instance
// contains an empty clause.
func newSearchState(instance SAT) (*searchState, bool) {
	variables := int(instance.Variables)
	state := &searchState{
		variables:   variables,
		clauses:     make(map[string][]Lit),
		occurrences: make([]map[string]struct{}, 2*variables),
		assigned:    make([]bool, variables),
		value:       make([]bool, variables),
	}
	for i := range state.occurrences {
		state.occurrences[i] = make(map[string]struct{})
	}

	var units []Lit
	for _, clause := range instance.Clauses {
		if len(clause) == 0 {
			return nil, false
		}
		literals := make([]Lit, 0, len(clause))
		for _, literal := range clause {
			literals = append(literals, LitFromDimacs(literal))
		}
		literals = canonicalize(literals)
		if literals == nil { // tautology
			continue
		}
		key := clauseKey(literals)
		if _, exists := state.clauses[key]; exists {
			continue
		}
		state.clauses[key] = literals
		for _, literal := range literals {
			state.occurrences[literal][key] = struct{}{}
		}
		if len(literals) == 1 {
			units = append(units, literals[0])
		}
	}

	slices.Sort(units)
	for _, unit := range units {
		if state.assigned[unit.Var()] {
			if state.value[unit.Var()] != unit.IsPos() {
				return nil, false
			}
			continue
		}
		state.addUnit(unit)
	}
	return state, true
}

func (state *searchState) addUnit(literal Lit) {
	state.trail = append(state.trail, literal)
	state.assigned[literal.Var()] = true
	state.value[literal.Var()] = literal.IsPos()
}

// solve runs propagation to a fixpoint, then branches on an unassigned
// variable if any remain. Returns whether this branch is satisfiable; the
// first succeeding child supplies the final trail and assignments.
func (state *searchState) solve() bool {
	for state.propagated < len(state.trail) {
		if !state.propagate(state.trail[state.propagated]) {
			return false
		}
		state.propagated++
	}

	if len(state.trail) == state.variables {
		return true
	}

	branch := state.selectVariable()
	for _, negated := range []bool{true, false} { // try false before true
		child := state.clone()
		child.addUnit(NewLit(branch, negated))
		if child.solve() {
			state.trail = child.trail
			state.assigned = child.assigned
			state.value = child.value
			return true
		}
	}
	return false
}

// propagate applies one trail literal: clauses containing it are satisfied
// and disappear from the index, clauses containing its complement shrink by
// one literal. A shrink to one literal forces a new unit; a shrink to zero
// literals is a contradiction and fails the branch.
func (state *searchState) propagate(literal Lit) bool {
	for _, key := range sortedKeys(state.occurrences[literal]) {
		for _, member := range state.clauses[key] {
			if member != literal {
				delete(state.occurrences[member], key)
			}
		}
		delete(state.clauses, key)
	}
	state.occurrences[literal] = make(map[string]struct{})

	complement := literal.Not()
	for _, key := range sortedKeys(state.occurrences[complement]) {
		clause := state.clauses[key]
		reduced := make([]Lit, 0, len(clause)-1)
		for _, member := range clause {
			if member != complement {
				reduced = append(reduced, member)
			}
		}
		if len(reduced) == 0 {
			return false
		}

		delete(state.clauses, key)
		reducedKey := clauseKey(reduced)
		state.clauses[reducedKey] = reduced
		for _, member := range reduced {
			delete(state.occurrences[member], key)
			state.occurrences[member][reducedKey] = struct{}{}
		}

		if len(reduced) == 1 {
			unit := reduced[0]
			if state.assigned[unit.Var()] {
				if state.value[unit.Var()] != unit.IsPos() {
					return false
				}
			} else {
				state.addUnit(unit)
			}
		}
	}
	state.occurrences[complement] = make(map[string]struct{})
	return true
}

// selectVariable picks the unassigned variable whose positive literal occurs
// in the most remaining clauses, ties broken by the lowest variable index so
// repeated solves take identical paths.
func (state *searchState) selectVariable() int {
	best, bestCount := -1, -1
	for variable := 0; variable < state.variables; variable++ {
		if state.assigned[variable] {
			continue
		}
		count := len(state.occurrences[NewLit(variable, false)])
		if count > bestCount {
			best, bestCount = variable, count
		}
	}
	if best < 0 {
		panic("selectVariable called with all variables assigned")
	}
	return best
}

func (state *searchState) clone() *searchState {
	child := &searchState{
		variables:   state.variables,
		clauses:     maps.Clone(state.clauses),
		occurrences: make([]map[string]struct{}, len(state.occurrences)),
		trail:       slices.Clone(state.trail),
		propagated:  state.propagated,
		assigned:    slices.Clone(state.assigned),
		value:       slices.Clone(state.value),
	}
	for i, occurrences := range state.occurrences {
		child.occurrences[i] = maps.Clone(occurrences)
	}
	return child
}

func (state *searchState) solution() SATSolution {
	solution := make(SATSolution, 0, state.variables)
	for variable := 0; variable < state.variables; variable++ {
		if state.value[variable] {
			solution = append(solution, int64(variable+1))
		} else {
			solution = append(solution, -int64(variable+1))
		}
	}
	return solution
}

func sortedKeys(set map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(set))
}
