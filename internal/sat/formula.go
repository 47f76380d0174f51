package sat

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Formula is a deduplicating set of clauses: syntactically identical clauses
// collapse to one entry regardless of literal order, and a duplicate literal
// within a clause is dropped. Clauses are keyed by their canonicalized sorted
// literal list.
type Formula struct {
	clauses map[string][]Lit
}

func NewFormula() *Formula {
	return &Formula{clauses: make(map[string][]Lit)}
}

// Add inserts a clause given as signed one-based literals. A clause
// containing a literal and its complement is a tautology and is discarded.
func (f *Formula) Add(clause ...int64) {
	if len(clause) == 0 {
		panic("cannot add an empty clause to a formula")
	}
	literals := make([]Lit, 0, len(clause))
	for _, literal := range clause {
		literals = append(literals, LitFromDimacs(literal))
	}
	literals = canonicalize(literals)
	if literals == nil {
		return
	}
	f.clauses[clauseKey(literals)] = literals
}

// AddAll unions another formula into this one.
func (f *Formula) AddAll(other *Formula) {
	maps.Copy(f.clauses, other.clauses)
}

func (f *Formula) Len() int {
	return len(f.clauses)
}

// Instance freezes the formula into a SAT instance over the given number of
// variables. Clauses come out in a deterministic order: shortest first, then
// by literal magnitudes, so repeated encodings serialize identically.
func (f *Formula) Instance(variables uint64) SAT {
	instance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, 0, len(f.clauses)),
	}
	for _, literals := range f.clauses {
		clause := make([]int64, 0, len(literals))
		for _, literal := range literals {
			clause = append(clause, literal.Dimacs())
		}
		instance.Clauses = append(instance.Clauses, clause)
	}
	slices.SortFunc(instance.Clauses, compareClauses)
	return instance
}

func compareClauses(a, b []int64) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	for i := range a {
		magnitudeA, magnitudeB := a[i], b[i]
		if magnitudeA < 0 {
			magnitudeA = -magnitudeA
		}
		if magnitudeB < 0 {
			magnitudeB = -magnitudeB
		}
		if magnitudeA != magnitudeB {
			return int(magnitudeA - magnitudeB)
		}
	}
	for i := range a {
		if a[i] != b[i] {
			return int(a[i] - b[i])
		}
	}
	return 0
}

// canonicalize sorts the literals, drops duplicates and returns nil for
// tautological clauses. Sorting magnitude-sign literals as plain integers
// orders them by variable, positive polarity first.
func canonicalize(literals []Lit) []Lit {
	slices.Sort(literals)
	literals = slices.Compact(literals)
	for i := 1; i < len(literals); i++ {
		if literals[i-1] == literals[i].Not() {
			return nil
		}
	}
	return literals
}

func clauseKey(literals []Lit) string {
	var builder strings.Builder
	for i, literal := range literals {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(strconv.Itoa(int(literal)))
	}
	return builder.String()
}

func (f *Formula) String() string {
	return fmt.Sprintf("formula with %d clauses", len(f.clauses))
}
