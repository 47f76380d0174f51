package model

import (
	"fmt"
	"sync"

	"github.com/limaJavier/sudokusat/internal/sat"
	"github.com/samber/lo"
)

// Encoder translates a puzzle grid into a SAT instance over the 729
// (cell, digit) variables.
type Encoder interface {
	Encode(puzzle Grid) (sat.SAT, error)
}

func NewEncoder() Encoder {
	return &cnfEncoder{indexer: NewIndexer()}
}

type cnfEncoder struct {
	indexer Indexer
}

// Encode unions the shared base formula with one unit clause per given digit
// and freezes the result into an instance.
func (encoder *cnfEncoder) Encode(puzzle Grid) (sat.SAT, error) {
	if err := puzzle.Validate(); err != nil {
		return sat.SAT{}, err
	}

	formula := sat.NewFormula()
	formula.AddAll(baseFormula())

	for y := range GridSize {
		for x := range GridSize {
			if digit := puzzle[y][x]; digit > 0 {
				formula.Add(encoder.indexer.Index(x, y, digit))
			}
		}
	}

	return formula.Instance(Variables), nil
}

// atMostOne forbids two digits from sharing the cell at (x, y): one negated
// pair clause for each unordered digit pair, 36 clauses in total.
func (encoder *cnfEncoder) atMostOne(x, y int) *sat.Formula {
	clauses := sat.NewFormula()
	for first := 1; first <= GridSize; first++ {
		for second := first + 1; second <= GridSize; second++ {
			clauses.Add(
				-encoder.indexer.Index(x, y, first),
				-encoder.indexer.Index(x, y, second),
			)
		}
	}
	return clauses
}

// exactlyOne encodes that each digit appears exactly once among the given 9
// cells (a row, a column or a box): per digit, one 9-literal at-least-one
// clause plus a negated pair clause for each unordered cell pair. The pair
// clauses are logically redundant but hand the solver pre-derived facts, so
// 9 + 9*36 = 333 clauses come out per group.
func (encoder *cnfEncoder) exactlyOne(group [][2]int) *sat.Formula {
	if len(group) != GridSize {
		panic(fmt.Sprintf("group must contain %v cells in exactlyOne call: %v", GridSize, len(group)))
	}
	if len(lo.Uniq(group)) != GridSize {
		panic("group contains duplicate cells in exactlyOne call")
	}

	clauses := sat.NewFormula()
	for digit := 1; digit <= GridSize; digit++ {
		atLeast := lo.Map(group, func(cell [2]int, _ int) int64 {
			return encoder.indexer.Index(cell[0], cell[1], digit)
		})
		clauses.Add(atLeast...)

		for j := range group {
			for k := j + 1; k < len(group); k++ {
				clauses.Add(
					-encoder.indexer.Index(group[j][0], group[j][1], digit),
					-encoder.indexer.Index(group[k][0], group[k][1], digit),
				)
			}
		}
	}
	return clauses
}

// base builds the puzzle-independent clause set: exactly-one constraints for
// the 9 rows, 9 columns and 9 boxes, plus at-most-one constraints for every
// cell. Clauses generated by more than one group collapse via set semantics.
func (encoder *cnfEncoder) base() *sat.Formula {
	clauses := sat.NewFormula()

	for n := range GridSize {
		column := lo.Map(lo.Range(GridSize), func(i, _ int) [2]int { return [2]int{n, i} })
		row := lo.Map(lo.Range(GridSize), func(i, _ int) [2]int { return [2]int{i, n} })
		clauses.AddAll(encoder.exactlyOne(column))
		clauses.AddAll(encoder.exactlyOne(row))
	}

	for xOffset := 0; xOffset < GridSize; xOffset += 3 {
		for yOffset := 0; yOffset < GridSize; yOffset += 3 {
			box := make([][2]int, 0, GridSize)
			for x := range 3 {
				for y := range 3 {
					box = append(box, [2]int{x + xOffset, y + yOffset})
				}
			}
			clauses.AddAll(encoder.exactlyOne(box))
		}
	}

	for x := range GridSize {
		for y := range GridSize {
			clauses.AddAll(encoder.atMostOne(x, y))
		}
	}

	return clauses
}

var (
	baseOnce    sync.Once
	baseClauses *sat.Formula
)

// baseFormula returns the shared base clause set. It only depends on the grid
// topology, so it is built once and treated as read-only afterwards.
func baseFormula() *sat.Formula {
	baseOnce.Do(func() {
		baseClauses = (&cnfEncoder{indexer: NewIndexer()}).base()
	})
	return baseClauses
}
