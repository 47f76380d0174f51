package main

import (
	"testing"

	"github.com/limaJavier/sudokusat/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCountGivens(t *testing.T) {
	assert.Equal(t, 0, countGivens(model.Grid{}))

	var puzzle model.Grid
	puzzle[0][0] = 4
	puzzle[3][5] = 9
	puzzle[8][8] = 1
	assert.Equal(t, 3, countGivens(puzzle))
}

func TestToRecord(t *testing.T) {
	result := BenchmarkResult{
		Solver:   gini,
		Test:     TestMetadata{Name: "examples/1.json", Givens: 32, Clauses: 10481},
		Duration: 47,
		Result:   solved,
	}

	record := toRecord(result)

	assert.Equal(t, []string{"gini", "examples/1.json", "32", "10481", "47", "solved"}, record)
}
