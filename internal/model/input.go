package model

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// PuzzleInput is the on-disk input format: the puzzle's given digits and
// optionally the user's attempt, both as row-major 9x9 arrays with 0 marking
// an empty cell.
type PuzzleInput struct {
	Puzzle  [][]int
	Attempt [][]int
}

func InputFromJson(file string) (PuzzleInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return PuzzleInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return PuzzleInput{}, err
	}

	var input PuzzleInput
	mapstructure.Decode(inputJson, &input)

	return input, nil
}

func (input PuzzleInput) PuzzleGrid() (Grid, error) {
	return GridFromRows(input.Puzzle)
}

// AttemptGrid returns the attempt grid and whether one was provided.
func (input PuzzleInput) AttemptGrid() (Grid, bool, error) {
	if input.Attempt == nil {
		return Grid{}, false, nil
	}
	grid, err := GridFromRows(input.Attempt)
	if err != nil {
		return Grid{}, false, err
	}
	return grid, true, nil
}
