package model

import "fmt"

// Grid is a 9x9 sudoku grid in row-major order: Grid[y][x] is the digit at
// column x, row y. Zero denotes an empty cell.
type Grid [GridSize][GridSize]int

// Validate checks the value-range contract: every entry must lie in [0, 9].
func (grid Grid) Validate() error {
	for y := range GridSize {
		for x := range GridSize {
			if grid[y][x] < 0 || grid[y][x] > GridSize {
				return fmt.Errorf("grid entry out of range [0,9] at column %v, row %v: %v", x, y, grid[y][x])
			}
		}
	}
	return nil
}

// Complete returns true if no cell is empty.
func (grid Grid) Complete() bool {
	for y := range GridSize {
		for x := range GridSize {
			if grid[y][x] == 0 {
				return false
			}
		}
	}
	return true
}

// GridFromRows converts a row-major slice-of-slices into a Grid, enforcing
// the 9x9 shape and value-range contract.
func GridFromRows(rows [][]int) (Grid, error) {
	var grid Grid
	if len(rows) != GridSize {
		return Grid{}, fmt.Errorf("grid must have %v rows, got %v", GridSize, len(rows))
	}
	for y, row := range rows {
		if len(row) != GridSize {
			return Grid{}, fmt.Errorf("grid row %v must have %v entries, got %v", y, GridSize, len(row))
		}
		copy(grid[y][:], row)
	}
	if err := grid.Validate(); err != nil {
		return Grid{}, err
	}
	return grid, nil
}
