// Package render formats solver output for terminal display. It only
// consumes the checker's results: a solution grid or a list of per-cell
// verdicts.
package render

import (
	"fmt"
	"strings"

	"github.com/limaJavier/sudokusat/internal/model"
)

// Sudoku renders a grid as a text table with box separators. Empty cells show
// as dots.
func Sudoku(grid model.Grid) string {
	var builder strings.Builder
	for y := range model.GridSize {
		if y > 0 && y%3 == 0 {
			builder.WriteString("-------+-------+-------\n")
		}
		builder.WriteString(renderRow(grid, y, nil))
	}
	return builder.String()
}

// Attempt renders the attempt grid with every incorrect cell marked with an
// asterisk.
func Attempt(attempt model.Grid, verdicts []model.CellVerdict) string {
	wrong := make(map[[2]int]bool)
	for _, verdict := range verdicts {
		if !verdict.Correct {
			wrong[[2]int{verdict.X, verdict.Y}] = true
		}
	}

	var builder strings.Builder
	for y := range model.GridSize {
		if y > 0 && y%3 == 0 {
			builder.WriteString("-------+-------+-------\n")
		}
		builder.WriteString(renderRow(attempt, y, wrong))
	}
	return builder.String()
}

func renderRow(grid model.Grid, y int, wrong map[[2]int]bool) string {
	var builder strings.Builder
	for x := range model.GridSize {
		if x > 0 && x%3 == 0 {
			builder.WriteString("| ")
		}
		switch {
		case grid[y][x] == 0:
			builder.WriteString(". ")
		case wrong[[2]int{x, y}]:
			fmt.Fprintf(&builder, "%d*", grid[y][x])
		default:
			fmt.Fprintf(&builder, "%d ", grid[y][x])
		}
	}
	return strings.TrimRight(builder.String(), " ") + "\n"
}
