package model

// Example puzzles with exactly one solution, and attempts at them filled in
// by hand (some entries wrong).

var examplePuzzles = []Grid{
	{
		{0, 0, 0, 0, 6, 0, 0, 0, 0},
		{0, 0, 0, 7, 8, 1, 4, 0, 2},
		{0, 0, 8, 5, 9, 0, 3, 0, 6},
		{9, 3, 0, 0, 0, 0, 0, 2, 0},
		{0, 0, 6, 0, 5, 0, 0, 0, 0},
		{7, 8, 0, 0, 0, 2, 0, 9, 0},
		{0, 0, 2, 6, 7, 0, 5, 0, 1},
		{0, 0, 0, 3, 1, 5, 2, 0, 9},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{7, 1, 0, 0, 3, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 8, 0, 1},
		{0, 0, 0, 9, 4, 0, 6, 0, 0},
		{5, 0, 7, 6, 0, 0, 2, 0, 0},
		{0, 0, 0, 0, 8, 0, 0, 0, 0},
		{4, 0, 6, 3, 0, 0, 9, 0, 0},
		{0, 0, 0, 4, 2, 0, 7, 0, 0},
		{0, 0, 0, 0, 0, 0, 4, 0, 8},
		{3, 6, 0, 0, 9, 0, 0, 0, 0},
	},
	{
		{4, 0, 8, 0, 0, 5, 7, 0, 0},
		{0, 0, 0, 0, 4, 0, 0, 5, 0},
		{1, 0, 0, 0, 8, 0, 0, 0, 4},
		{0, 9, 0, 6, 5, 0, 0, 0, 7},
		{0, 0, 3, 0, 0, 7, 6, 8, 0},
		{0, 0, 0, 0, 0, 4, 0, 0, 0},
		{0, 0, 0, 0, 9, 0, 0, 0, 5},
		{0, 0, 0, 0, 0, 1, 0, 0, 0},
		{7, 0, 0, 0, 0, 0, 3, 0, 2},
	},
}

var exampleAttempts = []Grid{
	{
		{0, 0, 0, 2, 6, 3, 9, 0, 0},
		{0, 0, 0, 7, 8, 1, 4, 5, 2},
		{0, 0, 8, 5, 9, 4, 3, 0, 6},
		{9, 3, 1, 8, 0, 6, 7, 2, 5},
		{0, 0, 6, 9, 5, 7, 1, 0, 0},
		{7, 8, 5, 1, 3, 2, 6, 9, 4},
		{0, 9, 2, 6, 7, 8, 5, 0, 1},
		{8, 6, 0, 3, 1, 5, 2, 0, 9},
		{0, 0, 0, 4, 2, 9, 8, 6, 0},
	},
	{
		{7, 1, 0, 8, 3, 6, 5, 4, 0},
		{6, 4, 0, 0, 2, 0, 8, 0, 1},
		{0, 0, 0, 9, 4, 1, 6, 7, 0},
		{5, 3, 7, 6, 1, 9, 2, 8, 4},
		{0, 0, 0, 7, 8, 4, 3, 0, 0},
		{4, 8, 6, 3, 5, 2, 9, 1, 7},
		{0, 0, 0, 4, 2, 8, 7, 0, 0},
		{0, 7, 0, 1, 6, 3, 4, 0, 8},
		{3, 6, 4, 5, 9, 7, 1, 2, 0},
	},
	{
		{4, 6, 8, 2, 1, 5, 7, 9, 3},
		{9, 2, 7, 3, 4, 6, 1, 5, 8},
		{1, 3, 5, 7, 8, 9, 2, 6, 4},
		{2, 9, 1, 6, 5, 8, 4, 3, 7},
		{5, 4, 3, 9, 2, 7, 6, 8, 1},
		{8, 7, 6, 1, 3, 4, 5, 2, 9},
		{6, 1, 4, 8, 9, 2, 8, 7, 5},
		{3, 8, 2, 5, 7, 1, 9, 4, 6},
		{7, 5, 9, 4, 6, 0, 3, 1, 2},
	},
}

// solvedPattern returns a complete valid grid: rows are cyclic shifts chosen
// so that columns and boxes also hold every digit.
func solvedPattern() Grid {
	var grid Grid
	for y := range GridSize {
		for x := range GridSize {
			grid[y][x] = (y*3+y/3+x)%GridSize + 1
		}
	}
	return grid
}

func countGivens(grid Grid) int {
	count := 0
	for y := range GridSize {
		for x := range GridSize {
			if grid[y][x] != 0 {
				count++
			}
		}
	}
	return count
}

// validSolution checks that the grid is complete and every row, column and
// box holds each digit exactly once.
func validSolution(grid Grid) bool {
	if !grid.Complete() {
		return false
	}
	seen := func(cells [][2]int) bool {
		digits := make(map[int]bool)
		for _, cell := range cells {
			digit := grid[cell[1]][cell[0]]
			if digits[digit] {
				return false
			}
			digits[digit] = true
		}
		return true
	}
	for n := range GridSize {
		var row, column [][2]int
		for i := range GridSize {
			row = append(row, [2]int{i, n})
			column = append(column, [2]int{n, i})
		}
		if !seen(row) || !seen(column) {
			return false
		}
	}
	for xOffset := 0; xOffset < GridSize; xOffset += 3 {
		for yOffset := 0; yOffset < GridSize; yOffset += 3 {
			var box [][2]int
			for x := range 3 {
				for y := range 3 {
					box = append(box, [2]int{x + xOffset, y + yOffset})
				}
			}
			if !seen(box) {
				return false
			}
		}
	}
	return true
}
