package model

const (
	// GridSize is the side length of the puzzle grid.
	GridSize = 9
	// Variables is the number of boolean variables in the encoding: one per
	// (cell, digit) pair.
	Variables = GridSize * GridSize * GridSize
)

// Indexer interface is designed to give a unique SAT variable identifier to a
// (column, row, digit) combination and vice versa
type Indexer interface {
	// Returns the variable identifier in [1, 729] for digit n at column x, row y
	Index(x, y, n int) int64
	// Returns the (column, row, digit) combination a variable identifier stands for
	Attributes(identifier int64) (x int, y int, n int)
}

func NewIndexer() Indexer {
	return &cellIndexer{}
}
