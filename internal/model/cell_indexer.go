package model

import "fmt"

type cellIndexer struct{}

func (indexer *cellIndexer) Index(x, y, n int) int64 {
	if x < 0 || x >= GridSize || y < 0 || y >= GridSize {
		panic(fmt.Sprintf("coordinates out of range [0,8] in Index call: x=%v, y=%v", x, y))
	}
	if n < 1 || n > GridSize {
		panic(fmt.Sprintf("digit out of range [1,9] in Index call: %v", n))
	}
	return int64(y*GridSize*GridSize + x*GridSize + n)
}

func (indexer *cellIndexer) Attributes(identifier int64) (int, int, int) {
	if identifier < 1 || identifier > Variables {
		panic(fmt.Sprintf("identifier out of range [1,729] in Attributes call: %v", identifier))
	}

	// n is one-based, so shift down before splitting and shift back after
	value := int(identifier - 1)
	n := value%GridSize + 1
	x := (value / GridSize) % GridSize
	y := value / (GridSize * GridSize)

	return x, y, n
}
