package model

import (
	"os"
	"path"
	"testing"

	. "github.com/onsi/gomega"
)

const inputJson = `{
	"puzzle": [
		[0, 0, 0, 0, 6, 0, 0, 0, 0],
		[0, 0, 0, 7, 8, 1, 4, 0, 2],
		[0, 0, 8, 5, 9, 0, 3, 0, 6],
		[9, 3, 0, 0, 0, 0, 0, 2, 0],
		[0, 0, 6, 0, 5, 0, 0, 0, 0],
		[7, 8, 0, 0, 0, 2, 0, 9, 0],
		[0, 0, 2, 6, 7, 0, 5, 0, 1],
		[0, 0, 0, 3, 1, 5, 2, 0, 9],
		[0, 0, 0, 0, 0, 0, 0, 0, 0]
	],
	"attempt": [
		[0, 0, 0, 2, 6, 3, 9, 0, 0],
		[0, 0, 0, 7, 8, 1, 4, 5, 2],
		[0, 0, 8, 5, 9, 4, 3, 0, 6],
		[9, 3, 1, 8, 0, 6, 7, 2, 5],
		[0, 0, 6, 9, 5, 7, 1, 0, 0],
		[7, 8, 5, 1, 3, 2, 6, 9, 4],
		[0, 9, 2, 6, 7, 8, 5, 0, 1],
		[8, 6, 0, 3, 1, 5, 2, 0, 9],
		[0, 0, 0, 4, 2, 9, 8, 6, 0]
	]
}`

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	file := path.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(file, []byte(contents), 0644); err != nil {
		t.Fatalf("cannot write input file: %v", err)
	}
	return file
}

func TestInputFromJson(t *testing.T) {
	g := NewWithT(t)

	input, err := InputFromJson(writeInput(t, inputJson))
	g.Expect(err).NotTo(HaveOccurred())

	puzzle, err := input.PuzzleGrid()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(puzzle).To(Equal(examplePuzzles[0]))

	attempt, provided, err := input.AttemptGrid()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(provided).To(BeTrue())
	g.Expect(attempt).To(Equal(exampleAttempts[0]))
}

func TestInputWithoutAttempt(t *testing.T) {
	g := NewWithT(t)

	input, err := InputFromJson(writeInput(t, `{"puzzle": [[1]]}`))
	g.Expect(err).NotTo(HaveOccurred())

	_, provided, err := input.AttemptGrid()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(provided).To(BeFalse())

	// The 9x9 shape contract is enforced when the grid is materialized
	_, err = input.PuzzleGrid()
	g.Expect(err).To(HaveOccurred())
}

func TestInputRejectsMalformedShapes(t *testing.T) {
	g := NewWithT(t)

	input, err := InputFromJson(writeInput(t, `{
		"puzzle": [[1, 2, 3], [4, 5, 6]]
	}`))
	g.Expect(err).NotTo(HaveOccurred())

	_, err = input.PuzzleGrid()
	g.Expect(err).To(HaveOccurred())
}

func TestInputRejectsMissingFile(t *testing.T) {
	g := NewWithT(t)

	_, err := InputFromJson(path.Join(t.TempDir(), "absent.json"))
	g.Expect(err).To(HaveOccurred())
}
