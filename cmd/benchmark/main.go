package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/limaJavier/sudokusat/internal/model"
	"github.com/limaJavier/sudokusat/internal/sat"
	"github.com/samber/lo"
)

const examplesDirectory = "../../examples/"

type SolverType int

const (
	dpll SolverType = iota
	gini
	kissat
)

type ResultType int

const (
	solved ResultType = iota
	unsolvable
	notUnique
	failed
)

var (
	solverTypes = map[SolverType]string{
		dpll:   "dpll",
		gini:   "gini",
		kissat: "kissat",
	}
	checkerSolvers = map[SolverType]func() sat.SATSolver{
		dpll:   sat.NewDPLLSolver,
		gini:   sat.NewGiniSolver,
		kissat: sat.NewKissatSolver,
	}
	resultTypes = map[ResultType]string{
		solved:     "solved",
		unsolvable: "unsolvable",
		notUnique:  "not-unique",
		failed:     "failed",
	}
)

type TestMetadata struct {
	Name    string
	Givens  int
	Clauses int
}

type BenchmarkResult struct {
	Solver   SolverType
	Test     TestMetadata
	Duration int64
	Result   ResultType
}

func main() {
	tests := getTests()
	solvers := getSolvers()
	results := make([]BenchmarkResult, 0, len(tests)*len(solvers))

	for _, test := range tests {
		for _, solver := range solvers {
			fmt.Printf("Benchmarking test \"%v\" with solver \"%v\"\n", test.Name, solverTypes[solver])

			duration, result := measure(solver, test.Name)

			results = append(results, BenchmarkResult{
				Solver:   solver,
				Test:     test,
				Duration: duration,
				Result:   result,
			})
		}
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	testFiles, err := os.ReadDir(examplesDirectory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	encoder := model.NewEncoder()
	tests := make([]TestMetadata, 0, len(testFiles))
	for _, file := range testFiles {
		if !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		filename := examplesDirectory + file.Name()

		puzzle, err := loadPuzzle(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
		instance, err := encoder.Encode(puzzle)
		if err != nil {
			log.Fatalf("cannot encode puzzle: %v", err)
		}

		tests = append(tests, TestMetadata{
			Name:    filename,
			Givens:  countGivens(puzzle),
			Clauses: len(instance.Clauses),
		})
	}

	return tests
}

func getSolvers() []SolverType {
	solvers := []SolverType{dpll, gini}
	// The kissat backend shells out to an external binary
	if _, err := exec.LookPath("kissat"); err == nil {
		solvers = append(solvers, kissat)
	}
	return solvers
}

func measure(solver SolverType, testFile string) (duration int64, result ResultType) {
	puzzle, err := loadPuzzle(testFile)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	checker := model.NewChecker(checkerSolvers[solver]())

	start := time.Now()
	_, err = checker.Solve(puzzle)
	duration = time.Since(start).Milliseconds()

	switch {
	case err == nil:
		result = solved
	case errors.Is(err, model.ErrUnsolvable):
		result = unsolvable
	case errors.Is(err, model.ErrNotUnique):
		result = notUnique
	default:
		result = failed
	}
	return duration, result
}

func loadPuzzle(filename string) (model.Grid, error) {
	input, err := model.InputFromJson(filename)
	if err != nil {
		return model.Grid{}, err
	}
	return input.PuzzleGrid()
}

func countGivens(puzzle model.Grid) int {
	return lo.SumBy(puzzle[:], func(row [model.GridSize]int) int {
		return lo.CountBy(row[:], func(entry int) bool { return entry != 0 })
	})
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Test", "Givens", "Clauses", "Duration(ms)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		solverTypes[result.Solver],
		result.Test.Name,
		fmt.Sprintf("%d", result.Test.Givens),
		fmt.Sprintf("%d", result.Test.Clauses),
		fmt.Sprintf("%d", result.Duration),
		resultTypes[result.Result],
	}
}
