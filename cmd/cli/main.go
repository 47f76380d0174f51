package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/sudokusat/internal/model"
	"github.com/limaJavier/sudokusat/internal/render"
	"github.com/limaJavier/sudokusat/internal/sat"
)

var (
	validSolvers = []string{"dpll", "gini", "kissat"}
	solvers      = map[string]func() sat.SATSolver{
		"dpll":   sat.NewDPLLSolver,
		"gini":   sat.NewGiniSolver,
		"kissat": sat.NewKissatSolver,
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "dpll", "SAT-Solver to use. Allowed values are: \"dpll\", \"gini\" and \"kissat\", where \"dpll\" is the default")
	filePathPtr := flag.String("file", "", "Path to the input file")
	dimacsPtr := flag.Bool("dimacs", false, "Print the puzzle's CNF encoding in DIMACS format instead of solving it")
	revealPtr := flag.Bool("reveal", false, "Print the full solution even when an attempt is present")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract input
	input, err := model.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	puzzle, err := input.PuzzleGrid()
	if err != nil {
		log.Fatalf("invalid puzzle: %v", err)
	}

	if *dimacsPtr {
		instance, err := model.NewEncoder().Encode(puzzle)
		if err != nil {
			log.Fatalf("cannot encode puzzle: %v", err)
		}
		fmt.Print(instance.ToDIMACS())
		return
	}

	attempt, hasAttempt, err := input.AttemptGrid()
	if err != nil {
		log.Fatalf("invalid attempt: %v", err)
	}

	// Initialize engines
	checker := model.NewChecker(solvers[solverStr]())

	// Solve the puzzle when no attempt is given (or a reveal is requested)
	if !hasAttempt || *revealPtr {
		solved, err := checker.Solve(puzzle)
		if err != nil {
			fail(err)
		}
		fmt.Println(render.Sudoku(solved))
	}

	// Grade the attempt against the unique solution
	if hasAttempt {
		verdicts, err := checker.Compare(puzzle, attempt)
		if err != nil {
			fail(err)
		}

		wrong := 0
		for _, verdict := range verdicts {
			if !verdict.Correct {
				wrong++
			}
		}

		fmt.Println(render.Attempt(attempt, verdicts))
		if wrong == 0 {
			fmt.Printf("All %v filled cells are correct\n", len(verdicts))
		} else {
			fmt.Printf("%v of %v filled cells are wrong (marked with *)\n", wrong, len(verdicts))
			os.Exit(1)
		}
	}
}

func fail(err error) {
	if errors.Is(err, model.ErrUnsolvable) {
		log.Fatal("the puzzle has no solution")
	} else if errors.Is(err, model.ErrNotUnique) {
		log.Fatal("the puzzle has more than one solution")
	}
	log.Fatal(err)
}
