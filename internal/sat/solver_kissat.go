package sat

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const kissatPath = "kissat"

// NewKissatSolver returns a solver that shells out to a kissat binary,
// feeding it the instance in DIMACS form over standard input.
func NewKissatSolver() SATSolver {
	return &kissatSolver{}
}

type kissatSolver struct{}

func (solver *kissatSolver) Solve(instance SAT) (SATSolution, error) {
	binary, err := exec.LookPath(kissatPath)
	if err != nil {
		return nil, fmt.Errorf("kissat binary not found: %v", err)
	}

	cmd := exec.Command(binary, "-q", "--relaxed")
	cmd.Stdin = strings.NewReader(instance.ToDIMACS())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err = cmd.Run()
	// Exit-code 10 stands for satisfiable and exit-code 20 for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during kissat execution: %v : %v", err.Error(), stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return ParseSolution(stdOut.String()), nil
}

// ParseSolution extracts the assignment from a SAT competition style output:
// the literals on the "v" lines, up to the terminating 0.
func ParseSolution(solverOutput string) SATSolution {
	valueLines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return strings.HasPrefix(line, "v")
	})
	if len(valueLines) == 0 {
		return nil
	}

	var solution SATSolution
	for _, line := range valueLines {
		for _, token := range strings.Fields(line[1:]) {
			value, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			if value != 0 {
				solution = append(solution, value)
			}
		}
	}
	return solution
}
