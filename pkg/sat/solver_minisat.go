package sat

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// minisatSolver covers minisat-like solvers that take an input and an output file. The output file holds
// "SAT" or "UNSAT" on its first line and the model on the second.
type minisatSolver struct {
	name string
}

func NewMinisatSolver() SATSolver {
	return &minisatSolver{name: "minisat"}
}

func NewGlucoseSimpSolver() SATSolver {
	return &minisatSolver{name: "glucose-simp"}
}

func (solver *minisatSolver) Solve(sat SAT) (solution SATSolution, err error) {
	err = withTempFiles(sat, 1, func(input string, outputs []string) error {
		_, satisfiable, err := runSolver(solver.name, []string{"-verb=0", input, outputs[0]}, "")
		if err != nil || !satisfiable {
			return err
		}

		output, err := os.ReadFile(outputs[0]) // Read the output file
		if err != nil {
			return errors.Wrap(err, "failed to read output file")
		}
		solution, err = solver.parseSolution(string(output))
		return err
	})
	return solution, err
}

func (solver *minisatSolver) parseSolution(solverOutput string) (SATSolution, error) {
	lines := strings.Split(solverOutput, "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "SAT" {
		lines = lines[1:] // The first line is the header, we only need the second line
	}
	if len(lines) == 0 {
		return nil, errors.Errorf("%v produced an empty model", solver.name)
	}
	return parseLiterals(strings.Fields(lines[0]))
}
