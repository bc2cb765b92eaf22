package sat

// fileSolver covers solvers that read DIMACS from a file argument and print SAT-competition output
type fileSolver struct {
	name string
}

func NewSlimeSolver() SATSolver {
	return &fileSolver{name: "slime"}
}

func NewOrtoolsatSolver() SATSolver {
	return &fileSolver{name: "ortoolsat"}
}

func (solver *fileSolver) Solve(sat SAT) (solution SATSolution, err error) {
	err = withTempFiles(sat, 0, func(input string, _ []string) error {
		out, satisfiable, err := runSolver(solver.name, []string{input}, "")
		if err != nil || !satisfiable {
			return err
		}
		solution, err = ParseSolution(out)
		return err
	})
	return solution, err
}
