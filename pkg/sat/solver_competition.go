package sat

// competitionSolver covers solvers that read DIMACS from stdin and print SAT-competition output
type competitionSolver struct {
	name string
	args []string
}

func NewKissatSolver() SATSolver {
	return &competitionSolver{name: "kissat", args: []string{"-q", "--relaxed"}}
}

func NewCadicalSolver() SATSolver {
	return &competitionSolver{name: "cadical", args: []string{"-q"}}
}

func NewCryptominisatSolver() SATSolver {
	return &competitionSolver{name: "cryptominisat", args: []string{"--verb", "0"}}
}

func (solver *competitionSolver) Solve(sat SAT) (SATSolution, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	out, satisfiable, err := runSolver(solver.name, solver.args, dimacs)
	if err != nil || !satisfiable {
		return nil, err
	}
	return ParseSolution(out)
}
