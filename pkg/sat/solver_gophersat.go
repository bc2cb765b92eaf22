package sat

import (
	gophersat "github.com/crillab/gophersat/solver"
	"github.com/pkg/errors"
)

type gophersatSolver struct{}

func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (solver *gophersatSolver) Solve(sat SAT) (solution SATSolution, err error) {
	// gophersat panics on malformed input instead of returning errors
	defer func() {
		if r := recover(); r != nil {
			solution, err = nil, errors.Errorf("gophersat failed: %v", r)
		}
	}()

	cnf := make([][]int, 0, len(sat.Clauses))
	for _, clause := range sat.Clauses {
		normalized, tautology := normalizeClause(clause)
		if tautology {
			continue
		}
		line := make([]int, len(normalized))
		for i, literal := range normalized {
			line[i] = int(literal)
		}
		cnf = append(cnf, line)
	}

	if len(cnf) == 0 { // Trivially satisfiable
		return make(SATSolution, 0), nil
	}

	s := gophersat.New(gophersat.ParseSlice(cnf))
	if status := s.Solve(); status == gophersat.Unsat {
		return nil, nil
	} else if status != gophersat.Sat {
		return nil, errors.Errorf("gophersat returned status %v", status)
	}

	// The model only covers the variables present in the clauses
	model := s.Model()
	solution = make(SATSolution, 0, len(model))
	for i, value := range model {
		if value {
			solution = append(solution, int64(i+1))
		} else {
			solution = append(solution, -int64(i+1))
		}
	}
	return solution, nil
}
