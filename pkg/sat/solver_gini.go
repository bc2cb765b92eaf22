package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	g := gini.NewVc(int(sat.Variables), len(sat.Clauses))
	for _, clause := range sat.Clauses {
		normalized, tautology := normalizeClause(clause)
		if tautology {
			continue
		} else if len(normalized) == 0 { // The empty clause can't be satisfied
			return nil, nil
		}
		for _, literal := range normalized {
			g.Add(giniLiteral(literal))
		}
		g.Add(0)
	}

	switch g.Solve() {
	case 1:
	case -1:
		return nil, nil
	default:
		return nil, errors.New("gini was cancelled before reaching a verdict")
	}

	// Variables that appear in no clause are unknown to gini, they stay false
	maxVar := uint64(g.MaxVar())
	solution := make(SATSolution, 0, sat.Variables)
	for variable := uint64(1); variable <= sat.Variables; variable++ {
		if variable <= maxVar && g.Value(z.Var(variable).Pos()) {
			solution = append(solution, int64(variable))
		} else {
			solution = append(solution, -int64(variable))
		}
	}
	return solution, nil
}

func giniLiteral(literal int64) z.Lit {
	if literal < 0 {
		return z.Var(-literal).Pos().Not()
	}
	return z.Var(literal).Pos()
}
