package sat

import "github.com/samber/lo"

// Assignment maps every variable of a formula to a truth value. Index 0 is unused.
type Assignment struct {
	values []bool
}

// NewAssignment builds a total assignment over variables out of a solver solution; variables the solution
// does not mention are set to false.
func NewAssignment(variables uint64, solution SATSolution) Assignment {
	values := make([]bool, variables+1)
	for _, literal := range solution {
		if literal > 0 && uint64(literal) <= variables {
			values[literal] = true
		}
	}
	return Assignment{values: values}
}

func (a Assignment) Variables() uint64 {
	if len(a.values) == 0 {
		return 0
	}
	return uint64(len(a.values) - 1)
}

// Get returns the value of literal, honouring its polarity. Literals outside the assignment read as false.
func (a Assignment) Get(literal int64) bool {
	variable := abs(literal)
	if variable == 0 || variable >= uint64(len(a.values)) {
		return literal < 0
	}
	return a.values[variable] == (literal > 0)
}

// Satisfies reports whether every clause of sat holds under a
func (a Assignment) Satisfies(sat SAT) bool {
	if a.Variables() < sat.Variables {
		return false
	}
	return lo.EveryBy(sat.Clauses, func(clause []int64) bool {
		return lo.SomeBy(clause, a.Get)
	})
}

// Solution renders the assignment as signed literals, the way solvers report models
func (a Assignment) Solution() SATSolution {
	solution := make(SATSolution, 0, a.Variables())
	for variable := uint64(1); variable <= a.Variables(); variable++ {
		if a.values[variable] {
			solution = append(solution, int64(variable))
		} else {
			solution = append(solution, -int64(variable))
		}
	}
	return solution
}
