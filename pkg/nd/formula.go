package nd

import (
	"github.com/limaJavier/ndsat/pkg/sat"
	"github.com/pkg/errors"
)

// AssertFormula allocates one fresh Bool per variable of formula and asserts every clause as the disjunction
// of its literals. Variable v of formula is returned at index v-1.
func (m *Machine) AssertFormula(formula sat.SAT) ([]Bool, error) {
	if err := m.with(func() error { return nil }); err != nil {
		return nil, err
	}

	variables := make([]Bool, formula.Variables)
	for i := range variables {
		var err error
		if variables[i], err = m.Fresh(); err != nil {
			return nil, err
		}
	}

	for i, clause := range formula.Clauses {
		literals := make([]Bool, len(clause))
		for j, literal := range clause {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if variable == 0 || uint64(variable) > formula.Variables {
				return nil, errors.Errorf("clause %d: literal %d is out of range 1..%d", i, literal, formula.Variables)
			}

			literals[j] = variables[variable-1]
			if literal < 0 {
				literals[j] = literals[j].Not()
			}
		}

		disjunction, err := m.Any(literals...)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot encode clause %d", i)
		}
		if err := Assert(disjunction); err != nil {
			return nil, errors.Wrapf(err, "cannot assert clause %d", i)
		}
	}

	return variables, nil
}
