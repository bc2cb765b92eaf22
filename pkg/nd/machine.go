package nd

import (
	"sync"

	"github.com/limaJavier/ndsat/pkg/sat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger().WithField("component", "nd")

// SetLogger replaces the logger used by the package
func SetLogger(l logrus.FieldLogger) {
	logger = l
}

// Machine owns a growing CNF formula and the last assignment found for it. The assignment is dropped as
// soon as the formula changes, so Value never reads a model of an outdated formula.
type Machine struct {
	mu         sync.Mutex
	instance   *sat.SAT
	assignment *sat.Assignment // nil while absent
	generation uint64
}

func NewMachine() *Machine {
	return &Machine{
		instance: &sat.SAT{},
	}
}

// Reset discards every variable, clause and the assignment. Handles created before the reset are
// rejected afterwards with ErrStaleHandle.
func (m *Machine) Reset() error {
	return m.with(func() error {
		logger.WithFields(logrus.Fields{
			"generation": m.generation,
			"variables":  m.instance.Variables,
			"clauses":    len(m.instance.Clauses),
		}).Debug("resetting machine")

		m.instance = &sat.SAT{}
		m.assignment = nil
		m.generation++
		return nil
	})
}

// with grants op exclusive access to the machine
func (m *Machine) with(op func() error) error {
	if m == nil {
		return ErrUninitializedMachine
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.instance == nil {
		return ErrUninitializedMachine
	}
	return op()
}

// mutate runs op with exclusive access and drops the assignment once op has changed the formula
func (m *Machine) mutate(op func(instance *sat.SAT) error) error {
	return m.with(func() error {
		variables, clauses := m.instance.Variables, len(m.instance.Clauses)
		err := op(m.instance)
		if m.instance.Variables != variables || len(m.instance.Clauses) != clauses {
			m.assignment = nil
		}
		return err
	})
}

// owns checks that every handle was created by m since its last reset. Must be called from within with.
func (m *Machine) owns(bs ...Bool) error {
	for _, b := range bs {
		switch {
		case b.machine == nil:
			return ErrUninitializedMachine
		case b.machine != m:
			return ErrForeignHandle
		case b.generation != m.generation:
			return ErrStaleHandle
		}
	}
	return nil
}

// SolveWith hands a snapshot of the formula to backend and keeps the assignment it returns. It reports
// false when the formula is unsatisfiable, when the backend fails, and when the backend returns an
// assignment that does not satisfy the formula; the three cases are not told apart here.
func (m *Machine) SolveWith(backend sat.SATSolver) (bool, error) {
	solved := false
	err := m.with(func() error {
		m.assignment = nil
		snapshot := m.instance.Copy()
		log := logger.WithFields(logrus.Fields{
			"variables": snapshot.Variables,
			"clauses":   len(snapshot.Clauses),
		})

		if backend == nil {
			log.Warn("no solving backend given")
			return nil
		}

		solution, err := backend.Solve(snapshot)
		if err != nil {
			log.WithError(err).Warn("solving backend failed")
			return nil
		} else if solution == nil {
			log.Debug("formula is unsatisfiable")
			return nil
		}

		assignment := sat.NewAssignment(snapshot.Variables, solution)
		if !assignment.Satisfies(*m.instance) {
			log.Warn("solving backend returned an assignment that does not satisfy the formula")
			return nil
		}

		log.Debug("formula is satisfiable")
		m.assignment = &assignment
		solved = true
		return nil
	})
	return solved, err
}

// Solved reports whether an assignment for the current formula is available
func (m *Machine) Solved() (solved bool, err error) {
	err = m.with(func() error {
		solved = m.assignment != nil
		return nil
	})
	return solved, err
}

func (m *Machine) Stats() (variables uint64, clauses uint64, err error) {
	err = m.with(func() error {
		variables, clauses = m.instance.Variables, uint64(len(m.instance.Clauses))
		return nil
	})
	return variables, clauses, err
}

// Formula returns a copy of the formula built so far
func (m *Machine) Formula() (formula sat.SAT, err error) {
	err = m.with(func() error {
		formula = m.instance.Copy()
		return nil
	})
	return formula, err
}

// True returns a fresh variable forced to true. Two calls yield two distinct variables.
func (m *Machine) True() (Bool, error) {
	return m.constant(true)
}

// False returns a fresh variable forced to false
func (m *Machine) False() (Bool, error) {
	return m.constant(false)
}

func (m *Machine) constant(value bool) (b Bool, err error) {
	err = m.mutate(func(instance *sat.SAT) error {
		b = m.handle(instance.FreshVariable())
		unit := b
		if !value {
			unit = b.Not()
		}
		return instance.AddClause(unit.literal)
	})
	return b, err
}

// Fresh returns an unconstrained boolean
func (m *Machine) Fresh() (b Bool, err error) {
	err = m.mutate(func(instance *sat.SAT) error {
		b = m.handle(instance.FreshVariable())
		return nil
	})
	return b, err
}

// AssertAny requires at least one of bs to be true. With no arguments it asserts the empty clause, making
// the formula unsatisfiable.
func (m *Machine) AssertAny(bs ...Bool) error {
	return m.mutate(func(instance *sat.SAT) error {
		if err := m.owns(bs...); err != nil {
			return err
		}
		clause := make([]int64, len(bs))
		for i, b := range bs {
			clause[i] = b.literal
		}
		return errors.Wrap(instance.AddClause(clause...), "cannot assert clause")
	})
}

// All folds bs with And. It returns a fresh true constant when bs is empty.
func (m *Machine) All(bs ...Bool) (Bool, error) {
	return m.fold(Bool.And, m.True, bs)
}

// Any folds bs with Or. It returns a fresh false constant when bs is empty.
func (m *Machine) Any(bs ...Bool) (Bool, error) {
	return m.fold(Bool.Or, m.False, bs)
}

func (m *Machine) fold(connective func(Bool, Bool) (Bool, error), empty func() (Bool, error), bs []Bool) (Bool, error) {
	if len(bs) == 0 {
		return empty()
	}
	result := bs[0]
	if err := m.with(func() error { return m.owns(result) }); err != nil {
		return Bool{}, err
	}
	for _, b := range bs[1:] {
		var err error
		if result, err = connective(result, b); err != nil {
			return Bool{}, err
		}
	}
	return result, nil
}

func (m *Machine) handle(literal int64) Bool {
	return Bool{
		machine:    m,
		generation: m.generation,
		literal:    literal,
	}
}
