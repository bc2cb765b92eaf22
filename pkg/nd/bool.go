package nd

import (
	"fmt"

	"github.com/limaJavier/ndsat/pkg/sat"
	"github.com/pkg/errors"
)

// Bool is a handle on one literal of a Machine's formula. It is a plain value: copying it copies the
// handle, not the boolean it stands for.
type Bool struct {
	machine    *Machine
	generation uint64
	literal    int64
}

// Literal returns the DIMACS literal behind a
func (a Bool) Literal() int64 {
	return a.literal
}

func (a Bool) String() string {
	return fmt.Sprintf("nd.Bool(%d)", a.literal)
}

// Not flips the polarity of a; it allocates nothing and asserts nothing
func (a Bool) Not() Bool {
	a.literal = -a.literal
	return a
}

// And returns l with l <=> (a AND b)
func (a Bool) And(b Bool) (Bool, error) {
	return a.gate(b, func(l int64) [][]int64 {
		return [][]int64{
			{-a.literal, -b.literal, l},
			{a.literal, -l},
			{b.literal, -l},
		}
	})
}

// Or returns l with l <=> (a OR b)
func (a Bool) Or(b Bool) (Bool, error) {
	return a.gate(b, func(l int64) [][]int64 {
		return [][]int64{
			{a.literal, b.literal, -l},
			{-a.literal, l},
			{-b.literal, l},
		}
	})
}

// Xor is built as (a OR b) AND NOT (a AND b), which costs two auxiliary variables more than a
// dedicated gate would.
func (a Bool) Xor(b Bool) (Bool, error) {
	either, err := a.Or(b)
	if err != nil {
		return Bool{}, err
	}
	both, err := a.And(b)
	if err != nil {
		return Bool{}, err
	}
	return either.And(both.Not())
}

// Value reads a in the machine's current assignment
func (a Bool) Value() (value bool, err error) {
	m := a.machine
	err = m.with(func() error {
		if err := m.owns(a); err != nil {
			return err
		}
		if m.assignment == nil {
			return ErrNoSolutionAvailable
		}
		value = m.assignment.Get(a.literal)
		return nil
	})
	return value, err
}

// gate allocates the output variable l and asserts clauses(l)
func (a Bool) gate(b Bool, clauses func(l int64) [][]int64) (l Bool, err error) {
	m := a.machine
	err = m.mutate(func(instance *sat.SAT) error {
		if err := m.owns(a, b); err != nil {
			return err
		}
		l = m.handle(instance.FreshVariable())
		for _, clause := range clauses(l.literal) {
			if err := instance.AddClause(clause...); err != nil {
				return errors.Wrapf(err, "cannot encode gate on %v and %v", a, b)
			}
		}
		return nil
	})
	return l, err
}
