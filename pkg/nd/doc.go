// Package nd provides nondeterministic booleans: values whose truth is not fixed by the program but
// constrained by the relations asserted between them.
//
// Every connective (And, Or, Xor, Equal) is Tseitin-encoded into the formula of the Machine owning its
// operands: a fresh variable stands for the result and clauses force it to equal the connective applied to
// the operands. Once the interesting relations are asserted, SolveWith hands the formula to a sat.SATSolver
// and Value reads one consistent assignment back.
//
//	m := nd.NewMachine()
//	b0, _ := m.Fresh()
//	b1, _ := m.Fresh()
//	both, _ := b0.And(b1)
//	nd.Assert(both)
//	if ok, _ := m.SolveWith(sat.NewGiniSolver()); ok {
//		v, _ := b0.Value() // true
//	}
//
// A Machine is not meant to be shared between goroutines that mutate it concurrently; each worker should
// own its own Machine.
package nd
