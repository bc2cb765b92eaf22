package sat

import "math/rand/v2"

// GenerateSATInstance builds a random instance where every variable enters each clause with probability 1/2.
// Without variables no clause can be built, so the instance is empty.
func GenerateSATInstance(variables uint64, clauses int) SAT {
	if variables == 0 {
		return SAT{}
	}

	satInstance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		satInstance.Clauses[i] = make([]int64, 0, variables)
		for j := range variables {
			if rand.Float32() < 0.5 {
				satInstance.Clauses[i] = append(satInstance.Clauses[i], randomSign()*(1+int64(j)))
			}
		}

		if len(satInstance.Clauses[i]) == 0 {
			satInstance.Clauses[i] = append(satInstance.Clauses[i], randomSign()*(1+rand.Int64N(int64(variables))))
		}
	}

	return satInstance
}

func randomSign() int64 {
	if rand.Float32() < 0.5 {
		return -1
	}
	return 1
}

// Verify checks that satSolution is consistent and satisfies every clause of satInstance
func Verify(satInstance SAT, satSolution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range satInstance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
