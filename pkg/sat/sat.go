package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SATSolution holds the signed literals reported by a solver. A nil solution stands for an unsatisfiable instance.
type SATSolution []int64

// SAT is a CNF formula: variables are numbered 1..Variables and clauses are disjunctions of DIMACS literals.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// FreshVariable allocates the next variable and returns its positive literal
func (s *SAT) FreshVariable() int64 {
	s.Variables++
	return int64(s.Variables)
}

// AddClause appends a copy of clause. Every literal must reference an already allocated variable.
func (s *SAT) AddClause(clause ...int64) error {
	for _, literal := range clause {
		if literal == 0 {
			return errors.New("literal 0 is reserved as clause terminator")
		}
		if abs(literal) > s.Variables {
			return errors.Errorf("literal %d references unallocated variable (variables: %d)", literal, s.Variables)
		}
	}
	s.Clauses = append(s.Clauses, append([]int64(nil), clause...))
	return nil
}

// Copy returns a deep copy, so the result can be handed to a solver while s keeps growing
func (s SAT) Copy() SAT {
	clauses := make([][]int64, len(s.Clauses))
	for i, clause := range s.Clauses {
		clauses[i] = append([]int64(nil), clause...)
	}
	return SAT{
		Variables: s.Variables,
		Clauses:   clauses,
	}
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder) // strings.Builder never fails
	return builder.String()
}

func (s SAT) WriteDIMACS(w io.Writer) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintf(writer, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(writer, "%d ", literal)
		}
		writer.WriteString("0\n")
	}
	return errors.Wrap(writer.Flush(), "cannot write DIMACS")
}

// ParseDIMACS reads a DIMACS-CNF formula. Clauses may span several lines and comments ("c ...") are ignored.
func ParseDIMACS(r io.Reader) (SAT, error) {
	var sat SAT
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	headerSeen := false
	declaredClauses := -1
	clause := []int64{}
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		// Skip comments and empty lines
		if text == "" || strings.HasPrefix(text, "c") || strings.HasPrefix(text, "%") {
			continue
		}
		// Problem line
		if strings.HasPrefix(text, "p") {
			parts := strings.Fields(text)
			if len(parts) != 4 || parts[1] != "cnf" {
				return SAT{}, errors.Errorf("line %d: invalid problem line: %s", line, text)
			}
			variables, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, errors.Wrapf(err, "line %d: invalid variable count", line)
			}
			clauses, err := strconv.Atoi(parts[3])
			if err != nil {
				return SAT{}, errors.Wrapf(err, "line %d: invalid clause count", line)
			}
			sat.Variables = variables
			declaredClauses = clauses
			headerSeen = true
			continue
		}
		if !headerSeen {
			return SAT{}, errors.Errorf("line %d: clause before problem line", line)
		}

		for _, field := range strings.Fields(text) {
			literal, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return SAT{}, errors.Wrapf(err, "line %d: invalid literal '%s'", line, field)
			}
			if literal == 0 {
				if err := sat.AddClause(clause...); err != nil {
					return SAT{}, errors.Wrapf(err, "line %d", line)
				}
				clause = clause[:0]
				continue
			}
			clause = append(clause, literal)
		}
	}
	if err := scanner.Err(); err != nil {
		return SAT{}, errors.Wrap(err, "error reading DIMACS")
	}

	// Tolerate a missing terminator on the last clause
	if len(clause) > 0 {
		if err := sat.AddClause(clause...); err != nil {
			return SAT{}, err
		}
	}
	if !headerSeen {
		return SAT{}, errors.New("missing problem line")
	}
	if declaredClauses != len(sat.Clauses) {
		logger.Debugf("DIMACS header declares %d clauses but %d were read", declaredClauses, len(sat.Clauses))
	}
	return sat, nil
}

func abs(literal int64) uint64 {
	if literal < 0 {
		return uint64(-literal)
	}
	return uint64(literal)
}
