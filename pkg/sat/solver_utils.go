package sat

import (
	"bytes"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
const (
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
)

// ParseSolution extracts the model out of SAT-competition output ("v" lines terminated by 0)
func ParseSolution(solverOutput string) (SATSolution, error) {
	lines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return len(line) > 0 && line[0] == 'v'
	})
	if len(lines) == 0 {
		return nil, errors.New("no value line in solver output")
	}
	return parseLiterals(lo.FlatMap(lines, func(line string, _ int) []string {
		return strings.Fields(line[1:])
	}))
}

func parseLiterals(fields []string) (SATSolution, error) {
	solution := make(SATSolution, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid literal in solver output")
		}
		if value == 0 {
			break
		}
		solution = append(solution, value)
	}
	return solution, nil
}

// runSolver executes name with args feeding stdin. It reports satisfiable=false with a nil error when
// the solver proves the instance unsatisfiable.
func runSolver(name string, args []string, stdin string) (stdout string, satisfiable bool, err error) {
	cmd := exec.Command(executablePath(name), args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.WithField("solver", name).Debugf("running %v", cmd.String())

	err = cmd.Run()
	if cmd.ProcessState == nil {
		return "", false, errors.Wrapf(err, "an error occurred during %v execution", name)
	}
	switch code := cmd.ProcessState.ExitCode(); code {
	case exitSatisfiable:
		return stdOut.String(), true, nil
	case exitUnsatisfiable:
		return "", false, nil
	default:
		return "", false, errors.Errorf("an error occurred during %v execution: exit code %d: %v : %v", name, code, err, stderr.String())
	}
}

// withTempFiles writes the DIMACS form of sat into a temporary file and creates the requested number of
// extra empty files, removing all of them once fn returns.
func withTempFiles(sat SAT, extra int, fn func(input string, outputs []string) error) error {
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary file")
	}
	defer removeTemp(inputTempFile.Name())

	if err := sat.WriteDIMACS(inputTempFile); err != nil {
		inputTempFile.Close()
		return errors.Wrap(err, "failed to write DIMACS to temporary file")
	}
	if err := inputTempFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close temporary file")
	}

	outputs := make([]string, 0, extra)
	for range extra {
		outputTempFile, err := os.CreateTemp("", "solver_output-*.txt")
		if err != nil {
			return errors.Wrap(err, "failed to create temporary file")
		}
		outputTempFile.Close()
		defer removeTemp(outputTempFile.Name())
		outputs = append(outputs, outputTempFile.Name())
	}

	return fn(inputTempFile.Name(), outputs)
}

func removeTemp(name string) {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		logger.Warnf("failed to remove temporary file %s: %v", name, err)
	}
}

// normalizeClause drops repeated literals and reports whether the clause is a tautology
func normalizeClause(clause []int64) (normalized []int64, tautology bool) {
	normalized = lo.Uniq(clause)
	tautology = lo.SomeBy(normalized, func(literal int64) bool {
		return lo.Contains(normalized, -literal)
	})
	return normalized, tautology
}
