package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/limaJavier/ndsat/pkg/nd"
	"github.com/limaJavier/ndsat/pkg/sat"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
}

type TestMetadata struct {
	Name      string
	Variables uint64
	Clauses   int
}

type BenchmarkResult struct {
	Solver           string
	Test             TestMetadata
	EncodedVariables uint64
	EncodedClauses   uint64
	Duration         time.Duration
	Result           ResultType
}

func main() {
	solvers := pflag.StringSlice("solvers", sat.InProcessSolvers, "Solvers to benchmark")
	sizes := pflag.UintSlice("variables", []uint{10, 20, 40}, "Variable counts of the generated instances")
	ratio := pflag.Float64("ratio", 3.0, "Clauses per variable of the generated instances")
	repetitions := pflag.Int("repetitions", 3, "Instances generated per size")
	out := pflag.String("out", "", "Path to the CSV report; if empty, it'll be written into the Standard Output")
	pflag.Parse()

	tests, err := getTests(lo.Map(*sizes, func(size uint, _ int) uint64 { return uint64(size) }), *ratio, *repetitions)
	if err != nil {
		logrus.Fatal(err)
	}
	results := make([]BenchmarkResult, 0, len(tests)*len(*solvers))

	for _, solverName := range *solvers {
		solver, err := sat.NewSolver(solverName)
		if err != nil {
			logrus.Fatal(err)
		}
		for _, test := range tests {
			logrus.Infof("Benchmarking test \"%v\" with solver \"%v\"", test.metadata.Name, solverName)

			result, err := measure(solver, test)
			if err != nil {
				logrus.Fatalf("cannot benchmark test %v: %v", test.metadata.Name, err)
			}
			result.Solver = solverName
			results = append(results, result)
		}
	}

	if err := writeReport(*out, results); err != nil {
		logrus.Fatal(err)
	}
}

// writeReport writes results as CSV into out, or into the Standard Output when out is empty
func writeReport(out string, results []BenchmarkResult) (err error) {
	if out == "" {
		return toCsv(os.Stdout, results)
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "cannot create output file")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "cannot close output file")
		}
	}()
	return toCsv(f, results)
}

type benchmarkCase struct {
	metadata TestMetadata
	formula  sat.SAT
}

func getTests(sizes []uint64, ratio float64, repetitions int) ([]benchmarkCase, error) {
	if lo.Contains(sizes, 0) {
		return nil, errors.New("every instance needs at least one variable")
	}

	tests := make([]benchmarkCase, 0, len(sizes)*repetitions)
	for _, size := range sizes {
		clauses := int(float64(size) * ratio)
		for i := range repetitions {
			tests = append(tests, benchmarkCase{
				metadata: TestMetadata{
					Name:      "random-" + strconv.FormatUint(size, 10) + "-" + strconv.Itoa(i),
					Variables: size,
					Clauses:   clauses,
				},
				formula: sat.GenerateSATInstance(size, clauses),
			})
		}
	}
	return tests, nil
}

func measure(solver sat.SATSolver, test benchmarkCase) (BenchmarkResult, error) {
	machine := nd.NewMachine()
	if _, err := machine.AssertFormula(test.formula); err != nil {
		return BenchmarkResult{}, errors.Wrap(err, "cannot encode formula")
	}
	variables, clauses, err := machine.Stats()
	if err != nil {
		return BenchmarkResult{}, err
	}

	start := time.Now()
	ok, err := machine.SolveWith(solver)
	duration := time.Since(start)
	if err != nil {
		return BenchmarkResult{}, err
	}

	result := unsatisfiable
	if ok {
		result = solved
	}
	return BenchmarkResult{
		Test:             test.metadata,
		EncodedVariables: variables,
		EncodedClauses:   clauses,
		Duration:         duration,
		Result:           result,
	}, nil
}

func toCsv(w io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(w)
	header := []string{"solver", "test", "variables", "clauses", "encoded_variables", "encoded_clauses", "duration_ms", "result"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "cannot write csv header")
	}

	for _, result := range results {
		record := []string{
			result.Solver,
			result.Test.Name,
			strconv.FormatUint(result.Test.Variables, 10),
			strconv.Itoa(result.Test.Clauses),
			strconv.FormatUint(result.EncodedVariables, 10),
			strconv.FormatUint(result.EncodedClauses, 10),
			strconv.FormatFloat(float64(result.Duration.Microseconds())/1000, 'f', 3, 64),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "cannot write csv record")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "cannot flush csv")
}
